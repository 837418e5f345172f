// Package rbc implements a kinetic model of red-blood-cell metabolism:
// 106 metabolite pools coupled to intracellular (and optionally
// extracellular) pH, evolved as a system of ordinary differential
// equations.
//
// The central type is Engine, whose Derivatives method maps a
// (time, state) pair to a derivative vector. Reaction rates follow
// saturable Michaelis-Menten kinetics; a subset of glycolytic and
// Rapoport-Luebering enzymes is additionally modulated by intracellular
// pH. An adaptive Runge-Kutta driver (Solve) advances the state and
// feeds accepted points to optional flux and Bohr-effect recorders.
package rbc
