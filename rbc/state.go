package rbc

import (
	"fmt"
	"math"
)

// Slot indices of the state vector. The first 106 slots are metabolite
// concentrations in mM; slot 106 is intracellular pH and slot 107, present
// only with LayoutCoreExtPH, is extracellular pH. The ordering is fixed by
// the published reaction network and must not be rearranged: the
// stoichiometric wiring in kinetics.go addresses metabolites by these
// indices.
const (
	GLC      = iota // glucose
	G6P             // glucose-6-phosphate
	F6P             // fructose-6-phosphate
	GL6P            // 6-phosphogluconate
	GO6P            // glucono-1,5-lactone-6-phosphate
	RU5P            // ribulose-5-phosphate
	R5P             // ribose-5-phosphate
	X5P             // xylulose-5-phosphate
	E4P             // erythrose-4-phosphate
	S7P             // sedoheptulose-7-phosphate
	GA3P            // glyceraldehyde-3-phosphate
	F16BP           // fructose-1,6-bisphosphate
	DHCP            // dihydroxyacetone phosphate
	B13PG           // 1,3-bisphosphoglycerate
	P3G             // 3-phosphoglycerate
	B23PG           // 2,3-bisphosphoglycerate
	P2G             // 2-phosphoglycerate
	PEP             // phosphoenolpyruvate
	PYR             // pyruvate
	LAC             // lactate
	MAL             // malate
	OAA             // oxaloacetate
	CIT             // citrate
	COA             // coenzyme A
	SUCCOA          // succinyl-CoA
	ADE             // adenine
	ADO             // adenosine
	INO             // inosine
	HYPX            // hypoxanthine
	XAN             // xanthine
	URT             // urate
	GUA             // guanine
	R1P             // ribose-1-phosphate
	D2RIBP          // deoxyribose phosphate
	DEOXYINO        // deoxyinosine
	ATP
	ADP
	AMP
	GTP
	GDP
	GMP
	PRPP    // phosphoribosyl pyrophosphate
	IMP     // inosine monophosphate
	XMP     // xanthosine monophosphate
	ADESUC  // adenylosuccinate
	CYSTHIO // cystathionine
	HCYS    // homocysteine
	METTHF  // N5-methyltetrahydrofolate
	MET     // methionine
	THF     // tetrahydrofolate
	ADOMET  // S-adenosylmethionine
	SAH     // S-adenosylhomocysteine
	METCYT  // N5-methylcytidine
	ARG     // arginine
	ARGSUC  // argininosuccinate
	CITR    // citrulline
	ASP     // aspartate
	SER     // serine
	ALA     // alanine
	AKG     // alpha-ketoglutarate
	GLU     // glutamate
	GLN     // glutamine
	NH4     // ammonia
	GLUAA   // glutamyl-amino acid
	AA      // free amino acid pool
	OXOP    // 5-oxoproline
	GLY     // glycine
	CYS     // cysteine
	CYSGLY  // cysteinylglycine
	GLUCYS  // glutamylcysteine
	GSH     // glutathione, reduced
	GSSG    // glutathione, oxidized
	ORN     // ornithine
	UREA    // urea
	ACCOA   // acetyl-CoA
	NAD
	NADH
	NADP
	NADPH
	H2O2 // hydrogen peroxide
	O2
	FUM    // fumarate
	RIB    // ribose
	SUCARG // N-succinylarginine
	CYT    // cytidine
	EGLC   // extracellular glucose
	ENH4   // extracellular ammonia
	ELAC   // extracellular lactate
	EADO   // extracellular adenosine
	EADE   // extracellular adenine
	EINO   // extracellular inosine
	EGLN   // extracellular glutamine
	EGLU   // extracellular glutamate
	ECYS   // extracellular cysteine
	EMET   // extracellular methionine
	EASP   // extracellular aspartate
	EUREA  // extracellular urea
	EURT   // extracellular urate
	EPYR   // extracellular pyruvate
	EXAN   // extracellular xanthine
	EHYPX  // extracellular hypoxanthine
	EMAL   // extracellular malate
	EFUM   // extracellular fumarate
	ECIT   // extracellular citrate
	EALA   // extracellular alanine
	ECYT   // extracellular cytidine
	PHI    // intracellular pH
	PHE    // extracellular pH
)

// NumBaseMetabolites is the number of concentration slots preceding the pH
// slots.
const NumBaseMetabolites = 106

// Numerical safety bounds shared across the engine.
const (
	// MinConcentration is the positive floor applied to every concentration
	// slot before kinetic evaluation, keeping saturation terms well-defined.
	MinConcentration = 1e-6
	// MinKm substitutes for non-positive half-saturation constants.
	MinKm = 1e-6
	// MaxDerivative bounds each derivative slot after sanitation.
	MaxDerivative = 1e3
)

// Physiological reference values.
const (
	PhysiologicalPHi = 7.2
	PhysiologicalPHe = 7.4

	// Canonicalize clamps pH slots to this range.
	MinPH = 6.0
	MaxPH = 8.8
)

// Layout selects the shape of the state vector, fixed once at configuration
// time rather than inferred from slice length at call time.
type Layout int

const (
	// LayoutCore is 106 metabolites plus intracellular pH (107 slots).
	LayoutCore Layout = iota
	// LayoutCoreExtPH adds extracellular pH as a dynamic slot (108 slots).
	LayoutCoreExtPH
)

// Size returns the canonical state-vector length for the layout.
func (l Layout) Size() int {
	if l == LayoutCoreExtPH {
		return PHE + 1
	}
	return PHI + 1
}

func (l Layout) String() string {
	if l == LayoutCoreExtPH {
		return "core+extracellular-pH"
	}
	return "core"
}

// metaboliteNames maps slot index to its stable semantic name, in slot
// order. Used for trajectory and flux CSV headers and for matching
// experimental reference rows.
var metaboliteNames = [PHE + 1]string{
	"GLC", "G6P", "F6P", "GL6P", "GO6P", "RU5P", "R5P", "X5P", "E4P", "S7P",
	"GA3P", "F16BP", "DHCP", "B13PG", "P3G", "B23PG", "P2G", "PEP", "PYR", "LAC",
	"MAL", "OAA", "CIT", "COA", "SUCCOA", "ADE", "ADO", "INO", "HYPX", "XAN",
	"URT", "GUA", "R1P", "D2RIBP", "DEOXYINO", "ATP", "ADP", "AMP", "GTP", "GDP",
	"GMP", "PRPP", "IMP", "XMP", "ADESUC", "CYSTHIO", "HCYS", "METTHF", "MET", "THF",
	"ADOMET", "SAH", "METCYT", "ARG", "ARGSUC", "CITR", "ASP", "SER", "ALA", "AKG",
	"GLU", "GLN", "NH4", "GLUAA", "AA", "OXOP", "GLY", "CYS", "CYSGLY", "GLUCYS",
	"GSH", "GSSG", "ORN", "UREA", "ACCOA", "NAD", "NADH", "NADP", "NADPH", "H2O2",
	"O2", "FUM", "RIB", "SUCARG", "CYT", "EGLC", "ENH4", "ELAC", "EADO", "EADE",
	"EINO", "EGLN", "EGLU", "ECYS", "EMET", "EASP", "EUREA", "EURT", "EPYR", "EXAN",
	"EHYPX", "EMAL", "EFUM", "ECIT", "EALA", "ECYT", "PHI", "PHE",
}

// MetaboliteName returns the semantic name of a state slot.
func MetaboliteName(idx int) string {
	if idx < 0 || idx >= len(metaboliteNames) {
		return fmt.Sprintf("slot_%d", idx)
	}
	return metaboliteNames[idx]
}

// MetaboliteIndex resolves a semantic name to its state slot.
func MetaboliteIndex(name string) (int, bool) {
	idx, ok := metaboliteIndexByName[name]
	return idx, ok
}

var metaboliteIndexByName = func() map[string]int {
	m := make(map[string]int, len(metaboliteNames))
	for i, n := range metaboliteNames {
		m[n] = i
	}
	return m
}()

// StateNames returns the slot names for a layout, in slot order.
func StateNames(layout Layout) []string {
	return append([]string(nil), metaboliteNames[:layout.Size()]...)
}

// DefaultInitialState returns the default initial condition: 1.0 mM for
// every metabolite pool, a trace H2O2 level, and physiological pH values.
func DefaultInitialState(layout Layout) []float64 {
	x := make([]float64, layout.Size())
	for i := 0; i < NumBaseMetabolites; i++ {
		x[i] = 1.0
	}
	x[H2O2] = 1e-4
	x[PHI] = PhysiologicalPHi
	if layout == LayoutCoreExtPH {
		x[PHE] = PhysiologicalPHe
	}
	return x
}

// Canonicalize converts a raw input vector into a fresh canonical vector of
// the layout's length. Missing trailing slots are filled with defaults
// (1.0 mM for concentrations, physiological values for pH); every
// concentration is floored at MinConcentration and pH slots are clamped to
// [MinPH, MaxPH]. The input is never mutated.
//
// A vector shorter than NumBaseMetabolites or longer than the layout cannot
// be interpreted and is rejected.
func Canonicalize(x []float64, layout Layout) ([]float64, error) {
	if x == nil {
		return nil, fmt.Errorf("state vector is nil")
	}
	if len(x) < NumBaseMetabolites {
		return nil, fmt.Errorf("state vector must have at least %d slots, got %d", NumBaseMetabolites, len(x))
	}
	n := layout.Size()
	if len(x) > n {
		return nil, fmt.Errorf("state vector has %d slots but layout %s holds %d", len(x), layout, n)
	}
	out := make([]float64, n)
	copy(out, x)
	if len(x) <= PHI {
		out[PHI] = PhysiologicalPHi
	}
	if layout == LayoutCoreExtPH && len(x) <= PHE {
		out[PHE] = PhysiologicalPHe
	}
	for i := 0; i < NumBaseMetabolites; i++ {
		if i >= len(x) {
			out[i] = 1.0
			continue
		}
		if math.IsNaN(out[i]) || out[i] < MinConcentration {
			out[i] = MinConcentration
		}
	}
	out[PHI] = clampPH(out[PHI])
	if layout == LayoutCoreExtPH {
		out[PHE] = clampPH(out[PHE])
	}
	return out, nil
}

func clampPH(ph float64) float64 {
	switch {
	case math.IsNaN(ph):
		return PhysiologicalPHi
	case ph < MinPH:
		return MinPH
	case ph > MaxPH:
		return MaxPH
	}
	return ph
}
