package rbc

import "math"

// mm is the Michaelis-Menten saturation term S/(Km+S), the building block
// of every rate law in the network. Negative substrate values contribute
// nothing, a non-positive Km is floored at MinKm, and a non-finite result
// collapses to 0 instead of propagating.
func mm(substrate, km float64) float64 {
	return mmHill(substrate, km, 1.0)
}

// mmHill is mm with a cooperativity exponent: S^h/(Km^h+S^h).
func mmHill(substrate, km, hill float64) float64 {
	if substrate < 0 {
		substrate = 0
	}
	if km <= 0 {
		km = MinKm
	}
	var result float64
	if hill == 1.0 {
		result = substrate / (km + substrate)
	} else {
		sh := math.Pow(substrate, hill)
		result = sh / (math.Pow(km, hill) + sh)
	}
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0
	}
	return result
}

// Half-saturation constants for the cofactor-ratio regulatory terms
// (NAD/NADH, ADP/ATP and friends). These act on dimensionless ratios.
const (
	kmNADRatio  = 1.0
	kmNADPRatio = 1.0
	kmADPRatio  = 1.0
)

// Fluxes carries every named reaction rate for one state evaluation, in
// mM/h. Field names follow the published reaction vocabulary.
type Fluxes struct {
	// Glycolysis.
	VHK, VPGI, VPFK, VFDPA, VTPI, VGAPDH, VPGK, VPGM, VENOPGM, VPK, VLDH float64
	// Pentose phosphate pathway.
	VG6PDH, VPGLS, V6PGD, VR5PI, VR5PE, VTKL1, VTKL2, VTAL float64
	// Rapoport-Luebering shunt.
	VDPGM, V23DPGP float64
	// Nucleotide salvage and purine catabolism.
	VAPRT, VHGPRT1, VHGPRT2, VADA, VAK, VAK2, VAMPD1, VIMPH, VXAO float64
	VGMPS, VADSS, VADSL, VPNPase1, VXAO2, VNucleo2, VRKa, VRKb    float64
	VPRPPase, VOPRIBT                                             float64
	// Amino-acid, one-carbon and urea-cycle metabolism.
	VGDH, VGLNS, VGLUCYS, VGSS, VGSR, VGGT, VGGCT, VMESE, VSAM, VSAH float64
	VAHCY, VCBS, VCSE, VASPTA, VALATA, VGENASP, VFUM, VMLD, VASL     float64
	VASS, VPolyam, VASTA, VCYSGLY                                    float64
	// Redox, detoxification and anaplerosis.
	VH2O2, VGPX, VME, VPC, VACLY float64
	// Membrane transport.
	VEGLC, VELAC, VEPYR, VEGLN, VEGLU, VECYS, VEADE, VEINO, VEADO   float64
	VEHYPX, VEXAN, VEURT, VECIT, VEMAL, VEFUM, VEUREA, VENH4, VEASP float64
	VEMET, VECYT, VEALA                                             float64
}

// computeFluxes evaluates every reaction rate from a canonical state
// vector. The pH-modulation multipliers apply to the ten reactions most
// implicated in pH regulation; with modulation disabled all multipliers
// are 1. Concentrations in x are already floored, so saturation terms never
// see zero substrate.
func (e *Engine) computeFluxes(x []float64, mod phModulation) Fluxes {
	p := e.params
	atp, adp, amp := x[ATP], x[ADP], x[AMP]
	nad, nadh := x[NAD], x[NADH]
	nadp, nadph := x[NADP], x[NADPH]
	gsh, gssg := x[GSH], x[GSSG]

	var f Fluxes

	// Glycolysis. GAPDH, PGK, PK and LDH carry cofactor-ratio terms that
	// couple the pathway to the redox and energy state of the cell.
	f.VHK = mod.HK * p.Get("vmax_VHK") * mm(x[GLC], p.Get("km_GLC"))
	f.VPGI = p.Get("vmax_VPGI") * mm(x[G6P], p.Get("km_G6P"))
	f.VPFK = mod.PFK * p.Get("vmax_VPFK") * mm(x[F6P], p.Get("km_F6P"))
	f.VFDPA = p.Get("vmax_VFDPA") * mm(x[F16BP], p.Get("km_F16BP"))
	f.VTPI = p.Get("vmax_VTPI") * mm(x[DHCP], p.Get("km_DHCP"))
	f.VGAPDH = mod.GAPDH * p.Get("vmax_VGAPDH") * mm(x[GA3P], p.Get("km_GA3P")) * mm(nad/(nadh+MinConcentration), kmNADRatio)
	f.VPGK = mod.PGK * p.Get("vmax_VPGK") * mm(x[B13PG], p.Get("km_B13PG")) * mm(adp/(atp+MinConcentration), kmADPRatio)
	f.VPGM = p.Get("vmax_VPGM") * mm(x[P3G], p.Get("km_P3G"))
	f.VENOPGM = mod.ENO * p.Get("vmax_VENOPGM") * mm(x[P2G], p.Get("km_P2G"))
	f.VPK = mod.PK * p.Get("vmax_VPK") * mm(x[PEP], p.Get("km_PEP")) * mm(adp/(atp+MinConcentration), kmADPRatio)
	f.VLDH = mod.LDH * p.Get("vmax_VLDH") * mm(x[PYR], p.Get("km_PYR")) * mm(nadh/(nad+MinConcentration), kmNADRatio)

	// Pentose phosphate pathway.
	f.VG6PDH = mod.G6PDH * p.Get("vmax_VG6PDH") * mm(x[G6P], p.Get("km_G6P")) * mm(nadp/(nadph+MinConcentration), kmNADPRatio)
	f.VPGLS = p.Get("vmax_VPGLS") * mm(x[GO6P], p.Get("km_GO6P"))
	f.V6PGD = p.Get("vmax_V6PGD") * mm(x[GL6P], p.Get("km_GL6P")) * mm(nadp/(nadph+MinConcentration), kmNADPRatio)
	f.VR5PI = p.Get("vmax_VR5PI") * mm(x[RU5P], p.Get("km_RU5P"))
	f.VR5PE = p.Get("vmax_VR5PE") * mm(x[RU5P], p.Get("km_RU5P"))
	f.VTKL1 = p.Get("vmax_VTKL1") * mm(x[R5P], p.Get("km_R5P")) * mm(x[X5P], p.Get("km_X5P"))
	f.VTKL2 = p.Get("vmax_VTKL2") * mm(x[E4P], p.Get("km_E4P")) * mm(x[X5P], p.Get("km_X5P"))
	f.VTAL = p.Get("vmax_VTAL") * mm(x[GA3P], p.Get("km_GA3P")) * mm(x[S7P], p.Get("km_S7P"))

	// Rapoport-Luebering shunt: B13PG => B23PG => P3G. DPGM is the lever
	// through which pH steers 2,3-BPG and thus oxygen affinity.
	f.VDPGM = mod.DPGM * p.Get("vmax_VDPGM") * mm(x[B13PG], p.Get("km_B13PG"))
	f.V23DPGP = mod.DPGP * p.Get("vmax_V23DPGP") * mm(x[B23PG], p.Get("km_B23PG"))

	// Nucleotide salvage and purine catabolism.
	f.VHGPRT1 = p.Get("vmax_VHGPRT1") * mm(x[PRPP], p.Get("km_PRPP")) * mm(x[HYPX], p.Get("km_HYPX"))
	f.VADA = p.Get("vmax_VADA") * mm(x[ADO], p.Get("km_ADO"))
	f.VAPRT = p.Get("vmax_VAPRT") * mm(x[ADE], p.Get("km_ADE")) * mm(x[PRPP], p.Get("km_PRPP"))
	f.VAMPD1 = p.Get("vmax_VAMPD1") * mm(amp, p.Get("km_AMP"))
	f.VADSS = p.Get("vmax_VADSS") * mm(x[IMP], p.Get("km_IMP")) * mm(x[ASP], p.Get("km_ASP")) * mm(x[GTP], p.Get("km_GTP"))
	f.VIMPH = p.Get("vmax_VIMPH") * mm(x[IMP], p.Get("km_IMP")) * mm(nad, p.Get("km_NAD"))
	f.VNucleo2 = p.Get("vmax_Vnucleo2") * mm(x[IMP], p.Get("km_IMP"))
	f.VADSL = p.Get("vmax_VADSL") * mm(x[ADESUC], p.Get("km_ADESUC"))
	f.VGMPS = p.Get("vmax_VGMPS") * mm(x[XMP], p.Get("km_XMP")) * mm(x[GLN], p.Get("km_GLN")) * mm(atp, p.Get("km_ATP"))
	f.VHGPRT2 = p.Get("vmax_VHGPRT2") * mm(x[GUA], p.Get("km_GUA")) * mm(amp, p.Get("km_AMP")) * mm(x[PRPP], p.Get("km_PRPP"))
	f.VRKb = p.Get("vmax_VRKb") * mm(x[R1P], p.Get("km_R1P"))
	// Adenylate kinase: 2 ADP = AMP + ATP.
	f.VAK = p.Get("vmax_VAK") * mm(adp, p.Get("km_ADP"))
	// Adenosine kinase: ADO + ATP => AMP + ADP.
	f.VAK2 = p.Get("vmax_VAK2") * mm(x[ADO], p.Get("km_ADO")) * mm(atp, p.Get("km_ATP"))
	f.VXAO = p.Get("vmax_VXAO") * mm(x[HYPX], p.Get("km_HYPX"))
	f.VXAO2 = p.Get("vmax_VXAO2") * mm(x[XAN], p.Get("km_XAN"))
	f.VOPRIBT = p.Get("vmax_VOPRIBT") * mm(x[DEOXYINO], p.Get("km_DEOXYINO"))
	f.VPNPase1 = p.Get("vmax_VPNPase1") * mm(x[INO], p.Get("km_INO"))
	f.VRKa = p.Get("vmax_VRKa") * mm(x[RIB], p.Get("km_RIB")) * mm(atp, p.Get("km_ATP"))
	f.VPRPPase = p.Get("vmax_VPRPPASe") * mm(x[R5P], p.Get("km_R5P")) * mm(atp, p.Get("km_ATP"))

	// Membrane transport. Unidirectional carriers saturate on the source
	// side only; bidirectional exchangers run on the difference of the two
	// saturation terms and reverse sign with the gradient.
	f.VEGLC = p.Get("vmax_VEGLC") * mm(x[EGLC], p.Get("km_EGLC"))
	f.VELAC = p.Get("vmax_VELAC") * mm(x[LAC], p.Get("km_LAC"))
	f.VEADO = p.Get("vmax_VEADO") * (mm(x[ADO], p.Get("km_ADO")) - mm(x[EADO], p.Get("km_EADO")))
	f.VEADE = p.Get("vmax_VEADE") * mm(x[ADE], p.Get("km_ADE"))
	f.VEINO = p.Get("vmax_VEINO") * mm(x[INO], p.Get("km_INO"))
	f.VEHYPX = p.Get("vmax_VEHYPX") * mm(x[HYPX], p.Get("km_HYPX"))
	f.VEURT = p.Get("vmax_VEURT") * (mm(x[URT], p.Get("km_URT")) - mm(x[EURT], p.Get("km_EURT")))
	f.VEPYR = p.Get("vmax_VEPYR") * (mm(x[PYR], p.Get("km_PYR")) - mm(x[EPYR], p.Get("km_EPYR")))
	f.VEXAN = p.Get("vmax_VEXAN") * (mm(x[XAN], p.Get("km_XAN")) - mm(x[EXAN], p.Get("km_EXAN")))
	f.VECIT = p.Get("vmax_VECIT") * (mm(x[CIT], p.Get("km_CIT")) - mm(x[ECIT], p.Get("km_ECIT")))
	f.VEUREA = p.Get("vmax_VEUREA") * (mm(x[UREA], p.Get("km_UREA")) - mm(x[EUREA], p.Get("km_EUREA")))
	f.VEFUM = p.Get("vmax_VEFUM") * (mm(x[FUM], p.Get("km_FUM")) - mm(x[EFUM], p.Get("km_EFUM")))
	f.VEMAL = p.Get("vmax_VEMAL") * mm(x[MAL], p.Get("km_MAL"))
	f.VEGLN = p.Get("vmax_VEGLN") * mm(x[GLN], p.Get("km_GLN"))
	f.VEGLU = p.Get("vmax_VEGLU") * mm(x[GLU], p.Get("km_GLU"))
	f.VEALA = p.Get("vmax_VEALA") * (mm(x[ALA], p.Get("km_ALA")) - mm(x[EALA], p.Get("km_EALA")))
	f.VECYS = p.Get("vmax_VECYS") * mm(x[CYS], p.Get("km_CYS"))
	f.VEMET = p.Get("vmax_VEMET") * (mm(x[MET], p.Get("km_MET")) - mm(x[EMET], p.Get("km_EMET")))
	f.VEASP = p.Get("vmax_VEASP") * (mm(x[ASP], p.Get("km_ASP")) - mm(x[EASP], p.Get("km_EASP")))
	f.VENH4 = p.Get("vmax_VENH4") * (mm(x[NH4], p.Get("km_NH4")) - mm(x[ENH4], p.Get("km_ENH4")))
	f.VECYT = p.Get("vmax_VECYT") * (mm(x[CYT], p.Get("km_CYT")) - mm(x[ECYT], p.Get("km_ECYT")))

	// Amino-acid, one-carbon and urea-cycle metabolism.
	f.VME = p.Get("vmax_VME") * mm(x[MAL], p.Get("km_MAL")) * mm(nadp, p.Get("km_NADP"))
	f.VPC = p.Get("vmax_VPC") * mm(x[PYR], p.Get("km_PYR")) * mm(atp, p.Get("km_ATP"))
	f.VACLY = p.Get("vmax_VACLY") * mm(x[OAA], p.Get("km_OAA")) * mm(x[ACCOA], p.Get("km_ACCOA"))
	f.VASTA = p.Get("vmax_VASTA") * mm(x[SUCCOA], p.Get("km_SUCCOA")) * mm(x[ARG], p.Get("km_ARG"))
	f.VCYSGLY = p.Get("vmax_VCYSGLY") * mm(x[CYSGLY], p.Get("km_CYSGLY"))
	f.VGDH = p.Get("vmax_VGDH") * mm(x[AKG], p.Get("km_AKG")) * mm(nadph, p.Get("km_NADPH")) * mm(x[NH4], p.Get("km_NH4"))
	f.VGLNS = p.Get("vmax_VGLNS") * mm(x[GLU], p.Get("km_GLU")) * mm(atp, p.Get("km_ATP")) * mm(x[NH4], p.Get("km_NH4"))
	f.VGLUCYS = p.Get("vmax_VGLUCYS") * mm(x[GLU], p.Get("km_GLU")) * mm(x[CYS], p.Get("km_CYS")) * mm(atp, p.Get("km_ATP"))
	f.VGSS = p.Get("vmax_VGSS") * mm(x[GLUCYS], p.Get("km_GLUCYS")) * mm(x[GLY], p.Get("km_GLY")) * mm(atp, p.Get("km_ATP"))
	f.VGSR = p.Get("vmax_VGSR") * mm(gssg, p.Get("km_GSSG")) * mm(nadph, p.Get("km_NADPH"))
	f.VGGT = p.Get("vmax_VGGT") * mm(gsh, p.Get("km_GSH")) * mm(x[AA], p.Get("km_AA"))
	f.VGGCT = p.Get("vmax_VGGCT") * mm(x[GLUAA], p.Get("km_GLUAA"))
	f.VMESE = p.Get("vmax_VMESE") * mm(x[HCYS], p.Get("km_HCYS")) * mm(x[METTHF], p.Get("km_METTHF"))
	f.VSAM = p.Get("vmax_VSAM") * mm(x[MET], p.Get("km_MET")) * mm(atp, p.Get("km_ATP"))
	f.VSAH = p.Get("vmax_VSAH") * mm(x[ADOMET], p.Get("km_ADOMET")) * mm(x[CYT], p.Get("km_CYT"))
	f.VAHCY = p.Get("vmax_VAHCY") * mm(x[SAH], p.Get("km_SAH"))
	f.VCBS = p.Get("vmax_VCBS") * mm(x[HCYS], p.Get("km_HCYS")) * mm(x[SER], p.Get("km_SER"))
	f.VCSE = p.Get("vmax_VCSE") * mm(x[CYSTHIO], p.Get("km_CYSTHIO"))
	f.VASPTA = p.Get("vmax_VASPTA") * mm(x[ASP], p.Get("km_ASP")) * mm(x[AKG], p.Get("km_AKG"))
	f.VALATA = p.Get("vmax_VALATA") * mm(x[ALA], p.Get("km_ALA")) * mm(x[AKG], p.Get("km_AKG"))
	f.VGENASP = p.Get("vmax_VGENASP") * mm(x[OAA], p.Get("km_OAA")) * mm(x[GTP], p.Get("km_GTP"))
	f.VFUM = p.Get("vmax_VFUM") * mm(x[FUM], p.Get("km_FUM"))
	f.VMLD = p.Get("vmax_VMLD") * mm(x[MAL], p.Get("km_MAL")) * mm(nad, p.Get("km_NAD"))
	f.VASL = p.Get("vmax_VASL") * mm(x[ARGSUC], p.Get("km_ARGSUC")) * mm(atp, p.Get("km_ATP"))
	f.VASS = p.Get("vmax_VASS") * mm(x[CITR], p.Get("km_CITR")) * mm(x[ASP], p.Get("km_ASP")) * mm(atp, p.Get("km_ATP"))
	f.VPolyam = p.Get("vmax_Vpolyam") * mm(x[ARG], p.Get("km_ARG"))

	// Redox and detoxification.
	f.VH2O2 = p.Get("vmax_VH2O2") * mm(x[H2O2], p.Get("km_H2O2"))
	f.VGPX = p.Get("vmax_VGPX") * mm(x[H2O2], p.Get("km_H2O2")) * mm(gsh, p.Get("km_GSH"))

	return f
}

// applyStoichiometry accumulates every reaction rate into the derivative of
// each metabolite it produces (+) or consumes (-). This wiring is the fixed
// stoichiometric balance of the published network; do not reorder or
// "simplify" the sums.
func applyStoichiometry(dxdt []float64, f *Fluxes) {
	// Glycolysis and central carbon.
	dxdt[GLC] = f.VEGLC - f.VHK
	dxdt[G6P] = f.VHK - f.VPGI - f.VG6PDH
	dxdt[F6P] = f.VPGI - f.VPFK + f.VTKL2 + f.VTAL
	dxdt[GL6P] = f.VPGLS - f.V6PGD
	dxdt[GO6P] = f.VG6PDH - f.VPGLS
	dxdt[RU5P] = f.V6PGD - f.VR5PI - f.VR5PE
	dxdt[R5P] = f.VR5PI + f.VRKb + f.VRKa - f.VTKL1 - f.VPRPPase
	dxdt[X5P] = f.VR5PE - f.VTKL1 - f.VTKL2
	dxdt[E4P] = f.VTKL2 - f.VTAL
	dxdt[S7P] = f.VTKL1 - f.VTAL
	dxdt[GA3P] = f.VFDPA + f.VTPI - f.VGAPDH + f.VTKL1 + f.VTKL2 - f.VTAL
	dxdt[F16BP] = f.VPFK - f.VFDPA
	dxdt[DHCP] = f.VFDPA - f.VTPI
	dxdt[B13PG] = f.VGAPDH - f.VPGK - f.VDPGM
	dxdt[P3G] = f.VPGK - f.VPGM + f.V23DPGP
	dxdt[B23PG] = f.VDPGM - f.V23DPGP
	dxdt[P2G] = f.VPGM - f.VENOPGM
	dxdt[PEP] = f.VENOPGM - f.VPK + f.VGENASP
	dxdt[PYR] = f.VPK - f.VLDH - f.VEPYR + f.VME + f.VALATA - f.VPC
	dxdt[LAC] = f.VLDH - f.VELAC
	dxdt[MAL] = f.VFUM - f.VMLD - f.VEMAL
	dxdt[OAA] = f.VPC + f.VMLD + f.VASPTA - f.VACLY - f.VGENASP
	dxdt[CIT] = f.VACLY - f.VECIT
	dxdt[COA] = f.VACLY + f.VASTA
	dxdt[SUCCOA] = -f.VASTA

	// Purine salvage and catabolism.
	dxdt[ADE] = -f.VEADE - f.VAPRT - f.VADA
	dxdt[ADO] = f.VEADO - f.VAK - f.VAK2 + f.VADA + f.VAHCY
	dxdt[INO] = f.VADA + f.VNucleo2 - f.VEINO - f.VPNPase1
	dxdt[HYPX] = f.VXAO + f.VPNPase1 + f.VOPRIBT - f.VHGPRT1 - f.VEHYPX
	dxdt[XAN] = f.VXAO - f.VXAO2 - f.VEXAN
	dxdt[URT] = f.VXAO2 - f.VEURT
	dxdt[GUA] = -f.VHGPRT2
	dxdt[R1P] = f.VPNPase1 - f.VRKb
	dxdt[D2RIBP] = -f.VOPRIBT
	dxdt[DEOXYINO] = -f.VOPRIBT
	dxdt[ATP] = f.VPGK + f.VPK + f.VAK + f.VACLY -
		f.VHK - f.VPFK - f.VAK2 - f.VAPRT - f.VHGPRT1 - f.VPC -
		f.VGLNS - f.VGLUCYS - f.VGSS - f.VSAM - f.VASL - f.VASS -
		f.VRKa - f.VPRPPase
	dxdt[ADP] = f.VHK + f.VPFK + f.VAK2 + f.VPC + f.VGLNS + f.VGLUCYS +
		f.VGSS + f.VASL + f.VRKa - f.VPGK - f.VPK - f.VAK
	// AMP is algebraic: its slot is pinned to zero in the stability pass.
	dxdt[GTP] = f.VADSS - f.VHGPRT2 - f.VGENASP
	dxdt[GDP] = f.VGENASP - f.VADSS
	dxdt[GMP] = f.VGMPS + f.VHGPRT2
	dxdt[PRPP] = f.VPRPPase - f.VAPRT - f.VHGPRT1 - f.VHGPRT2
	dxdt[IMP] = f.VHGPRT1 + f.VAMPD1 - f.VADSS - f.VIMPH - f.VNucleo2
	dxdt[XMP] = f.VIMPH - f.VGMPS
	dxdt[ADESUC] = f.VADSS - f.VADSL

	// Amino-acid and one-carbon metabolism.
	dxdt[CYSTHIO] = f.VCBS - f.VCSE
	dxdt[HCYS] = f.VMESE + f.VAHCY - f.VCBS
	dxdt[METTHF] = -f.VMESE
	dxdt[MET] = f.VMESE - f.VSAM - f.VEMET
	dxdt[THF] = f.VMESE
	dxdt[ADOMET] = f.VSAM - f.VSAH
	dxdt[SAH] = f.VSAH - f.VAHCY
	dxdt[METCYT] = f.VSAH
	dxdt[ARG] = f.VASL - f.VASTA - f.VPolyam
	dxdt[ARGSUC] = f.VASS - f.VASL
	dxdt[CITR] = -f.VASS
	dxdt[ASP] = f.VADSL + f.VCSE - f.VADSS - f.VASS - f.VASPTA - f.VEASP
	dxdt[SER] = -f.VCBS
	dxdt[ALA] = f.VALATA - f.VEALA
	dxdt[AKG] = f.VGDH + f.VCSE - f.VASPTA - f.VALATA
	dxdt[GLU] = f.VASPTA + f.VALATA - f.VGDH - f.VGLNS - f.VGLUCYS - f.VEGLU
	dxdt[GLN] = f.VGLNS - f.VGMPS - f.VEGLN
	dxdt[NH4] = f.VADA + f.VAMPD1 + f.VCSE + f.VGLNS - f.VGDH - f.VENH4
	dxdt[GLUAA] = f.VGGT - f.VGGCT
	dxdt[AA] = f.VGGCT - f.VGGT
	dxdt[OXOP] = f.VGGCT
	dxdt[GLY] = f.VCYSGLY + f.VGSS
	dxdt[CYS] = f.VCYSGLY + f.VCSE - f.VGLUCYS - f.VECYS
	dxdt[CYSGLY] = f.VGGT - f.VCYSGLY
	dxdt[GLUCYS] = f.VGLUCYS - f.VGSS
	dxdt[GSH] = 2*f.VGSR + f.VGSS - 2*f.VGPX - f.VGGT
	dxdt[GSSG] = f.VGPX - f.VGSR
	dxdt[ORN] = f.VPolyam
	dxdt[UREA] = f.VPolyam - f.VEUREA
	dxdt[ACCOA] = -f.VACLY

	// Redox cofactors and remaining intracellular pools.
	dxdt[NAD] = f.VGAPDH + f.VMLD + f.VIMPH - f.VG6PDH - f.V6PGD - f.VLDH
	dxdt[NADH] = f.VG6PDH + f.V6PGD + f.VLDH - f.VGAPDH - f.VMLD - f.VIMPH
	dxdt[NADP] = f.VME + f.VGDH + f.VGSR - f.VG6PDH - f.V6PGD
	dxdt[NADPH] = f.VG6PDH + f.V6PGD - f.VME - f.VGDH - f.VGSR
	dxdt[H2O2] = f.VXAO - f.VH2O2 - f.VGPX
	dxdt[O2] = f.VH2O2
	dxdt[FUM] = f.VADSL + f.VASL - f.VFUM - f.VEFUM
	dxdt[RIB] = -f.VRKa
	dxdt[SUCARG] = f.VASTA
	dxdt[CYT] = -f.VSAH - f.VECYT

	// Extracellular pools.
	dxdt[EGLC] = -f.VEGLC
	dxdt[ENH4] = -f.VENH4
	dxdt[ELAC] = f.VELAC
	dxdt[EADO] = -f.VEADO
	dxdt[EADE] = f.VEADE
	dxdt[EINO] = f.VEINO
	dxdt[EGLN] = f.VEGLN
	dxdt[EGLU] = f.VEGLU
	dxdt[ECYS] = f.VECYS
	dxdt[EMET] = -f.VEMET
	dxdt[EASP] = -f.VEASP
	dxdt[EUREA] = -f.VEUREA
	dxdt[EURT] = -f.VEURT
	dxdt[EPYR] = -f.VEPYR
	dxdt[EXAN] = -f.VEXAN
	dxdt[EHYPX] = f.VEHYPX
	dxdt[EMAL] = f.VEMAL
	dxdt[EFUM] = -f.VEFUM
	dxdt[ECIT] = -f.VECIT
	dxdt[EALA] = -f.VEALA
	dxdt[ECYT] = -f.VECYT
}

// FluxNames lists every reaction name in recorder column order.
var FluxNames = []string{
	// Glycolysis.
	"VHK", "VPGI", "VPFK", "VFDPA", "VTPI", "VGAPDH", "VPGK", "VPGM", "VENOPGM", "VPK", "VLDH",
	// Pentose phosphate pathway.
	"VG6PDH", "VPGLS", "V6PGD", "VR5PI", "VR5PE", "VTKL1", "VTKL2", "VTAL",
	// Rapoport-Luebering shunt.
	"VDPGM", "V23DPGP",
	// Nucleotide metabolism.
	"VAPRT", "VHGPRT1", "VHGPRT2", "VADA", "VAK", "VAK2", "VAMPD1", "VIMPH", "VXAO",
	"VGMPS", "VADSS", "VADSL", "VPNPase1", "VXAO2", "Vnucleo2", "VRKa", "VRKb", "VPRPPASe", "VOPRIBT",
	// Amino-acid metabolism.
	"VGDH", "VGLNS", "VGLUCYS", "VGSS", "VGSR", "VGGT", "VGGCT", "VMESE", "VSAM", "VSAH",
	"VAHCY", "VCBS", "VCSE", "VASPTA", "VALATA", "VGENASP", "VFUM", "VMLD", "VASL", "VASS",
	"Vpolyam", "VASTA", "VCYSGLY",
	// Redox and anaplerosis.
	"VH2O2", "VGPX", "VME", "VPC", "VACLY",
	// Transport.
	"VEGLC", "VELAC", "VEPYR", "VEGLN", "VEGLU", "VECYS", "VEADE", "VEINO", "VEADO",
	"VEHYPX", "VEXAN", "VEURT", "VECIT", "VEMAL", "VEFUM", "VEUREA", "VENH4", "VEASP",
	"VEMET", "VECYT", "VEALA",
}

// Values returns the rates in FluxNames order.
func (f *Fluxes) Values() []float64 {
	return []float64{
		f.VHK, f.VPGI, f.VPFK, f.VFDPA, f.VTPI, f.VGAPDH, f.VPGK, f.VPGM, f.VENOPGM, f.VPK, f.VLDH,
		f.VG6PDH, f.VPGLS, f.V6PGD, f.VR5PI, f.VR5PE, f.VTKL1, f.VTKL2, f.VTAL,
		f.VDPGM, f.V23DPGP,
		f.VAPRT, f.VHGPRT1, f.VHGPRT2, f.VADA, f.VAK, f.VAK2, f.VAMPD1, f.VIMPH, f.VXAO,
		f.VGMPS, f.VADSS, f.VADSL, f.VPNPase1, f.VXAO2, f.VNucleo2, f.VRKa, f.VRKb, f.VPRPPase, f.VOPRIBT,
		f.VGDH, f.VGLNS, f.VGLUCYS, f.VGSS, f.VGSR, f.VGGT, f.VGGCT, f.VMESE, f.VSAM, f.VSAH,
		f.VAHCY, f.VCBS, f.VCSE, f.VASPTA, f.VALATA, f.VGENASP, f.VFUM, f.VMLD, f.VASL, f.VASS,
		f.VPolyam, f.VASTA, f.VCYSGLY,
		f.VH2O2, f.VGPX, f.VME, f.VPC, f.VACLY,
		f.VEGLC, f.VELAC, f.VEPYR, f.VEGLN, f.VEGLU, f.VECYS, f.VEADE, f.VEINO, f.VEADO,
		f.VEHYPX, f.VEXAN, f.VEURT, f.VECIT, f.VEMAL, f.VEFUM, f.VEUREA, f.VENH4, f.VEASP,
		f.VEMET, f.VECYT, f.VEALA,
	}
}

// Map returns the rates keyed by reaction name.
func (f *Fluxes) Map() map[string]float64 {
	vals := f.Values()
	m := make(map[string]float64, len(vals))
	for i, name := range FluxNames {
		m[name] = vals[i]
	}
	return m
}

// Value looks up a single rate by reaction name.
func (f *Fluxes) Value(name string) (float64, bool) {
	for i, n := range FluxNames {
		if n == name {
			return f.Values()[i], true
		}
	}
	return 0, false
}

// PathwayGroups assigns each reaction to a metabolic pathway, used for
// aggregate flux reporting.
var PathwayGroups = map[string][]string{
	"Glycolysis":       {"VHK", "VPGI", "VPFK", "VFDPA", "VTPI", "VGAPDH", "VPGK", "VPGM", "VENOPGM", "VPK", "VLDH"},
	"PentosePhosphate": {"VG6PDH", "VPGLS", "V6PGD", "VR5PI", "VR5PE", "VTKL1", "VTKL2", "VTAL"},
	"BPGShunt":         {"VDPGM", "V23DPGP"},
	"Nucleotide": {"VAPRT", "VHGPRT1", "VHGPRT2", "VADA", "VAK", "VAK2", "VAMPD1", "VIMPH", "VXAO",
		"VGMPS", "VADSS", "VADSL", "VPNPase1", "VXAO2", "Vnucleo2", "VRKa", "VRKb", "VPRPPASe", "VOPRIBT"},
	"AminoAcid": {"VGDH", "VGLNS", "VGLUCYS", "VGSS", "VGGT", "VGGCT", "VMESE", "VSAM", "VSAH",
		"VAHCY", "VCBS", "VCSE", "VASPTA", "VALATA", "VGENASP", "VFUM", "VMLD", "VASL", "VASS",
		"Vpolyam", "VASTA", "VCYSGLY"},
	"Redox": {"VGSR", "VGPX", "VH2O2"},
	"Other": {"VME", "VPC", "VACLY"},
	"Transport": {"VEGLC", "VELAC", "VEPYR", "VEGLN", "VEGLU", "VECYS", "VEADE", "VEINO", "VEADO",
		"VEHYPX", "VEXAN", "VEURT", "VECIT", "VEMAL", "VEFUM", "VEUREA", "VENH4", "VEASP",
		"VEMET", "VECYT", "VEALA"},
}
