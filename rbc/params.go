package rbc

import (
	"fmt"
	"sort"
)

// Params resolves kinetic parameter names (maximum rates "vmax_*" and
// half-saturation constants "km_*") to values. Every recognized name has a
// compiled-in default; callers may override any subset, typically between
// calibration iterations. Overrides with unrecognized names are rejected at
// construction so that a typo cannot silently fall back to a default.
//
// A Params value is read-only after construction and safe to share between
// engine evaluations.
type Params struct {
	overrides map[string]float64
}

// DefaultParams returns the parameter table with no overrides.
func DefaultParams() *Params {
	return &Params{}
}

// NewParams builds a parameter table from an override mapping. An unknown
// parameter name is an error.
func NewParams(overrides map[string]float64) (*Params, error) {
	for name := range overrides {
		if _, ok := defaultKinetics[name]; !ok {
			return nil, fmt.Errorf("unknown kinetic parameter %q", name)
		}
	}
	ov := make(map[string]float64, len(overrides))
	for name, v := range overrides {
		ov[name] = v
	}
	return &Params{overrides: ov}, nil
}

// Get resolves a parameter: override if present, else default. Unknown
// names cannot occur past construction; Get panics on one to surface
// programming errors in the kinetics wiring itself.
func (p *Params) Get(name string) float64 {
	if v, ok := p.overrides[name]; ok {
		return v
	}
	v, ok := defaultKinetics[name]
	if !ok {
		panic(fmt.Sprintf("rbc: unregistered kinetic parameter %q", name))
	}
	return v
}

// Names returns every recognized parameter name, sorted.
func (p *Params) Names() []string {
	names := make([]string, 0, len(defaultKinetics))
	for name := range defaultKinetics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Overridden reports whether the named parameter carries an override.
func (p *Params) Overridden(name string) bool {
	_, ok := p.overrides[name]
	return ok
}

// Overrides returns the overridden parameter names, sorted.
func (p *Params) Overrides() []string {
	names := make([]string, 0, len(p.overrides))
	for name := range p.overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// defaultKinetics holds the calibrated defaults for every reaction in the
// network. Maximum rates are in mM/h, half-saturation constants in mM.
var defaultKinetics = map[string]float64{
	// Transport, extracellular exchange.
	"vmax_VELAC":  0.580000,  // lactate transporter
	"vmax_VEADE":  0.010000,  // adenine transporter
	"vmax_VEINO":  0.0001000, // inosine transporter
	"vmax_VEHYPX": 0.002217,  // hypoxanthine transporter
	"vmax_VEMAL":  0.001227,  // malate transporter

	// Glycolysis.
	"vmax_VHK":     0.267472, // hexokinase
	"vmax_VPGI":    0.204493, // phosphoglucose isomerase
	"vmax_VPFK":    0.391893, // phosphofructokinase
	"vmax_VFDPA":   1.156751, // fructose-bisphosphate aldolase
	"vmax_VTPI":    15.0,     // triose phosphate isomerase
	"vmax_VGAPDH":  6.389868, // glyceraldehyde-3-phosphate dehydrogenase
	"vmax_VPGK":    4.690379, // phosphoglycerate kinase
	"vmax_VPGM":    1.170854, // phosphoglycerate mutase
	"vmax_VENOPGM": 5.515612, // enolase
	"vmax_VPK":     0.936322, // pyruvate kinase
	"vmax_VLDH":    0.284952, // lactate dehydrogenase

	// Pentose phosphate pathway.
	"vmax_VG6PDH": 0.408870, // glucose-6-phosphate dehydrogenase
	"vmax_VPGLS":  4.111138, // phosphogluconolactonase
	"vmax_V6PGD":  10.0,     // 6-phosphogluconate dehydrogenase
	"vmax_VR5PI":  10.0,     // ribose-5-phosphate isomerase
	"vmax_VR5PE":  8.0,      // ribulose-5-phosphate 3-epimerase
	"vmax_VTKL1":  12.0,     // transketolase 1
	"vmax_VTKL2":  12.0,     // transketolase 2
	"vmax_VTAL":   14.0,     // transaldolase

	// Nucleotide metabolism.
	"vmax_VAK":      5.0,      // adenylate kinase
	"vmax_VAK2":     5.0,      // adenosine kinase
	"vmax_VAPRT":    1.087935, // adenine phosphoribosyltransferase
	"vmax_VADA":     2.0,      // adenosine deaminase
	"vmax_VAMPD1":   0.538065, // AMP deaminase
	"vmax_VHGPRT1":  0.645581, // hypoxanthine-guanine phosphoribosyltransferase 1
	"vmax_VHGPRT2":  2.5,      // hypoxanthine-guanine phosphoribosyltransferase 2
	"vmax_VGMPS":    0.379205, // GMP synthase
	"vmax_VH2O2":    1.0,      // peroxide clearance
	"vmax_VADSS":    3.0,      // adenylosuccinate synthase
	"vmax_VIMPH":    2.0,      // IMP dehydrogenase
	"vmax_Vnucleo2": 1.5,      // nucleotidase
	"vmax_VADSL":    4.0,      // adenylosuccinate lyase
	"vmax_VRKb":     3.0,      // phosphoribomutase
	"vmax_VXAO":     2.0,      // xanthine oxidase
	"vmax_VXAO2":    1.5,      // xanthine oxidase, urate step
	"vmax_VOPRIBT":  1.0,      // deoxyinosine phosphorylase
	"vmax_VPNPase1": 2.5,      // purine nucleoside phosphorylase
	"vmax_VRKa":     4.0,      // ribokinase
	"vmax_VPRPPASe": 5.0,      // phosphoribosyl pyrophosphate synthetase

	// Amino-acid metabolism.
	"vmax_VEGLN":  0.001000,  // glutamine transporter
	"vmax_VEGLU":  0.001000,  // glutamate transporter
	"vmax_VGLNS":  4.0,       // glutamine synthetase
	"vmax_VECYS":  0.0005000, // cysteine transporter
	"vmax_VGDH":   5.0,       // glutamate dehydrogenase
	"vmax_VASPTA": 4.0,       // aspartate aminotransferase
	"vmax_VALATA": 3.5,       // alanine aminotransferase

	// Redox metabolism.
	"vmax_VGSR":    6.0,      // glutathione reductase
	"vmax_VGPX":    1.079815, // glutathione peroxidase
	"vmax_VGLUCYS": 3.0,      // glutamate-cysteine ligase
	"vmax_VGSS":    4.0,      // glutathione synthetase

	// Transport, continued.
	"vmax_VEGLC":  1.077000, // glucose transporter
	"vmax_VEADO":  2.0,      // adenosine transport
	"vmax_VEPYR":  3.0,      // pyruvate transport
	"vmax_VEXAN":  1.0,      // xanthine transport
	"vmax_VECIT":  2.5,      // citrate transport
	"vmax_VEUREA": 1.5,      // urea transport
	"vmax_VEFUM":  2.0,      // fumarate transport
	"vmax_VEALA":  2.0,      // alanine transport
	"vmax_VEMET":  2.0,      // methionine transport
	"vmax_VEASP":  2.5,      // aspartate transport
	"vmax_VENH4":  4.0,      // ammonia transport
	"vmax_VECYT":  1.0,      // cytidine transport
	"vmax_VEURT":  1.5,      // urate transport

	// Rapoport-Luebering shunt and anaplerosis.
	"vmax_V23DPGP": 12.0, // 2,3-bisphosphoglycerate phosphatase
	"vmax_VDPGM":   10.0, // diphosphoglycerate mutase
	"vmax_VME":     3.0,  // malic enzyme
	"vmax_VPC":     2.5,  // pyruvate carboxylase
	"vmax_VACLY":   4.0,  // ATP citrate lyase
	"vmax_VASTA":   2.0,  // arginine N-succinyltransferase
	"vmax_VCYSGLY": 3.0,  // cysteinylglycine dipeptidase
	"vmax_VGGT":    3.0,  // gamma-glutamyltransferase
	"vmax_VGGCT":   2.5,  // gamma-glutamylcyclotransferase
	"vmax_VMESE":   2.0,  // methionine synthase
	"vmax_VSAM":    3.0,  // S-adenosylmethionine synthetase
	"vmax_VSAH":    2.5,  // methyltransferase
	"vmax_VAHCY":   3.0,  // adenosylhomocysteinase
	"vmax_VCBS":    2.0,  // cystathionine beta-synthase
	"vmax_VCSE":    2.5,  // cystathionine gamma-lyase
	"vmax_VGENASP": 2.0,  // PEP carboxykinase
	"vmax_VFUM":    5.0,  // fumarase
	"vmax_VMLD":    4.0,  // malate dehydrogenase
	"vmax_VASL":    3.0,  // argininosuccinate lyase
	"vmax_VASS":    2.5,  // argininosuccinate synthase
	"vmax_Vpolyam": 1.5,  // arginase / polyamine branch

	// Half-saturation constants: transport.
	"km_ELAC":  6.377583,
	"km_ADE":   0.369082,
	"km_EINO":  0.100345,
	"km_EHYPX": 9.993970,
	"km_EMAL":  9.998876,

	// Glycolysis.
	"km_GLC":   49.864721,
	"km_G6P":   0.146000,
	"km_F6P":   0.207000,
	"km_F16BP": 0.094000,
	"km_DHCP":  0.05,
	"km_GA3P":  0.02,
	"km_B13PG": 1.013344,
	"km_P3G":   0.134000,
	"km_P2G":   0.134000,
	"km_PEP":   0.175000,
	"km_PYR":   0.697000,
	"km_LAC":   49.862494,

	// Pentose phosphate pathway.
	"km_GO6P": 0.02,
	"km_GL6P": 0.1,
	"km_RU5P": 0.05,
	"km_R5P":  0.05,
	"km_X5P":  0.05,
	"km_E4P":  0.03,
	"km_S7P":  0.05,

	// Nucleotide metabolism.
	"km_HYPX":     0.355000,
	"km_ADO":      0.1,
	"km_AMP":      0.282865,
	"km_IMP":      0.231000,
	"km_XMP":      0.05,
	"km_GMP":      0.085000,
	"km_PRPP":     0.1,
	"km_GUA":      0.03,
	"km_R1P":      0.05,
	"km_DEOXYINO": 0.02,
	"km_INO":      0.1,
	"km_URT":      0.05,
	"km_XAN":      0.03,
	"km_RIB":      0.1,
	"km_ADESUC":   0.05,

	// Amino-acid metabolism.
	"km_GLN": 0.5,
	"km_GLU": 0.289000,
	"km_ASP": 0.200958,
	"km_ALA": 0.3,
	"km_CYS": 0.1,
	"km_MET": 0.1,
	"km_SER": 0.2,
	"km_ARG": 0.5,

	// Redox metabolism.
	"km_GSSG":   1.0,
	"km_GSH":    0.458000,
	"km_GLUCYS": 0.05,
	"km_H2O2":   0.001,

	// Cofactors.
	"km_ATP":   0.569395,
	"km_ADP":   0.402663,
	"km_NAD":   0.2,
	"km_NADH":  0.1,
	"km_NADP":  0.05,
	"km_NADPH": 0.02,
	"km_GTP":   0.5,
	"km_GDP":   0.3,

	// Extracellular transport.
	"km_EGLC":  49.484000,
	"km_EADO":  0.1,
	"km_EADE":  10.0,
	"km_EPYR":  0.2,
	"km_EXAN":  0.03,
	"km_ECIT":  0.2,
	"km_EUREA": 0.5,
	"km_EFUM":  0.1,
	"km_EGLN":  5.000000,
	"km_EGLU":  5.000000,
	"km_EALA":  0.3,
	"km_ECYS":  5.000000,
	"km_EMET":  0.1,
	"km_EASP":  0.2,
	"km_ENH4":  0.1,
	"km_ECYT":  0.05,
	"km_EURT":  0.05,

	// Remaining metabolites.
	"km_B23PG":   1.013344,
	"km_CYSTHIO": 0.02,
	"km_HCYS":    0.05,
	"km_METTHF":  0.02,
	"km_THF":     0.02,
	"km_ADOMET":  0.1,
	"km_SAH":     0.05,
	"km_METCYT":  0.02,
	"km_ARGSUC":  0.05,
	"km_CITR":    0.1,
	"km_AKG":     0.2,
	"km_NH4":     0.1,
	"km_GLUAA":   0.05,
	"km_AA":      0.1,
	"km_OXOP":    0.05,
	"km_GLY":     0.2,
	"km_CYSGLY":  0.05,
	"km_ORN":     0.1,
	"km_UREA":    0.5,
	"km_ACCOA":   0.02,
	"km_O2":      0.2,
	"km_FUM":     0.1,
	"km_SUCARG":  0.05,
	"km_CYT":     0.05,
	"km_OAA":     0.05,
	"km_CIT":     0.2,
	"km_COA":     0.02,
	"km_SUCCOA":  0.05,
	"km_MAL":     0.1,
}
