package mapping

// Unit is a code from the fixed controlled vocabulary attached to
// value-with-unit leaves, following http://qudt.org/vocab/unit/.
type Unit string

const (
	NanoA    Unit = "NanoA"
	KiloEV   Unit = "KiloEV"
	EV       Unit = "EV"
	MilliRAD Unit = "MilliRAD"
	DEG      Unit = "DEG"
	MilliM   Unit = "MilliM"
	MicroM   Unit = "MicroM"
	NanoM2   Unit = "NanoM2"
	SEC      Unit = "SEC"
	V        Unit = "V"
	SR       Unit = "SR"
	UNITLESS Unit = "UNITLESS"
	NUM      Unit = "NUM"
	MicroA   Unit = "MicroA"
)

// KnownUnit reports whether u belongs to the controlled vocabulary.
func KnownUnit(u Unit) bool {
	switch u {
	case NanoA, KiloEV, EV, MilliRAD, DEG, MilliM, MicroM, NanoM2, SEC, V, SR, UNITLESS, NUM, MicroA:
		return true
	}
	return false
}
