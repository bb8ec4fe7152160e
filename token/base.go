package token

// IntegerBase is the radix of an integer literal. Octal is reserved: it is
// part of the enumeration but no lexical rule produces it.
type IntegerBase int

const (
	Binary IntegerBase = iota
	Octal
	Decimal
	Hexadecimal
)

// Radix returns the numeric base as used for value conversion.
func (b IntegerBase) Radix() int {
	switch b {
	case Binary:
		return 2
	case Octal:
		return 8
	case Hexadecimal:
		return 16
	default:
		return 10
	}
}

func (b IntegerBase) String() string {
	switch b {
	case Binary:
		return "binary"
	case Octal:
		return "octal"
	case Decimal:
		return "decimal"
	case Hexadecimal:
		return "hexadecimal"
	default:
		return "unknown"
	}
}
