package node

import "fmt"

type Kind int

const (
	MissingKind Kind = iota
	NullKind
	BoolKind
	TextKind
	BinaryKind
	TimeKind
	ByteKind
	ShortKind
	IntKind
	LongKind
	BigIntKind
	FloatKind
	DoubleKind
	BigDecimalKind
	MapKind
	OrderedMapKind
	PairsKind
	SetKind
	SequenceKind
)

var kindNames = map[Kind]string{
	MissingKind:    "Missing",
	NullKind:       "Null",
	BoolKind:       "Bool",
	TextKind:       "Text",
	BinaryKind:     "Binary",
	TimeKind:       "Time",
	ByteKind:       "Byte",
	ShortKind:      "Short",
	IntKind:        "Int",
	LongKind:       "Long",
	BigIntKind:     "BigInt",
	FloatKind:      "Float",
	DoubleKind:     "Double",
	BigDecimalKind: "BigDecimal",
	MapKind:        "Map",
	OrderedMapKind: "OrderedMap",
	PairsKind:      "Pairs",
	SetKind:        "Set",
	SequenceKind:   "Sequence",
}

func (k Kind) String() string {
	s, ok := kindNames[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	for kk, s := range kindNames {
		if s == string(d) {
			*k = kk
			return nil
		}
	}
	return fmt.Errorf("unrecognized kind %q", d)
}

// Kinds returns every kind, leaves first.
func Kinds() []Kind {
	res := make([]Kind, 0, len(kindNames))
	for k := MissingKind; k <= SequenceKind; k++ {
		res = append(res, k)
	}
	return res
}

// Tag returns the short YAML tag conventionally used for the kind.
func (k Kind) Tag() string {
	switch k {
	case NullKind:
		return "!!null"
	case BoolKind:
		return "!!bool"
	case TextKind:
		return "!!str"
	case BinaryKind:
		return "!!binary"
	case TimeKind:
		return "!!timestamp"
	case ByteKind, ShortKind, IntKind, LongKind, BigIntKind:
		return "!!int"
	case FloatKind, DoubleKind, BigDecimalKind:
		return "!!float"
	case MapKind:
		return "!!map"
	case OrderedMapKind:
		return "!!omap"
	case PairsKind:
		return "!!pairs"
	case SetKind:
		return "!!set"
	case SequenceKind:
		return "!!seq"
	default:
		return ""
	}
}

func (k Kind) IsContainer() bool {
	switch k {
	case MapKind, OrderedMapKind, PairsKind, SetKind, SequenceKind:
		return true
	default:
		return false
	}
}

func (k Kind) IsScalar() bool {
	return k != MissingKind && !k.IsContainer()
}

func (k Kind) IsIntegral() bool {
	switch k {
	case ByteKind, ShortKind, IntKind, LongKind, BigIntKind:
		return true
	default:
		return false
	}
}

func (k Kind) IsDecimal() bool {
	switch k {
	case FloatKind, DoubleKind, BigDecimalKind:
		return true
	default:
		return false
	}
}

func (k Kind) IsNumber() bool { return k.IsIntegral() || k.IsDecimal() }

// IsKeyed reports whether the kind stores key/value entries.
func (k Kind) IsKeyed() bool {
	switch k {
	case MapKind, OrderedMapKind, PairsKind:
		return true
	default:
		return false
	}
}

func (k Kind) IsMap() bool { return k == MapKind }
func (k Kind) IsOrderedMap() bool { return k == OrderedMapKind }
func (k Kind) IsPairs() bool { return k == PairsKind }
func (k Kind) IsSet() bool { return k == SetKind }
func (k Kind) IsSequence() bool { return k == SequenceKind }
func (k Kind) IsBinary() bool { return k == BinaryKind }
func (k Kind) IsBool() bool { return k == BoolKind }
func (k Kind) IsNull() bool { return k == NullKind }
func (k Kind) IsText() bool { return k == TextKind }
func (k Kind) IsTime() bool { return k == TimeKind }
