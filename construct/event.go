package construct

import "fmt"

// Event represents a structural event from a parser.
//
// Mappings deliver their children as alternating keys and values.
type Event struct {
	Type EventType

	// Tag applies to Scalar, BeginMapping and BeginSequence. It is either
	// empty, a short form such as "!!int" or a long form such as
	// "tag:yaml.org,2002:int".
	Tag string

	// Anchor names the value for later Alias events. For an Alias event it
	// is the name referred to.
	Anchor string

	// Value is the text of a Scalar.
	Value string
	// Plain is true for unquoted scalars, which are resolved implicitly
	// when untagged.
	Plain bool
}

// EventType represents the type of a structural event.
type EventType int

const (
	BeginMapping EventType = iota
	EndMapping
	BeginSequence
	EndSequence
	Scalar
	Alias
)

func (t EventType) String() string {
	switch t {
	case BeginMapping:
		return "BeginMapping"
	case EndMapping:
		return "EndMapping"
	case BeginSequence:
		return "BeginSequence"
	case EndSequence:
		return "EndSequence"
	case Scalar:
		return "Scalar"
	case Alias:
		return "Alias"
	default:
		return "Unknown"
	}
}

func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *EventType) UnmarshalText(d []byte) error {
	k := string(d)
	pt, ok := map[string]EventType{
		"BeginMapping":  BeginMapping,
		"EndMapping":    EndMapping,
		"BeginSequence": BeginSequence,
		"EndSequence":   EndSequence,
		"Scalar":        Scalar,
		"Alias":         Alias,
	}[k]
	if !ok {
		return fmt.Errorf("unknown event type %q", k)
	}
	*t = pt
	return nil
}

// IsBegin reports whether the event opens a collection.
func (t EventType) IsBegin() bool {
	return t == BeginMapping || t == BeginSequence
}

// IsEnd reports whether the event closes a collection.
func (t EventType) IsEnd() bool {
	return t == EndMapping || t == EndSequence
}

func (e Event) String() string {
	switch e.Type {
	case Scalar:
		return fmt.Sprintf("%s %s %q", e.Type, e.Tag, e.Value)
	case Alias:
		return fmt.Sprintf("%s *%s", e.Type, e.Anchor)
	}
	return fmt.Sprintf("%s %s", e.Type, e.Tag)
}
