package node

type missing struct{ defaults }

var missingNode Node = &missing{}

// Missing returns the sentinel for an absent node. It is distinct from the
// null node: Missing().Exists() is false.
func Missing() Node { return missingNode }

// stored maps the values a container cannot hold to null.
func stored(v Node) Node {
	if v == nil || v == missingNode {
		return nullNode
	}
	return v
}

func (*missing) Kind() Kind { return MissingKind }
func (*missing) Exists() bool { return false }
func (m *missing) Copy() Node { return m }
func (m *missing) copyWith(map[Node]Node) Node { return m }
func (*missing) String() string { return "<missing>" }
