// Package node provides a typed, mutable document model for YAML-like data.
//
// # Overview
//
// A document is a tree of Node values. Scalars keep strict type distinctions:
// integers come in byte, short, int, long and arbitrary precision widths,
// decimals as float, double and arbitrary precision, and there are text,
// binary, timestamp, boolean and null scalars. Containers come in five
// variants which differ by key uniqueness and order:
//
//   - Map: unique keys, unspecified order (removal may reorder)
//   - OrderedMap: unique keys, insertion order
//   - Pairs: repeated keys allowed, insertion order, see Pairs.GetAll
//   - Set: unique elements, insertion order
//   - Sequence: ordered, duplicates allowed
//
// The Node interface is sealed. Code dispatching on the concrete kind uses a
// type switch over the pointer types listed on Node, or Node.Kind.
//
// # Creating Nodes
//
// Nodes are created through a Factory, which turns absent inputs into the
// null node and applies a decimal Precision policy:
//
//	f := node.NewFactory(node.WithPrecision(node.DoublePrecision))
//	m := f.Map()
//	_ = m.Put("name", "x")
//	_ = m.Put("size", 12)          // a Byte node
//	_ = m.Put("ratio", 0.5)        // a Double node
//	_ = m.Put("data", []byte(nil)) // the null node
//
// Containers convert what is added to them with the factory which created
// them, see Factory.From. Integers read from text are narrowed to the
// smallest width that holds them, see Factory.Integral.
//
// # Missing and Null
//
// Lookups never fail. Path and At return the Missing node when there is
// nothing at the requested location, while a present but empty value is the
// null node:
//
//	m.Path("absent").Exists() // false
//	_ = m.Put("k", nil)
//	m.Path("k").IsNull()      // true
//
// Get on a container returns nil rather than Missing for absent entries.
//
// # Coercion
//
// Every node implements the As accessors, which return the caller's default
// when the node cannot supply the requested kind. Integral coercions never
// wrap: a value which does not fit the requested width yields the default.
//
// # Identity and Cycles
//
// A node may be a child of several containers (YAML aliases produce this).
// Inserting a container into itself fails with ErrCycle. Longer cycles are
// not detected, and functions which recurse over the tree (Equal, Hash,
// Compare, Walk, String) do not terminate on them. Copy preserves aliasing.
//
// # Concurrency
//
// Scalars, the singletons and factories are immutable and may be shared.
// Containers are not safe for concurrent mutation.
package node
