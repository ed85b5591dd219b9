// Package construct builds node trees from parser events.
//
// A parser reports a document as a stream of Events: BeginMapping and
// BeginSequence open collections which the matching End events close,
// Scalar events carry the text of leaves, and Alias events refer back to an
// anchored value. A Builder consumes the events of one document and calls
// the node.Factory once per event to build the tree.
//
// # Tags
//
// Collections are dispatched on their tag. Mappings become a node.Map
// unless tagged !!omap, !!pairs or !!set (whose keys are the elements).
// Sequences become a node.Sequence unless tagged !!omap or !!pairs, in which
// case each element must be a mapping with a single entry.
//
// Scalars tagged !!null, !!bool, !!int, !!float, !!str, !!binary or
// !!timestamp must parse as such, else the builder fails with ErrScalar.
// Untagged plain scalars are resolved to the first of null, bool, integer,
// decimal or timestamp which matches and are text otherwise; quoted scalars
// and scalars with other tags are text. Integers get the narrowest width
// holding them and decimals the kind the factory's precision calls for.
//
// # Anchors
//
// A value is registered under its anchor once it is complete, so an Alias
// inserts the very same node instance again. Aliases to a collection which
// is still open are reported as unknown.
package construct
