package jsonio

import (
	jsonpatch "github.com/evanphx/json-patch"
	"github.com/signadot/ydom/node"
)

// Patch applies the RFC 6902 patch document patch to the JSON rendering of
// n and decodes the result. Kinds without a JSON counterpart do not survive:
// ordered maps and pairs come back as maps, sets as sequences.
func Patch(f *node.Factory, n node.Node, patch []byte) (node.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, err
	}
	d, err := Marshal(n)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	return Decode(f, out)
}

// PatchNode is Patch with the patch document given as a tree, for instance
// one decoded from YAML.
func PatchNode(f *node.Factory, n, patch node.Node) (node.Node, error) {
	d, err := Marshal(patch)
	if err != nil {
		return nil, err
	}
	return Patch(f, n, d)
}
