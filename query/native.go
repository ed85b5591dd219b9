package query

import (
	"fmt"
	"iter"
	"math/big"
	"time"

	"github.com/signadot/ydom/node"
)

// Native converts a tree to plain Go values for expression evaluation.
//
// Keyed containers become map[string]any keyed by the text of their keys,
// with later pairs entries replacing earlier ones. Sets and sequences become
// []any. Integrals become int unless they overflow it, decimals float64,
// text string, binary []byte and timestamps time.Time.
func Native(n node.Node) (any, error) {
	return native(n, map[node.Node]bool{})
}

func native(n node.Node, path map[node.Node]bool) (any, error) {
	k := n.Kind()
	switch {
	case k == node.NullKind, k == node.MissingKind:
		return nil, nil
	case k == node.BoolKind:
		return n.AsBool(false), nil
	case k == node.BigIntKind:
		if n.(node.Fitter).FitsLong() {
			return int(n.AsLong(0)), nil
		}
		return n.AsBigInt(new(big.Int)), nil
	case k.IsIntegral():
		return int(n.AsLong(0)), nil
	case k.IsDecimal():
		return n.AsDouble(0), nil
	case k == node.TextKind:
		return n.AsText(""), nil
	case k == node.BinaryKind:
		return n.AsBinary(nil), nil
	case k == node.TimeKind:
		return n.AsTime(time.Time{}), nil
	}
	if path[n] {
		return nil, fmt.Errorf("%w: %s contains itself", ErrQuery, k)
	}
	path[n] = true
	defer delete(path, n)
	switch x := n.(type) {
	case *node.Sequence:
		return nativeList(x.Elements(), path)
	case *node.Set:
		return nativeList(x.Elements(), path)
	}
	es := node.SortedEntries(n)
	if p, ok := n.(*node.Pairs); ok {
		es = p.Entries()
	}
	res := map[string]any{}
	for ek, ev := range es {
		v, err := native(ev, path)
		if err != nil {
			return nil, err
		}
		res[keyText(ek)] = v
	}
	return res, nil
}

func nativeList(vs iter.Seq[node.Node], path map[node.Node]bool) ([]any, error) {
	res := []any{}
	for v := range vs {
		nv, err := native(v, path)
		if err != nil {
			return nil, err
		}
		res = append(res, nv)
	}
	return res, nil
}

func keyText(k node.Node) string {
	switch {
	case k.IsNull():
		return "null"
	case k.IsContainer():
		return k.String()
	}
	return k.AsText("")
}
