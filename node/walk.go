package node

// Walk calls f on n and, when f returns true, on its children, then calls
// f again with isPost set. The children of keyed containers are visited
// key then value for each entry, those of sets and sequences in order.
//
// Walk does not track visited nodes: a node aliased in several places is
// visited each time, and indirect cycles do not terminate.
func Walk(n Node, f func(n Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		if err := walkChildren(n, f); err != nil {
			return err
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

func walkChildren(n Node, f func(n Node, isPost bool) (bool, error)) error {
	var es *entries
	switch x := n.(type) {
	case *Map:
		es = &x.es
	case *OrderedMap:
		es = &x.es
	case *Pairs:
		es = &x.es
	case *Set:
		for _, e := range x.es.list {
			if err := Walk(e.key, f); err != nil {
				return err
			}
		}
		return nil
	case *Sequence:
		for _, v := range x.list {
			if err := Walk(v, f); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
	for _, e := range es.list {
		if err := Walk(e.key, f); err != nil {
			return err
		}
		if err := Walk(e.val, f); err != nil {
			return err
		}
	}
	return nil
}
