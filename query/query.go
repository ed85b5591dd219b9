// Package query evaluates github.com/expr-lang/expr expressions against node
// trees.
//
// The document is converted with Native. When it is a mapping its fields
// are the variables of the expression; it is also available as doc. The
// function at(path) looks up a node.At path in the document and getenv
// reads the environment.
package query

import (
	"errors"
	"fmt"
	"iter"
	"os"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/ydom/debug"
	"github.com/signadot/ydom/node"
)

var ErrQuery = errors.New("query error")

// Query is a compiled expression.
type Query struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Query, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return &Query{src: src, prg: prg}, nil
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

func (q *Query) String() string { return q.src }

// Run evaluates q against n and returns the raw result.
func (q *Query) Run(n node.Node) (any, error) {
	env, err := newEnv(n)
	if err != nil {
		return nil, err
	}
	res, err := expr.Run(q.prg, env)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrQuery, q.src, err)
	}
	if debug.Query() {
		debug.Logf("query %q on %s gave %v\n", q.src, n.Kind(), res)
	}
	return res, nil
}

// Eval evaluates q against n and builds a tree for the result with f.
func (q *Query) Eval(f *node.Factory, n node.Node) (node.Node, error) {
	res, err := q.Run(n)
	if err != nil {
		return nil, err
	}
	rn, err := f.From(res)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: result %T: %w", ErrQuery, q.src, res, err)
	}
	return rn, nil
}

// Test evaluates q against n, which must give a boolean.
func (q *Query) Test(n node.Node) (bool, error) {
	res, err := q.Run(n)
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s: want a bool, got %T", ErrQuery, q.src, res)
	}
	return b, nil
}

func newEnv(n node.Node) (map[string]any, error) {
	v, err := Native(n)
	if err != nil {
		return nil, err
	}
	env := map[string]any{}
	if m, ok := v.(map[string]any); ok {
		for k, x := range m {
			env[k] = x
		}
	}
	env["doc"] = v
	env["at"] = func(path string) any {
		r, err := Native(node.At(n, path))
		if err != nil {
			return nil
		}
		return r
	}
	return env, nil
}

// Eval compiles src and evaluates it against n.
func Eval(f *node.Factory, n node.Node, src string) (node.Node, error) {
	q, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return q.Eval(f, n)
}

// Filter returns a sequence of the elements of seq for which src is true.
// The elements are shared with seq, not copied. seq may be a Sequence or a
// Set.
func Filter(f *node.Factory, seq node.Node, src string) (*node.Sequence, error) {
	q, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return q.Filter(f, seq)
}

// Filter is the package function Filter for a compiled query.
func (q *Query) Filter(f *node.Factory, seq node.Node) (*node.Sequence, error) {
	var elts iter.Seq[node.Node]
	switch x := seq.(type) {
	case *node.Sequence:
		elts = x.Elements()
	case *node.Set:
		elts = x.Elements()
	default:
		return nil, fmt.Errorf("%w: cannot filter %s", ErrQuery, seq.Kind())
	}
	res := f.Sequence()
	i := 0
	for v := range elts {
		ok, err := q.Test(v)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		if ok {
			if err := res.AddNode(v); err != nil {
				return nil, err
			}
		}
		i++
	}
	return res, nil
}
