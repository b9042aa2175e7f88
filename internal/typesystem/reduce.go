package typesystem

import "github.com/fluxo-lang/fluxo/internal/ast"

// DefaultMaxSteps bounds the number of reduction passes spent on one Reduce
// call, nested subterm reductions included. Well-typed terms normalize long
// before this; the bound exists so ill-typed, growing input surfaces as an
// error instead of a hang.
const DefaultMaxSteps = 10000

// Reduce rewrites exp to beta-normal form: full passes repeat until one
// leaves the tree unchanged. Reduction is type-blind; termination rests on
// the caller reducing only well-typed terms, backstopped by the pass budget.
// The context is threaded for signature symmetry with CalculateType; no
// lookup happens during reduction.
func Reduce(exp ast.Exp, ctx Ctx) (ast.Exp, error) {
	return ReduceWithin(exp, ctx, DefaultMaxSteps)
}

// ReduceWithin is Reduce with an explicit pass budget; exceeding it fails
// with a LimitError naming the original expression.
func ReduceWithin(exp ast.Exp, ctx Ctx, maxSteps int) (ast.Exp, error) {
	r := &reducer{ctx: ctx, root: exp, max: maxSteps, left: maxSteps}
	return r.fix(exp)
}

// reducer carries one shared pass budget across the whole reduction,
// subterm recursion included, so growing terms run out of passes instead of
// out of stack.
type reducer struct {
	ctx  Ctx
	root ast.Exp
	max  int
	left int
}

func (r *reducer) fix(exp ast.Exp) (ast.Exp, error) {
	cur := exp
	for {
		if r.left == 0 {
			return nil, NewLimitError(r.root, r.max)
		}
		r.left--
		next, err := r.once(cur)
		if err != nil {
			return nil, err
		}
		if next.Equal(cur) {
			return next, nil
		}
		cur = next
	}
}

// once performs one reduction pass: binder annotations and bodies are
// normalized, and an application whose function side is a literal abstraction
// takes a single beta step.
func (r *reducer) once(exp ast.Exp) (ast.Exp, error) {
	switch e := exp.(type) {
	case ast.Abs:
		anno, body, err := r.pair(e.Anno, e.Body)
		if err != nil {
			return nil, err
		}
		return ast.Abs{Param: e.Param, Anno: anno, Body: body}, nil
	case ast.For:
		anno, body, err := r.pair(e.Anno, e.Body)
		if err != nil {
			return nil, err
		}
		return ast.For{Param: e.Param, Anno: anno, Body: body}, nil
	case ast.App:
		if fn, ok := e.Fn.(ast.Abs); ok {
			return fn.Body.Subst(ast.NewIdx(fn.Param), e.Arg), nil
		}
		fn, arg, err := r.pair(e.Fn, e.Arg)
		if err != nil {
			return nil, err
		}
		return ast.App{Fn: fn, Arg: arg}, nil
	default:
		return exp, nil
	}
}

func (r *reducer) pair(a, b ast.Exp) (ast.Exp, ast.Exp, error) {
	ra, err := r.fix(a)
	if err != nil {
		return nil, nil, err
	}
	rb, err := r.fix(b)
	if err != nil {
		return nil, nil, err
	}
	return ra, rb, nil
}
