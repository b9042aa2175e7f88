package typesystem

import (
	"fmt"

	"github.com/fluxo-lang/fluxo/internal/ast"
)

// sorts are the accepted types of a well-formed declaration: `*` or `□`.
var sorts = []ast.Exp{ast.NewTypeMeta(), ast.NewKindMeta()}

// CalculateType derives the type of exp under ctx in a single deterministic
// inference pass:
//
//	SORT   * : □; □ itself has no type.
//	VAR    look the name up, judge the declaration against the context
//	       without the entry itself, return its normal form.
//	ABST   λx:A.b gets Πx:A.T where b : T under Γ,x:A; the Π must itself be
//	       a type or kind under Γ.
//	FORM   Πx:A.B gets the type of B under Γ,x:A, once A is a type or kind.
//	APPL   f a gets B[x:=a] reduced, where f : Πx:A.B and a : A.
//
// Conversion happens implicitly: compared types are beta-normalized first.
func CalculateType(exp ast.Exp, ctx Ctx) (ast.Exp, error) {
	switch e := exp.(type) {
	case ast.Ref:
		return calculateVarType(e, ctx)
	case ast.Abs:
		inner, err := ctx.Extend(e.Param, e.Anno)
		if err != nil {
			return nil, err
		}
		bodyTyp, err := CalculateType(e.Body, inner)
		if err != nil {
			return nil, err
		}
		pi := ast.NewFor(e.Param, e.Anno, bodyTyp)
		if err := validateType(pi, sorts, ctx); err != nil {
			return nil, err
		}
		return pi, nil
	case ast.For:
		if err := validateType(e.Anno, sorts, ctx); err != nil {
			return nil, err
		}
		inner, err := ctx.Extend(e.Param, e.Anno)
		if err != nil {
			return nil, err
		}
		return CalculateType(e.Body, inner)
	case ast.App:
		return calculateAppType(e, ctx)
	case ast.TypeMeta:
		return ast.NewKindMeta(), nil
	case ast.KindMeta:
		return nil, NewUndefError(exp)
	default:
		return nil, fmt.Errorf("typesystem: unhandled expression %T", exp)
	}
}

func calculateVarType(e ast.Ref, ctx Ctx) (ast.Exp, error) {
	v := e.Occ.GetVar()
	typ, err := ctx.Get(v)
	if err != nil {
		return nil, err
	}
	// The declaration must itself be a type or kind, judged against the
	// context without this entry to avoid circular self-reference.
	rest, err := ctx.Remove(v)
	if err != nil {
		return nil, err
	}
	if err := validateType(typ, sorts, rest); err != nil {
		return nil, err
	}
	return Reduce(typ, ctx)
}

func calculateAppType(e ast.App, ctx Ctx) (ast.Exp, error) {
	fnTyp, err := CalculateType(e.Fn, ctx)
	if err != nil {
		return nil, err
	}
	red, err := Reduce(fnTyp, ctx)
	if err != nil {
		return nil, err
	}
	pi, ok := red.(ast.For)
	if !ok {
		// No candidate set applies: the function side is simply not a Π.
		return nil, NewCompatError(e.Fn, red, nil)
	}
	if err := validateType(e.Arg, []ast.Exp{pi.Anno}, ctx); err != nil {
		return nil, err
	}
	return Reduce(pi.Body.Subst(ast.NewIdx(pi.Param), e.Arg), ctx)
}

// validateType checks that exp's type, once beta-normalized, is structurally
// equal to one of the accepted types (also normalized). Equality of normal
// forms is the only notion of type compatibility in the system.
func validateType(exp ast.Exp, accepted []ast.Exp, ctx Ctx) error {
	act, err := CalculateType(exp, ctx)
	if err != nil {
		return err
	}
	norm, err := Reduce(act, ctx)
	if err != nil {
		return err
	}
	for _, t := range accepted {
		want, err := Reduce(t, ctx)
		if err != nil {
			return err
		}
		if norm.Equal(want) {
			return nil
		}
	}
	return NewCompatError(exp, norm, accepted)
}
