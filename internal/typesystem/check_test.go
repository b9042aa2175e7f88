package typesystem

import (
	"errors"
	"testing"

	"github.com/fluxo-lang/fluxo/internal/ast"
)

func ctxWith(t *testing.T, bindings ...ast.Var) Ctx {
	t.Helper()
	ctx := NewCtx()
	for _, v := range bindings {
		if err := ctx.Put(v, ast.NewTypeMeta()); err != nil {
			t.Fatalf("Put %s failed: %v", v, err)
		}
	}
	return ctx
}

func TestSortRule(t *testing.T) {
	typ, err := CalculateType(ast.NewTypeMeta(), NewCtx())
	if err != nil {
		t.Fatalf("type of * failed: %v", err)
	}
	if !typ.Equal(ast.NewKindMeta()) {
		t.Errorf("type of * = %s, want □", typ)
	}
}

func TestTopSortHasNoType(t *testing.T) {
	_, err := CalculateType(ast.NewKindMeta(), NewCtx())
	var undef *UndefError
	if !errors.As(err, &undef) {
		t.Fatalf("expected UndefError for □, got %v", err)
	}
}

func TestVarRule(t *testing.T) {
	ctx := ctxWith(t, "w")

	typ, err := CalculateType(ast.NewVar("w"), ctx)
	if err != nil {
		t.Fatalf("type of w failed: %v", err)
	}
	if !typ.Equal(ast.NewTypeMeta()) {
		t.Errorf("type of w = %s, want *", typ)
	}
}

func TestVarRuleUnknown(t *testing.T) {
	_, err := CalculateType(ast.NewVar("y"), NewCtx())
	var unknown *UnknownVarError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownVarError, got %v", err)
	}
}

func TestVarRuleSelfReference(t *testing.T) {
	// A declaration is judged against the context without its own entry,
	// so a : a never derives a type for a.
	ctx := NewCtx()
	if err := ctx.Put("a", ast.NewVar("a")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	_, err := CalculateType(ast.NewVar("a"), ctx)
	var unknown *UnknownVarError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownVarError, got %v", err)
	}
}

func TestAbstraction(t *testing.T) {
	// λx : * . λm : * . (λk : * . k) m under w : * derives Πx : * . Πm : * . *.
	ctx := ctxWith(t, "w")
	e := ast.NewAbs("x", ast.NewTypeMeta(),
		ast.NewAbs("m", ast.NewTypeMeta(),
			ast.NewApp(
				ast.NewAbs("k", ast.NewTypeMeta(), ast.NewVar("k")),
				ast.NewVar("m"),
			)))

	typ, err := CalculateType(e, ctx)
	if err != nil {
		t.Fatalf("type of %s failed: %v", e, err)
	}

	want := ast.NewFor("x", ast.NewTypeMeta(),
		ast.NewFor("m", ast.NewTypeMeta(), ast.NewTypeMeta()))
	if !typ.Equal(want) {
		t.Errorf("type of %s = %s, want %s", e, typ, want)
	}
}

func TestFormation(t *testing.T) {
	tests := []struct {
		name string
		exp  ast.Exp
		want ast.Exp
	}{
		{
			name: "pi over a type is a kind",
			exp:  ast.NewFor("a", ast.NewTypeMeta(), ast.NewTypeMeta()),
			want: ast.NewKindMeta(),
		},
		{
			name: "pi over a term type is a type",
			exp:  ast.NewFor("a", ast.NewTypeMeta(), ast.NewVar("a")),
			want: ast.NewTypeMeta(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, err := CalculateType(tt.exp, NewCtx())
			if err != nil {
				t.Fatalf("type of %s failed: %v", tt.exp, err)
			}
			if !typ.Equal(tt.want) {
				t.Errorf("type of %s = %s, want %s", tt.exp, typ, tt.want)
			}
		})
	}
}

func TestApplication(t *testing.T) {
	// (λx : * . x) w under w : * has type *.
	ctx := ctxWith(t, "w")
	e := ast.NewApp(
		ast.NewAbs("x", ast.NewTypeMeta(), ast.NewVar("x")),
		ast.NewVar("w"),
	)

	typ, err := CalculateType(e, ctx)
	if err != nil {
		t.Fatalf("type of %s failed: %v", e, err)
	}
	if !typ.Equal(ast.NewTypeMeta()) {
		t.Errorf("type of %s = %s, want *", e, typ)
	}
}

func TestApplicationNotPi(t *testing.T) {
	// x x under x : * fails because the function side is not a Π.
	ctx := ctxWith(t, "x")
	e := ast.NewApp(ast.NewVar("x"), ast.NewVar("x"))

	_, err := CalculateType(e, ctx)
	var compat *CompatError
	if !errors.As(err, &compat) {
		t.Fatalf("expected CompatError, got %v", err)
	}
	if len(compat.Accepted) != 0 {
		t.Errorf("no candidate set applies here, got %v", compat.Accepted)
	}
	if !compat.Actual.Equal(ast.NewTypeMeta()) {
		t.Errorf("Actual = %s, want *", compat.Actual)
	}
}

func TestApplicationArgMismatch(t *testing.T) {
	// (λx : * . x) applied to something of type b, not *.
	ctx := ctxWith(t, "b")
	if err := ctx.Put("v", ast.NewVar("b")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	e := ast.NewApp(
		ast.NewAbs("x", ast.NewTypeMeta(), ast.NewVar("x")),
		ast.NewVar("v"),
	)

	_, err := CalculateType(e, ctx)
	var compat *CompatError
	if !errors.As(err, &compat) {
		t.Fatalf("expected CompatError, got %v", err)
	}
	if !compat.Actual.Equal(ast.NewVar("b")) {
		t.Errorf("Actual = %s, want b", compat.Actual)
	}
}

func TestConversion(t *testing.T) {
	// The annotation (λt : * . t) b normalizes to b, so an argument of type
	// b is accepted.
	ctx := ctxWith(t, "b")
	if err := ctx.Put("v", ast.NewVar("b")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	anno := ast.NewApp(
		ast.NewAbs("t", ast.NewTypeMeta(), ast.NewVar("t")),
		ast.NewVar("b"),
	)
	e := ast.NewApp(ast.NewAbs("x", anno, ast.NewVar("x")), ast.NewVar("v"))

	typ, err := CalculateType(e, ctx)
	if err != nil {
		t.Fatalf("type of %s failed: %v", e, err)
	}
	if !typ.Equal(ast.NewVar("b")) {
		t.Errorf("type of %s = %s, want b", e, typ)
	}
}

func TestDependentResultType(t *testing.T) {
	// (λx : * . λy : x . y) b under b : *. Substitution rewrites binder
	// bodies only; the inner annotation keeps its symbolic name.
	ctx := ctxWith(t, "b")
	e := ast.NewApp(
		ast.NewAbs("x", ast.NewTypeMeta(),
			ast.NewAbs("y", ast.NewVar("x"), ast.NewVar("y"))),
		ast.NewVar("b"),
	)

	typ, err := CalculateType(e, ctx)
	if err != nil {
		t.Fatalf("type of %s failed: %v", e, err)
	}

	want := ast.NewFor("y", ast.NewVar("x"), ast.NewVar("b"))
	if !typ.Equal(want) {
		t.Errorf("type of %s = %s, want %s", e, typ, want)
	}
}
