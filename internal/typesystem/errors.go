package typesystem

import (
	"fmt"
	"strings"

	"github.com/fluxo-lang/fluxo/internal/ast"
)

// The judgment procedures fail with plain error values; each failure mode has
// a dedicated type so callers can branch on it with errors.As. Messages keep
// the multi-line `:type …` diagnostic shape the shell prints line by line.

// RedeclError indicates a variable already carries a structurally different
// type in the context.
type RedeclError struct {
	Var ast.Var
	Old ast.Exp
	New ast.Exp
}

func NewRedeclError(v ast.Var, old, upd ast.Exp) *RedeclError {
	return &RedeclError{Var: v, Old: old, New: upd}
}

func (e *RedeclError) Error() string {
	return fmt.Sprintf(":type %s\n    = %s\n    ≠ %s", e.Var, e.Old, e.New)
}

// UnknownVarError indicates a variable has no declared or inferred type in
// the current context.
type UnknownVarError struct {
	Var ast.Var
}

func NewUnknownVarError(v ast.Var) *UnknownVarError {
	return &UnknownVarError{Var: v}
}

func (e *UnknownVarError) Error() string {
	return fmt.Sprintf(":type %s = ?", e.Var)
}

// CompatError indicates an expression's derived type is not among the
// accepted set. Accepted may be empty, in which case Msg carries a free-form
// explanation.
type CompatError struct {
	Exp      ast.Exp
	Actual   ast.Exp
	Accepted []ast.Exp
	Msg      string
}

func NewCompatError(exp, actual ast.Exp, accepted []ast.Exp) *CompatError {
	return &CompatError{
		Exp:      exp,
		Actual:   actual,
		Accepted: accepted,
		Msg:      fmt.Sprintf(":type %s does not have the requisite form!", exp),
	}
}

func (e *CompatError) Error() string {
	if len(e.Accepted) == 0 {
		return e.Msg
	}
	acc := make([]string, len(e.Accepted))
	for i, t := range e.Accepted {
		acc[i] = t.String()
	}
	return fmt.Sprintf(":type %s\n    = %s\n    ∉ {%s}", e.Exp, e.Actual, strings.Join(acc, ", "))
}

// UndefError indicates an expression whose type is undefined within the
// system; only the top sort □ triggers it.
type UndefError struct {
	Exp ast.Exp
}

func NewUndefError(exp ast.Exp) *UndefError {
	return &UndefError{Exp: exp}
}

func (e *UndefError) Error() string {
	return fmt.Sprintf(":type %s\n    = ⊥", e.Exp)
}

// LimitError indicates reduction did not reach a fixpoint within the allotted
// number of passes. Well-typed terms normalize, so hitting the limit means
// either ill-typed input or a budget set too low.
type LimitError struct {
	Exp   ast.Exp
	Steps int
}

func NewLimitError(exp ast.Exp, steps int) *LimitError {
	return &LimitError{Exp: exp, Steps: steps}
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("no normal form for %s within %d reduction passes", e.Exp, e.Steps)
}
