package typesystem

import (
	"sort"

	"github.com/fluxo-lang/fluxo/internal/ast"
)

// Ctx is the typing context, usually written Γ: a mapping from a variable to
// its declared (or inferred) type.
//
// Entries are keyed by variable name, not by resolved index identity, so two
// nested binders reusing one name share a single entry. This is an
// intentional simplification and holds up only while input avoids adversarial
// shadowing across context entries.
type Ctx struct {
	types map[ast.Var]ast.Exp
}

// Binding is one entry of a context snapshot.
type Binding struct {
	Var  ast.Var
	Type ast.Exp
}

// NewCtx returns an empty context.
func NewCtx() Ctx {
	return Ctx{types: make(map[ast.Var]ast.Exp)}
}

// Put registers a variable and its type. Re-adding the identical type is a
// no-op; a structurally different type fails with a redeclaration error.
func (c Ctx) Put(v ast.Var, typ ast.Exp) error {
	if old, ok := c.types[v]; ok && !old.Equal(typ) {
		return NewRedeclError(v, old, typ)
	}
	c.types[v] = typ
	return nil
}

// Get fetches the type bound to v, failing with an unknown-variable error on
// a miss.
func (c Ctx) Get(v ast.Var) (ast.Exp, error) {
	typ, ok := c.types[v]
	if !ok {
		return nil, NewUnknownVarError(v)
	}
	return typ, nil
}

// Extend returns a new context with v bound to typ, leaving the receiver
// untouched. Propagates the redeclaration error from Put.
func (c Ctx) Extend(v ast.Var, typ ast.Exp) (Ctx, error) {
	can := c.clone()
	if err := can.Put(v, typ); err != nil {
		return Ctx{}, err
	}
	return can, nil
}

// Remove returns a new context without v, leaving the receiver untouched.
// Fails with an unknown-variable error if v is absent. Used to judge a
// declaration against the rest of the context, excluding the entry itself.
func (c Ctx) Remove(v ast.Var) (Ctx, error) {
	if _, ok := c.types[v]; !ok {
		return Ctx{}, NewUnknownVarError(v)
	}
	can := c.clone()
	delete(can.types, v)
	return can, nil
}

// Len reports the number of bindings.
func (c Ctx) Len() int {
	return len(c.types)
}

// Bindings returns a name-sorted snapshot of the context.
func (c Ctx) Bindings() []Binding {
	out := make([]Binding, 0, len(c.types))
	for v, typ := range c.types {
		out = append(out, Binding{Var: v, Type: typ})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Var < out[j].Var })
	return out
}

func (c Ctx) clone() Ctx {
	types := make(map[ast.Var]ast.Exp, len(c.types))
	for v, typ := range c.types {
		types[v] = typ
	}
	return Ctx{types: types}
}
