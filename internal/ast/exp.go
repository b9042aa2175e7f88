package ast

// Exp is the interface for all expressions of the core calculus. The variant
// set is closed: Ref, Abs, For, App, TypeMeta and KindMeta. Expressions are
// immutable; every operation returns a fresh tree and leaves its input
// untouched.
type Exp interface {
	String() string

	// Equal reports structural equality, de Bruijn depths and carried names
	// included.
	Equal(other Exp) bool

	// Subst replaces every occurrence bound at loc with can, decrementing
	// deeper indices to close the gap left by the eliminated binder. Free
	// occurrences are never substituted; they are resolved through the
	// typing context instead.
	Subst(loc Idx, can Exp) Exp

	// index rewrites free occurrences of the tracked name into bound
	// indices. Called by the binder constructors; the tree is sealed so
	// outside packages always go through them.
	index(idx Idx) Exp
}

// Ref is a variable occurrence, free or bound.
type Ref struct {
	Occ VarIdx
}

// Abs is a λ abstraction: binder name, parameter type and body.
type Abs struct {
	Param Var
	Anno  Exp
	Body  Exp
}

// For is a Π type: the dependent function type (or kind) over its body.
type For struct {
	Param Var
	Anno  Exp
	Body  Exp
}

// App applies one expression to another.
type App struct {
	Fn  Exp
	Arg Exp
}

// TypeMeta is the type of all types, rendered `*`.
type TypeMeta struct{}

// KindMeta is the type of all kinds, rendered `□`.
type KindMeta struct{}

// NewVar builds a free variable occurrence.
func NewVar(v Var) Exp {
	return Ref{Occ: Free{Name: v}}
}

// NewAbs builds a λ abstraction. The body is indexed immediately against the
// new binder: free occurrences of v become de Bruijn indices.
func NewAbs(v Var, anno, body Exp) Exp {
	return Abs{Param: v, Anno: anno, Body: body.index(NewIdx(v))}
}

// NewFor builds a Π type, indexing the body like NewAbs does.
func NewFor(v Var, anno, body Exp) Exp {
	return For{Param: v, Anno: anno, Body: body.index(NewIdx(v))}
}

// NewApp builds an application.
func NewApp(fn, arg Exp) Exp {
	return App{Fn: fn, Arg: arg}
}

// NewTypeMeta returns the type of types, `*`.
func NewTypeMeta() Exp {
	return TypeMeta{}
}

// NewKindMeta returns the type of kinds, `□`.
func NewKindMeta() Exp {
	return KindMeta{}
}

func (e Ref) index(idx Idx) Exp {
	if f, ok := e.Occ.(Free); ok && f.Name == idx.Name {
		return Ref{Occ: Bound{Index: idx}}
	}
	return e
}

func (e Abs) index(idx Idx) Exp {
	if e.Param == idx.Name {
		// Shadowed: inner occurrences belong to the inner binder.
		return e
	}
	return Abs{Param: e.Param, Anno: e.Anno, Body: e.Body.index(idx.Inc())}
}

func (e For) index(idx Idx) Exp {
	if e.Param == idx.Name {
		return e
	}
	return For{Param: e.Param, Anno: e.Anno, Body: e.Body.index(idx.Inc())}
}

func (e App) index(idx Idx) Exp {
	return App{Fn: e.Fn.index(idx), Arg: e.Arg.index(idx)}
}

func (e TypeMeta) index(Idx) Exp { return e }
func (e KindMeta) index(Idx) Exp { return e }

func (e Ref) Subst(loc Idx, can Exp) Exp {
	b, ok := e.Occ.(Bound)
	if !ok {
		return e
	}
	switch {
	case b.Index.Depth == loc.Depth:
		return can
	case b.Index.Depth > loc.Depth:
		return Ref{Occ: Bound{Index: b.Index.Dec()}}
	default:
		return e
	}
}

func (e Abs) Subst(loc Idx, can Exp) Exp {
	return Abs{Param: e.Param, Anno: e.Anno, Body: e.Body.Subst(loc.Inc(), can)}
}

func (e For) Subst(loc Idx, can Exp) Exp {
	return For{Param: e.Param, Anno: e.Anno, Body: e.Body.Subst(loc.Inc(), can)}
}

func (e App) Subst(loc Idx, can Exp) Exp {
	return App{Fn: e.Fn.Subst(loc, can), Arg: e.Arg.Subst(loc, can)}
}

func (e TypeMeta) Subst(Idx, Exp) Exp { return e }
func (e KindMeta) Subst(Idx, Exp) Exp { return e }

func (e Ref) Equal(other Exp) bool {
	o, ok := other.(Ref)
	return ok && e.Occ == o.Occ
}

func (e Abs) Equal(other Exp) bool {
	o, ok := other.(Abs)
	return ok && e.Param == o.Param && e.Anno.Equal(o.Anno) && e.Body.Equal(o.Body)
}

func (e For) Equal(other Exp) bool {
	o, ok := other.(For)
	return ok && e.Param == o.Param && e.Anno.Equal(o.Anno) && e.Body.Equal(o.Body)
}

func (e App) Equal(other Exp) bool {
	o, ok := other.(App)
	return ok && e.Fn.Equal(o.Fn) && e.Arg.Equal(o.Arg)
}

func (e TypeMeta) Equal(other Exp) bool {
	_, ok := other.(TypeMeta)
	return ok
}

func (e KindMeta) Equal(other Exp) bool {
	_, ok := other.(KindMeta)
	return ok
}
