package ast

// Var is a symbolic variable name. Names are compared for identity as plain
// strings; several binders may reuse one name, since bound occurrences are
// resolved by de Bruijn index rather than by name.
type Var string

func (v Var) String() string { return string(v) }

// Idx is a de Bruijn index: the number of binders sitting between an
// occurrence and its own binder, excluding that binder itself (0 means the
// innermost one). The originating name is carried alongside for display only;
// during substitution the depth alone is the identity.
type Idx struct {
	Depth int
	Name  Var
}

// NewIdx returns a depth 0 index anchored to v.
func NewIdx(v Var) Idx {
	return Idx{Depth: 0, Name: v}
}

// Inc returns the index shifted one binder deeper.
func (i Idx) Inc() Idx {
	return Idx{Depth: i.Depth + 1, Name: i.Name}
}

// Dec returns the index shifted one binder shallower. The caller must ensure
// the depth is at least 1; decrementing a depth 0 index is a contract
// violation and panics.
func (i Idx) Dec() Idx {
	if i.Depth == 0 {
		panic("ast: Dec called on an index of depth 0")
	}
	return Idx{Depth: i.Depth - 1, Name: i.Name}
}

func (i Idx) String() string {
	// Indexing is an implementation detail, render the name.
	return string(i.Name)
}

// VarIdx is a variable occurrence: either still free (symbolic) or bound
// (resolved against a parent binder).
type VarIdx interface {
	// GetVar returns the underlying name, for free and bound occurrences
	// alike. The type-checker uses it to look a bound occurrence up in the
	// typing context by name.
	GetVar() Var
	String() string
}

// Free is an occurrence that no binder has claimed.
type Free struct {
	Name Var
}

func (f Free) GetVar() Var    { return f.Name }
func (f Free) String() string { return string(f.Name) }

// Bound is an occurrence resolved to a de Bruijn index.
type Bound struct {
	Index Idx
}

func (b Bound) GetVar() Var    { return b.Index.Name }
func (b Bound) String() string { return b.Index.String() }
