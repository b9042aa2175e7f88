package ast

import "strings"

// branch tracks where the current subtree sits relative to an enclosing
// application: in its left operand, its right operand, or neither. A binder
// parenthesizes itself on the left of an application; a nested application
// parenthesizes itself on the right. Both flags reset inside a binder, whose
// `.` separator already disambiguates.
type branch struct {
	ltree bool
	rtree bool
}

func render(e Exp, sb *strings.Builder, br branch) {
	switch n := e.(type) {
	case Ref:
		sb.WriteString(n.Occ.String())
	case Abs:
		renderBinder(sb, br, "λ", n.Param, n.Anno, n.Body)
	case For:
		renderBinder(sb, br, "Π", n.Param, n.Anno, n.Body)
	case App:
		renderApp(sb, br, n.Fn, n.Arg)
	case TypeMeta:
		sb.WriteString("*")
	case KindMeta:
		sb.WriteString("□")
	}
}

func renderBinder(sb *strings.Builder, br branch, sym string, param Var, anno, body Exp) {
	parens(sb, br.ltree, func(sb *strings.Builder) {
		sb.WriteString(sym)
		sb.WriteString(string(param))
		sb.WriteString(" : ")
		render(anno, sb, branch{}) // reset, always greedy
		sb.WriteString(" . ")
		render(body, sb, branch{}) // reset, always greedy
	})
}

func renderApp(sb *strings.Builder, br branch, fn, arg Exp) {
	parens(sb, br.rtree, func(sb *strings.Builder) {
		render(fn, sb, branch{
			ltree: !br.rtree, // true, unless this application is itself parenthesized
			rtree: br.rtree,
		})
		sb.WriteByte(' ')
		render(arg, sb, branch{
			ltree: br.ltree,
			rtree: !br.rtree,
		})
	})
}

func parens(sb *strings.Builder, wrap bool, body func(*strings.Builder)) {
	if wrap {
		sb.WriteByte('(')
	}
	body(sb)
	if wrap {
		sb.WriteByte(')')
	}
}

func exprString(e Exp) string {
	var sb strings.Builder
	render(e, &sb, branch{})
	return sb.String()
}

func (e Ref) String() string      { return exprString(e) }
func (e Abs) String() string      { return exprString(e) }
func (e For) String() string      { return exprString(e) }
func (e App) String() string      { return exprString(e) }
func (e TypeMeta) String() string { return exprString(e) }
func (e KindMeta) String() string { return exprString(e) }
