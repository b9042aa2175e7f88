package ide

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-runewidth"

	"github.com/fluxo-lang/fluxo/internal/ast"
	"github.com/fluxo-lang/fluxo/internal/lexer"
	"github.com/fluxo-lang/fluxo/internal/parser"
	"github.com/fluxo-lang/fluxo/internal/token"
	"github.com/fluxo-lang/fluxo/internal/typesystem"
)

// Cmd is an instruction derived from one line of user input.
type Cmd interface {
	// Eval executes the command against the session and returns its output.
	Eval(s *Session) Out
}

// Out is what evaluating a command produced.
type Out struct {
	// Log is the sequence of status-tagged messages to print.
	Log []Entry
	// Term signals the session to end.
	Term bool
	// Clear signals the screen to be wiped.
	Clear bool
}

// Entry is one status-tagged message.
type Entry struct {
	Status Status
	Msg    string
}

func message(st Status, msg string) Out {
	return Out{Log: []Entry{{Status: st, Msg: msg}}}
}

func failure(err error) Out {
	return message(StatusFailure, err.Error())
}

// NoopCmd does nothing; blank input maps to it.
type NoopCmd struct{}

// ExitCmd ends the session.
type ExitCmd struct{}

// HelpCmd prints the command reference.
type HelpCmd struct{}

// ShowCmd prints the beta-normal form of an expression.
type ShowCmd struct {
	Exp ast.Exp
}

// TypeCmd prints the derived type of an expression.
type TypeCmd struct {
	Exp ast.Exp
}

// ExecCmd executes the program denoted by an expression.
type ExecCmd struct {
	Exp ast.Exp
}

// AssumeCmd extends the session context with a declaration.
type AssumeCmd struct {
	Var  ast.Var
	Type ast.Exp
}

// CtxCmd lists the session context.
type CtxCmd struct{}

// ClearCmd wipes the screen.
type ClearCmd struct{}

// FailCmd reports an error the input itself carried, such as a parse
// failure.
type FailCmd struct {
	Err error
}

// ParseCmd turns an (escape-expanded) input line into a command.
func ParseCmd(line string) Cmd {
	line = strings.TrimSpace(line)
	if line == "" {
		return NoopCmd{}
	}

	name, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch name {
	case "help":
		return HelpCmd{}
	case "exit", "quit":
		return ExitCmd{}
	case "ctx":
		return CtxCmd{}
	case "clear":
		return ClearCmd{}
	case "show", "type", "exec":
		if rest == "" {
			return FailCmd{Err: fmt.Errorf("%s requires an expression, see help", name)}
		}
		exp, err := parser.Parse(rest)
		if err != nil {
			return FailCmd{Err: err}
		}
		switch name {
		case "show":
			return ShowCmd{Exp: exp}
		case "type":
			return TypeCmd{Exp: exp}
		default:
			return ExecCmd{Exp: exp}
		}
	case "assume":
		return parseAssume(rest)
	default:
		return FailCmd{Err: fmt.Errorf("unknown command %q, type help for assistance", name)}
	}
}

func parseAssume(rest string) Cmd {
	name, typtext, found := strings.Cut(rest, ":")
	if !found {
		return FailCmd{Err: fmt.Errorf("usage: assume VAR : EXP")}
	}
	name = strings.TrimSpace(name)
	if !isIdent(name) {
		return FailCmd{Err: fmt.Errorf("assume: %q is not a variable name", name)}
	}
	typ, err := parser.Parse(strings.TrimSpace(typtext))
	if err != nil {
		return FailCmd{Err: err}
	}
	return AssumeCmd{Var: ast.Var(name), Type: typ}
}

// isIdent reports whether s lexes as exactly one identifier.
func isIdent(s string) bool {
	l := lexer.New(s)
	if l.NextToken().Type != token.IDENT {
		return false
	}
	return l.NextToken().Type == token.EOF
}

func (NoopCmd) Eval(*Session) Out {
	return Out{}
}

func (ExitCmd) Eval(*Session) Out {
	return Out{Term: true}
}

func (ClearCmd) Eval(*Session) Out {
	return Out{Clear: true}
}

func (c FailCmd) Eval(*Session) Out {
	return failure(c.Err)
}

func (c ShowCmd) Eval(s *Session) Out {
	res, err := typesystem.ReduceWithin(c.Exp, s.Ctx, s.maxSteps())
	if err != nil {
		return failure(err)
	}
	return message(StatusSuccess, res.String())
}

func (c TypeCmd) Eval(s *Session) Out {
	typ, err := typesystem.CalculateType(c.Exp, s.Ctx)
	if err != nil {
		return failure(err)
	}
	return message(StatusSuccess, typ.String())
}

func (c ExecCmd) Eval(s *Session) Out {
	// TODO: execution beyond normalization (effects, output) is not defined
	// yet; exec currently reduces like show but reports as diagnostics.
	res, err := typesystem.ReduceWithin(c.Exp, s.Ctx, s.maxSteps())
	if err != nil {
		return failure(err)
	}
	return message(StatusDiagnostics, res.String())
}

func (c AssumeCmd) Eval(s *Session) Out {
	typ, err := typesystem.CalculateType(c.Type, s.Ctx)
	if err != nil {
		return failure(err)
	}
	// Declarations must themselves be types or kinds, or the context stops
	// being well-formed.
	if !typ.Equal(ast.NewTypeMeta()) && !typ.Equal(ast.NewKindMeta()) {
		return failure(typesystem.NewCompatError(c.Type, typ, []ast.Exp{ast.NewTypeMeta(), ast.NewKindMeta()}))
	}
	if err := s.Ctx.Put(c.Var, c.Type); err != nil {
		return failure(err)
	}
	return message(StatusSuccess, fmt.Sprintf("%s : %s", c.Var, c.Type))
}

func (CtxCmd) Eval(s *Session) Out {
	if s.Ctx.Len() == 0 {
		return message(StatusDiagnostics, "the context is empty")
	}
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"variable", "type"})
	for _, b := range s.Ctx.Bindings() {
		t.AppendRow(table.Row{b.Var.String(), b.Type.String()})
	}
	return message(StatusDiagnostics, t.Render())
}

// helpEntry is one row of the command reference.
type helpEntry struct {
	key  string
	desc string
}

var helpEntries = []helpEntry{
	{"help", "Print this help message"},
	{"exit", "Exit the interactive shell"},
	{"quit", "Alias for exit"},
	{"show EXP", "Show the normalized form of the expression EXP"},
	{"type EXP", "Show the type of the expression EXP"},
	{"exec EXP", "Execute the program denoted by the expression EXP"},
	{"assume VAR : EXP", "Extend the session context with VAR : EXP"},
	{"ctx", "List the assumptions in the session context"},
	{"clear", "Clear the screen"},
}

func (HelpCmd) Eval(s *Session) Out {
	max := 0
	for _, e := range helpEntries {
		if w := runewidth.StringWidth(e.key); w > max {
			max = w
		}
	}

	var sb strings.Builder
	sb.WriteString("COMMAND REFERENCE:\n")
	for _, e := range helpEntries {
		key := e.key
		if word, args, found := strings.Cut(e.key, " "); found {
			key = s.styles.Keyword(word) + " " + args
		} else {
			key = s.styles.Keyword(key)
		}
		pad := strings.Repeat(".", max-runewidth.StringWidth(e.key))
		fmt.Fprintf(&sb, "‣ %s %s.... %s\n", key, pad, e.desc)
	}
	sb.WriteString("\n")
	sb.WriteString("escapes: \\l → λ, \\p → Π, \\u → □")
	return message(StatusDiagnostics, sb.String())
}
