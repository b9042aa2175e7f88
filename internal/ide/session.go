package ide

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/chzyer/readline"
	"github.com/google/uuid"

	"github.com/fluxo-lang/fluxo/internal/config"
	"github.com/fluxo-lang/fluxo/internal/typesystem"
)

// Session is one interactive shell run: a typing context that starts empty,
// the resolved configuration and the output styles.
type Session struct {
	Ctx typesystem.Ctx

	cfg     *config.Config
	styles  Styles
	log     *slog.Logger
	id      uuid.UUID
	version string
}

// NewSession builds a fresh session with an empty context.
func NewSession(cfg *config.Config, styles Styles, log *slog.Logger, version string) *Session {
	return &Session{
		Ctx:     typesystem.NewCtx(),
		cfg:     cfg,
		styles:  styles,
		log:     log,
		id:      uuid.New(),
		version: version,
	}
}

func (s *Session) maxSteps() int {
	if s.cfg != nil && s.cfg.Reduce.MaxSteps > 0 {
		return s.cfg.Reduce.MaxSteps
	}
	return typesystem.DefaultMaxSteps
}

// Run executes the read-eval-print loop until the user exits.
func (s *Session) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.styles.Glyph(StatusReady) + " ",
		HistoryFile:     s.cfg.HistoryFile,
		AutoComplete:    newCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize shell: %w", err)
	}
	defer func() { _ = rl.Close() }()

	s.banner(os.Stdout)
	s.log.Debug("session started", "session_id", s.id.String())

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		line = ExpandEscapes(line)
		cmd := ParseCmd(line)
		s.log.Debug("command", "session_id", s.id.String(), "input", line)

		out := cmd.Eval(s)
		if out.Clear {
			fmt.Fprint(os.Stdout, "\033[H\033[2J")
		}
		for _, e := range out.Log {
			fmt.Fprint(os.Stdout, s.styles.Prefix(e.Status, e.Msg))
		}
		if out.Term {
			break
		}
	}

	s.log.Debug("session ended", "session_id", s.id.String())
	return nil
}

func (s *Session) banner(w io.Writer) {
	fmt.Fprint(w, s.styles.Prefix(StatusDiagnostics, fmt.Sprintf("%s %s", config.AppName, s.version)))
	fmt.Fprint(w, s.styles.Prefix(StatusDiagnostics, fmt.Sprintf(
		"type %s ↩ for assistance, %s ↩ to exit",
		s.styles.Keyword("help"),
		s.styles.Keyword("quit"),
	)))
}

func newCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("show"),
		readline.PcItem("type"),
		readline.PcItem("exec"),
		readline.PcItem("assume"),
		readline.PcItem("ctx"),
		readline.PcItem("clear"),
		readline.PcItem("exit"),
		readline.PcItem("quit"),
	)
}
