package ide

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Status classifies a line of shell output; each status renders as a glyph
// prefixed to the line.
type Status int

const (
	// StatusReady marks the prompt for fresh input.
	StatusReady Status = iota
	// StatusContinue marks the prompt resuming after incomplete input.
	StatusContinue
	// StatusSuccess marks the result of a completed command.
	StatusSuccess
	// StatusFailure marks an error message.
	StatusFailure
	// StatusDiagnostics marks informational output such as the banner.
	StatusDiagnostics
)

var glyphs = map[Status]string{
	StatusReady:       "»",
	StatusContinue:    "↳",
	StatusSuccess:     "∴",
	StatusFailure:     "✗",
	StatusDiagnostics: "☼",
}

// Styles renders status glyphs and highlighted keywords, optionally colored.
type Styles struct {
	prompts map[Status]lipgloss.Style
	keyword lipgloss.Style
	colored bool
}

// NewStyles builds the shell's styles. With colored false every style is a
// pass-through.
func NewStyles(colored bool) Styles {
	if !colored {
		plain := lipgloss.NewStyle()
		return Styles{
			prompts: map[Status]lipgloss.Style{
				StatusReady:       plain,
				StatusContinue:    plain,
				StatusSuccess:     plain,
				StatusFailure:     plain,
				StatusDiagnostics: plain,
			},
			keyword: plain,
		}
	}
	return Styles{
		prompts: map[Status]lipgloss.Style{
			StatusReady:       lipgloss.NewStyle().Foreground(lipgloss.Color("6")),  // cyan
			StatusContinue:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),  // cyan
			StatusSuccess:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),  // green
			StatusFailure:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),  // red
			StatusDiagnostics: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),  // yellow
		},
		keyword: lipgloss.NewStyle().Foreground(lipgloss.Color("1")), // red
		colored: true,
	}
}

// Glyph renders the bare status glyph.
func (s Styles) Glyph(st Status) string {
	return s.prompts[st].Render(glyphs[st])
}

// Keyword highlights a command keyword within help text.
func (s Styles) Keyword(word string) string {
	return s.keyword.Render(word)
}

// Prefix prepends the status glyph to every line of output.
func (s Styles) Prefix(st Status, output string) string {
	var sb strings.Builder
	for _, line := range strings.Split(strings.TrimRight(output, "\n"), "\n") {
		sb.WriteString(s.Glyph(st))
		sb.WriteByte(' ')
		sb.WriteString(strings.TrimRight(line, " \t"))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ColorEnabled resolves a color mode (auto, always, never) against the
// terminal at hand.
func ColorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if termenv.EnvColorProfile() == termenv.Ascii {
			return false
		}
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
}
