package ide

import "strings"

// escChar introduces an escape sequence for the glyphs the calculus needs but
// keyboards rarely carry.
const escChar = '\\'

// ExpandEscapes rewrites escape sequences in an input line: \l → λ, \p → Π,
// \u → □, \\ → \. Any other escaped character is kept as itself, dropping the
// escape. A trailing escape character is dropped.
func ExpandEscapes(s string) string {
	var sb strings.Builder
	esc := false
	for _, r := range s {
		if esc {
			switch r {
			case 'l':
				sb.WriteRune('λ')
			case 'p':
				sb.WriteRune('Π')
			case 'u':
				sb.WriteRune('□')
			default:
				sb.WriteRune(r)
			}
			esc = false
			continue
		}
		if r == escChar {
			esc = true
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
