package logger

import (
	"fmt"
	"strings"
)

// maxLoggedRunes bounds how much of a single user-supplied value ends up in
// a log line.
const maxLoggedRunes = 200

var escapes = map[rune]string{
	'\n':   `\n`,
	'\r':   `\r`,
	'\t':   `\t`,
	'\x00': `\x00`,
}

// SanitizeForLog escapes control characters in user-supplied strings (titles,
// filenames) so they cannot forge log lines or drive a terminal. Printable
// Unicode is preserved. Values longer than maxLoggedRunes are cut and marked
// with a trailing "...".
func SanitizeForLog(s string) string {
	var result strings.Builder
	result.Grow(len(s))

	n := 0
	for _, r := range s {
		if n == maxLoggedRunes {
			result.WriteString("...")
			break
		}
		n++

		if esc, ok := escapes[r]; ok {
			result.WriteString(esc)
			continue
		}
		if r < 32 || r == 127 {
			result.WriteString(fmt.Sprintf(`\x%02x`, r))
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}
