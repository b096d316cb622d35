package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeForLog(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "normal title unchanged", input: "Intro to Go", expected: "Intro to Go"},
		{name: "filename unchanged", input: "lesson-01.mp4", expected: "lesson-01.mp4"},
		{name: "empty string", input: "", expected: ""},
		{name: "newline escaped", input: "line1\nline2", expected: `line1\nline2`},
		{name: "CRLF escaped", input: "line1\r\nline2", expected: `line1\r\nline2`},
		{name: "tab escaped", input: "col1\tcol2", expected: `col1\tcol2`},
		{name: "null byte escaped", input: "before\x00after", expected: `before\x00after`},
		{name: "ANSI escape escaped", input: "\x1b[31mred\x1b[0m", expected: `\x1b[31mred\x1b[0m`},
		{name: "bell escaped", input: "alert\x07", expected: `alert\x07`},
		{name: "DEL escaped", input: "del\x7f", expected: `del\x7f`},
		{name: "unicode preserved", input: "café 中文 👋", expected: "café 中文 👋"},
		{
			name:     "fake log entry injection",
			input:    "Intro\nERROR: fake log entry",
			expected: `Intro\nERROR: fake log entry`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeForLog(tt.input))
		})
	}
}

func TestSanitizeForLog_AllControlChars(t *testing.T) {
	for i := 0; i < 32; i++ {
		out := SanitizeForLog(string(rune(i)))
		assert.NotEqual(t, string(rune(i)), out, "control char 0x%02x was not escaped", i)
		assert.True(t, strings.HasPrefix(out, `\`), "control char 0x%02x: got %q", i, out)
	}
}

func TestSanitizeForLog_Truncates(t *testing.T) {
	long := strings.Repeat("é", maxLoggedRunes+50)

	out := SanitizeForLog(long)

	assert.Equal(t, strings.Repeat("é", maxLoggedRunes)+"...", out)
	assert.Equal(t, strings.Repeat("a", maxLoggedRunes), SanitizeForLog(strings.Repeat("a", maxLoggedRunes)))
}

func TestSetOutput_Levels(t *testing.T) {
	defer SetLevel("info")

	var buf bytes.Buffer
	SetOutput(&buf, "warn")

	Debug.Print("debug line")
	Info.Print("info line")
	Warn.Print("warn line")
	Error.Print("error line")

	out := buf.String()
	assert.NotContains(t, out, "debug line")
	assert.NotContains(t, out, "info line")
	assert.Contains(t, out, "WARN: ")
	assert.Contains(t, out, "warn line")
	assert.Contains(t, out, "error line")

	buf.Reset()
	SetOutput(&buf, "debug")
	Debug.Print("now visible")
	assert.Contains(t, buf.String(), "DEBUG: ")
}

func BenchmarkSanitizeForLog(b *testing.B) {
	inputs := []string{"lesson.mp4", "file\nwith\nnewlines.txt", "中文文件名_👋.mp4"}
	for _, in := range inputs {
		b.Run(in, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = SanitizeForLog(in)
			}
		})
	}
}
