package validation

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestClientFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple", input: "holiday.mp4", expected: "holiday.mp4"},
		{name: "spaces kept", input: "my holiday clip.mov", expected: "my holiday clip.mov"},
		{name: "unicode kept", input: "vidéo été.mp4", expected: "vidéo été.mp4"},
		{name: "windows fakepath", input: `C:\fakepath\clip.webm`, expected: "clip.webm"},
		{name: "unix path", input: "/home/user/clip.mkv", expected: "clip.mkv"},
		{name: "parent traversal", input: "../../etc/passwd", expected: "passwd"},
		{name: "hidden file", input: ".bashrc", expected: "bashrc"},
		{name: "dots only", input: "...", expected: "upload"},
		{name: "empty", input: "", expected: "upload"},
		{name: "whitespace", input: "   ", expected: "upload"},
		{name: "trailing separator", input: "videos/", expected: "upload"},
		{name: "quote", input: `clip"name.mp4`, expected: "clip_name.mp4"},
		{name: "colon", input: "clip:1.mp4", expected: "clip_1.mp4"},
		{name: "newlines", input: "clip\r\nname.mp4", expected: "clip__name.mp4"},
		{name: "nul", input: "clip\x00.mp4", expected: "clip_.mp4"},
		{name: "only dangerous", input: `"::"`, expected: "upload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClientFilename(tt.input))
		})
	}
}

func TestClientFilename_Long(t *testing.T) {
	t.Run("keeps extension", func(t *testing.T) {
		got := ClientFilename(strings.Repeat("a", 300) + ".mp4")
		assert.Len(t, got, maxFilenameLength)
		assert.True(t, strings.HasSuffix(got, ".mp4"))
	})

	t.Run("no extension", func(t *testing.T) {
		got := ClientFilename(strings.Repeat("b", 400))
		assert.Len(t, got, maxFilenameLength)
	})

	t.Run("multibyte boundary", func(t *testing.T) {
		got := ClientFilename(strings.Repeat("é", 200) + ".webm")
		assert.LessOrEqual(t, len(got), maxFilenameLength)
		assert.True(t, utf8.ValidString(got))
		assert.True(t, strings.HasSuffix(got, ".webm"))
	})
}

func TestThumbnailDisposition(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{name: "title", title: "Holiday", expected: `inline; filename="Holiday.png"`},
		{name: "already png", title: "cover.PNG", expected: `inline; filename="cover.PNG"`},
		{name: "quote stripped", title: `say "hi"`, expected: `inline; filename="say _hi_.png"`},
		{name: "empty title", title: "", expected: `inline; filename="thumbnail.png"`},
		{name: "path in title", title: "a/b", expected: `inline; filename="b.png"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ThumbnailDisposition(tt.title))
		})
	}
}
