package conv

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownToTelegramHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "plain reply",
			input:    "Excellent question! I can help you set up custom triggers.",
			expected: "Excellent question! I can help you set up custom triggers.\n",
		},
		{
			name:     "bold label",
			input:    "**Duration:** 4.2s",
			expected: "<strong>Duration:</strong> 4.2s\n",
		},
		{
			name:     "inline code path",
			input:    "Saved `garage.wav`",
			expected: "Saved <code>garage.wav</code>\n",
		},
		{
			name:     "code block",
			input:    "```\n/analyze <path>\n```",
			expected: "<pre><code>/analyze &lt;path&gt;\n</code></pre>\n",
		},
		{
			name:     "header tags stripped",
			input:    "# Audio Analysis",
			expected: "Audio Analysis\n",
		},
		{
			name:     "link keeps href only",
			input:    "[docs](https://example.com)",
			expected: "<a href=\"https://example.com\">docs</a>\n",
		},
		{
			name:     "script tags sanitized",
			input:    "<script>alert('xss')</script>",
			expected: "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MarkdownToTelegramHTML([]byte(tt.input)))
		})
	}
}

func TestMarkdownToTelegramHTML_ListItemsKeepText(t *testing.T) {
	out := MarkdownToTelegramHTML([]byte("**Suggestions**\n- Set up sound trigger\n- Configure speech trigger\n"))

	assert.Contains(t, out, "<strong>Suggestions</strong>")
	assert.Contains(t, out, "Set up sound trigger")
	assert.Contains(t, out, "Configure speech trigger")
	assert.NotContains(t, out, "<li>")
}

func TestChunk(t *testing.T) {
	assert.Equal(t, []string{"short"}, Chunk("short", 10))

	text := strings.Repeat("a", 6) + "\n" + strings.Repeat("b", 6)
	chunks := Chunk(text, 10)
	require.Len(t, chunks, 2)
	assert.Equal(t, strings.Repeat("a", 6), chunks[0])
	assert.Equal(t, strings.Repeat("b", 6), chunks[1])

	assert.Equal(t, []string{"xxxxxxxxxx", "xxxxxxxxxx", "xxxxx"}, Chunk(strings.Repeat("x", 25), 10))
}

func TestChunk_IgnoresEarlyNewline(t *testing.T) {
	text := "a\n" + strings.Repeat("b", 20)
	chunks := Chunk(text, 10)

	require.NotEmpty(t, chunks)
	assert.Len(t, chunks[0], 10, "a newline in the first third is not a cut point")
}

func TestChunk_KeepsRunesWhole(t *testing.T) {
	text := strings.Repeat("é", 10)
	chunks := Chunk(text, 5)

	assert.Equal(t, text, strings.Join(chunks, ""))
	for _, c := range chunks {
		assert.True(t, utf8.ValidString(c), "chunk %q", c)
		assert.LessOrEqual(t, len(c), 5)
	}
}

func TestChunk_KeepsTagsWhole(t *testing.T) {
	chunks := Chunk("aaaaaaa<strong>b</strong>", 10)

	assert.Equal(t, []string{"aaaaaaa", "<strong>b", "</strong>"}, chunks)
}

func TestChunk_KeepsEntitiesWhole(t *testing.T) {
	chunks := Chunk("aaaaaaa&amp;bbb", 10)

	assert.Equal(t, []string{"aaaaaaa", "&amp;bbb"}, chunks)
}
