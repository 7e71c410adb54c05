package conv

import (
	"strings"
	"unicode/utf8"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

// TelegramMaxLen keeps a margin below Telegram's 4096 character message limit.
const TelegramMaxLen = 4000

var (
	extensions = parser.CommonExtensions | parser.NoEmptyLineBeforeBlock
	htmlFlags  = html.CommonFlags | html.HrefTargetBlank
	tgPolicy   = bluemonday.NewPolicy()
)

func init() {
	// Allowed tags https://core.telegram.org/bots/api#html-style
	tgPolicy.AllowElements("b", "strong", "i", "em", "u", "ins", "s", "strike", "del", "code", "pre", "blockquote")
	tgPolicy.AllowAttrs("href").OnElements("a")
	tgPolicy.AllowAttrs("class").OnElements("code")
}

// MarkdownToTelegramHTML renders md and keeps only the tags Telegram accepts in HTML mode.
func MarkdownToTelegramHTML(md []byte) string {
	p := parser.NewWithExtensions(extensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: htmlFlags})
	unsafeHTML := markdown.Render(p.Parse(md), renderer)

	return string(tgPolicy.SanitizeBytes(unsafeHTML))
}

// Chunk splits text into pieces of at most maxLen bytes, preferring to cut at a newline
// in the last two thirds of a piece. Cuts never land inside a UTF-8 sequence or an HTML
// tag or entity. Whitespace at the cut is dropped.
func Chunk(text string, maxLen int) []string {
	if len(text) <= maxLen || maxLen <= 0 {
		return []string{text}
	}

	var chunks []string
	for len(text) > 0 {
		if len(text) <= maxLen {
			chunks = append(chunks, text)
			break
		}

		cut := maxLen
		if idx := strings.LastIndex(text[:maxLen], "\n"); idx > maxLen/3 {
			cut = idx
		}
		cut = safeCut(text, cut)

		chunks = append(chunks, text[:cut])
		text = strings.TrimSpace(text[cut:])
	}
	return chunks
}

const maxEntityLen = 10

// safeCut moves cut back to a rune boundary outside any <...> tag or &...; entity.
// It always returns a positive index so Chunk makes progress.
func safeCut(text string, cut int) int {
	c := cut
	if open := strings.LastIndexByte(text[:c], '<'); open > 0 && open > strings.LastIndexByte(text[:c], '>') {
		c = open
	}
	if amp := strings.LastIndexByte(text[:c], '&'); amp > 0 && amp > strings.LastIndexByte(text[:c], ';') && c-amp < maxEntityLen {
		c = amp
	}
	for c > 0 && !utf8.RuneStart(text[c]) {
		c--
	}
	if c > 0 {
		return c
	}

	// maxLen is smaller than the leading rune or tag
	for cut < len(text) && !utf8.RuneStart(text[cut]) {
		cut++
	}
	return cut
}
