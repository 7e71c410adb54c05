package command

import (
	"fmt"
	"strings"
	"time"
)

// ResponseFormatter builds the Markdown shared by the terminal and Telegram.
type ResponseFormatter struct{}

func NewResponseFormatter() *ResponseFormatter {
	return &ResponseFormatter{}
}

func (f *ResponseFormatter) Info(title string) string {
	return "🎧 **" + title + "**\n\n"
}

func (f *ResponseFormatter) Success(message string) string {
	return "✅ " + message + "\n"
}

func (f *ResponseFormatter) Error(operation string, err error) string {
	return fmt.Sprintf("❌ **Command Error** `/%s`\n\n%s\n", operation, err)
}

func (f *ResponseFormatter) Label(label, value string) string {
	return fmt.Sprintf("**%s:** `%s`\n", label, value)
}

func (f *ResponseFormatter) Usage(command string) string {
	return "**Usage**:\n```\n" + command + "\n```\n"
}

func (f *ResponseFormatter) Examples(examples []string) string {
	var sb strings.Builder
	sb.WriteString("**Examples**:\n")
	for _, ex := range examples {
		sb.WriteString("`" + ex + "`\n")
	}
	return sb.String()
}

func (f *ResponseFormatter) List(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString("• " + item + "\n")
	}
	return sb.String()
}

func (f *ResponseFormatter) Tip(text string) string {
	return "_" + text + "_\n"
}

func (f *ResponseFormatter) Section(emoji, title, content string) string {
	return emoji + " **" + title + "**\n" + content
}

// Duration renders seconds as 1m05.2s style text.
func (f *ResponseFormatter) Duration(seconds float64) string {
	d := time.Duration(seconds * float64(time.Second)).Round(100 * time.Millisecond)
	return d.String()
}

func (f *ResponseFormatter) Combine(sections ...string) string {
	return strings.Join(sections, "\n")
}
