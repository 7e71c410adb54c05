package cli

import (
	"bytes"
	"testing"

	"github.com/sandevgo/dwight/internal/core"
	"github.com/stretchr/testify/assert"
)

func TestWriteReply(t *testing.T) {
	var buf bytes.Buffer

	WriteReply(&buf, core.Reply{
		Message:     "Excellent question! I can transcribe audio files.",
		Confidence:  0.8,
		ContextUsed: true,
		Suggestions: []string{"Upload audio file"},
	})

	out := buf.String()
	assert.Contains(t, out, "Excellent question! I can transcribe audio files.\n")
	assert.Contains(t, out, "confidence 80%, using recent conversation")
	assert.Contains(t, out, "  › Upload audio file\n")
}

func TestWriteReply_NoContext(t *testing.T) {
	var buf bytes.Buffer

	WriteReply(&buf, core.Reply{Message: "hi", Confidence: 0.5})

	out := buf.String()
	assert.Contains(t, out, "[confidence 50%]")
	assert.NotContains(t, out, "›")
}
