package dwight

import (
	"fmt"
	"math"
	"strings"

	"github.com/sandevgo/dwight/internal/core"
)

// Engine turns an utterance and recent history into a Reply. It holds no
// mutable state and may be shared between goroutines.
type Engine struct {
	knowledge map[string][]string
	traits    []string
}

func NewEngine(cfg Config) *Engine {
	c := cfg.clone()
	return &Engine{
		knowledge: c.Knowledge,
		traits:    c.Traits,
	}
}

func NewDefaultEngine() *Engine {
	return NewEngine(defaultConfig)
}

// Traits returns a copy of the personality traits.
func (e *Engine) Traits() []string {
	return append([]string(nil), e.traits...)
}

// Respond builds a reply for the utterance. History must be ordered newest first.
func (e *Engine) Respond(utterance string, history []core.HistoryEntry) core.Reply {
	lowered := strings.ToLower(utterance)

	acc := &effect{confidence: baseConfidence}
	for _, r := range rules {
		if r.matches(lowered) {
			r.apply(e.knowledge, acc)
		}
	}

	contextUsed := len(history) > 0
	if contextUsed {
		acc.confidence += contextConfidence
		if mentionsAudio(history) {
			acc.fragments = append(acc.fragments, continuityNotice)
		}
	}

	if len(acc.fragments) == 0 {
		acc.fragments = append(acc.fragments, fmt.Sprintf(fallbackFormat, utterance))
		acc.suggestions = append(acc.suggestions, fallbackSuggestions...)
	}

	return core.Reply{
		Message:     personalize(strings.Join(acc.fragments, " "), acc.confidence),
		Confidence:  math.Min(acc.confidence, 1.0),
		ContextUsed: contextUsed,
		Suggestions: acc.suggestions,
	}
}

func mentionsAudio(history []core.HistoryEntry) bool {
	n := min(len(history), contextLookback)
	for _, entry := range history[:n] {
		if strings.Contains(strings.ToLower(entry.UserInput), "audio") {
			return true
		}
	}
	return false
}

// personalize prefixes the message according to the unclamped confidence.
func personalize(message string, confidence float64) string {
	switch {
	case confidence > highConfidence:
		return prefixConfident + message
	case confidence < lowConfidence:
		return prefixUncertain + message
	}
	return message
}
