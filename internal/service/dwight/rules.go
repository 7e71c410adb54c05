package dwight

import "strings"

const (
	baseConfidence    = 0.5
	contextConfidence = 0.1
	contextLookback   = 3

	highConfidence = 0.7
	lowConfidence  = 0.3

	prefixConfident  = "Excellent question! "
	prefixUncertain  = "I'm still processing that. "
	continuityNotice = "Continuing our discussion about audio analysis..."
)

// effect accumulates the outcome of the rules fired for one utterance.
type effect struct {
	fragments   []string
	suggestions []string
	confidence  float64
}

// rule is a keyword predicate paired with what it contributes when it fires.
type rule struct {
	name     string
	keywords []string
	apply    func(kb map[string][]string, e *effect)
}

func (r rule) matches(lowered string) bool {
	for _, kw := range r.keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// topic adds every statement of a knowledge topic. A missing topic adds nothing.
func topic(name string, boost float64) func(map[string][]string, *effect) {
	return func(kb map[string][]string, e *effect) {
		statements, ok := kb[name]
		if !ok {
			return
		}
		e.fragments = append(e.fragments, statements...)
		e.confidence += boost
	}
}

func canned(fragment string, boost float64, suggestions ...string) func(map[string][]string, *effect) {
	return func(_ map[string][]string, e *effect) {
		e.fragments = append(e.fragments, fragment)
		e.suggestions = append(e.suggestions, suggestions...)
		e.confidence += boost
	}
}

// rules are evaluated in this order and never short-circuit each other.
var rules = []rule{
	{
		name:     "audio",
		keywords: []string{"audio", "sound", "recording"},
		apply:    topic(TopicAudio, 0.3),
	},
	{
		name:     "trigger",
		keywords: []string{"trigger", "detect", "alert"},
		apply: canned(
			"I can help you set up custom triggers for sounds or speech patterns. Would you like me to show you how?",
			0.2,
			"Set up sound trigger",
			"Configure speech trigger",
		),
	},
	{
		name:     "transcribe",
		keywords: []string{"transcribe", "transcript"},
		apply: canned(
			"I can transcribe audio files using advanced speech recognition. Just upload an audio file and I'll process it for you.",
			0.3,
			"Upload audio file",
		),
	},
	{
		name:     "learning",
		keywords: []string{"learn", "improve", "better"},
		apply:    topic(TopicLearning, 0.2),
	},
	{
		name:     "help",
		keywords: []string{"help", "assist"},
		apply: canned(
			"I'm here to help you with audio analysis, transcription, and security monitoring. What would you like me to help you with today?",
			0.1,
			"Analyze audio file",
			"Set up triggers",
			"Review recordings",
			"Check system status",
		),
	},
}

const fallbackFormat = "Interesting input: '%s'. I'm always learning and analyzing. " +
	"Could you provide more context about what you'd like me to help you with regarding audio analysis or security monitoring?"

var fallbackSuggestions = []string{
	"Tell me more about your audio needs",
	"Explain what you're trying to accomplish",
}
