package dwight

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sandevgo/dwight/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(input string) core.HistoryEntry {
	return core.HistoryEntry{
		UserInput: input,
		Response:  "ok",
		Context:   "User asked: " + input,
		CreatedAt: time.Now(),
	}
}

func TestRespond_Fallback(t *testing.T) {
	e := NewDefaultEngine()

	tests := []string{
		"hello",
		"What's the weather like?",
		"",
		"MiXeD CaSe Input",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			reply := e.Respond(input, nil)

			assert.False(t, reply.ContextUsed)
			assert.Contains(t, reply.Message, "'"+input+"'")
			assert.Equal(t, 0.5, reply.Confidence)
			assert.Equal(t, fallbackSuggestions, reply.Suggestions)
			assert.False(t, strings.HasPrefix(reply.Message, prefixConfident))
			assert.False(t, strings.HasPrefix(reply.Message, prefixUncertain))
		})
	}
}

func TestRespond_Rules(t *testing.T) {
	e := NewDefaultEngine()

	tests := []struct {
		name            string
		input           string
		wantConfidence  float64
		wantSuggestions []string
		wantContains    []string
		wantPrefix      string
	}{
		{
			name:           "audio topic",
			input:          "Tell me about SOUND",
			wantConfidence: 0.8,
			wantContains:   defaultConfig.Knowledge[TopicAudio],
			wantPrefix:     prefixConfident,
		},
		{
			name:            "trigger",
			input:           "can you alert me",
			wantConfidence:  0.7,
			wantSuggestions: []string{"Set up sound trigger", "Configure speech trigger"},
			wantContains:    []string{"custom triggers"},
		},
		{
			name:            "transcribe",
			input:           "please transcribe this",
			wantConfidence:  0.8,
			wantSuggestions: []string{"Upload audio file"},
			wantContains:    []string{"I can transcribe audio files"},
			wantPrefix:      prefixConfident,
		},
		{
			name:           "learning",
			input:          "how do you improve",
			wantConfidence: 0.7,
			wantContains:   defaultConfig.Knowledge[TopicLearning],
		},
		{
			name:            "help",
			input:           "assist",
			wantConfidence:  0.6,
			wantSuggestions: []string{"Analyze audio file", "Set up triggers", "Review recordings", "Check system status"},
			wantContains:    []string{"I'm here to help you"},
		},
		{
			name:           "audio and transcript fire together",
			input:          "transcript of the recording",
			wantConfidence: 1.0,
			wantSuggestions: []string{
				"Upload audio file",
			},
			wantContains: []string{"I can analyze audio files", "I can transcribe audio files"},
			wantPrefix:   prefixConfident,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := e.Respond(tt.input, nil)

			assert.InDelta(t, tt.wantConfidence, reply.Confidence, 1e-9)
			assert.Equal(t, tt.wantSuggestions, reply.Suggestions)
			for _, want := range tt.wantContains {
				assert.Contains(t, reply.Message, want)
			}
			if tt.wantPrefix != "" {
				assert.True(t, strings.HasPrefix(reply.Message, tt.wantPrefix), reply.Message)
			} else {
				assert.False(t, strings.HasPrefix(reply.Message, prefixConfident))
			}
			assert.NotContains(t, reply.Message, "Interesting input")
		})
	}
}

func TestRespond_FragmentOrder(t *testing.T) {
	e := NewDefaultEngine()

	reply := e.Respond("help me detect audio", nil)

	audioIdx := strings.Index(reply.Message, "I can analyze audio files")
	triggerIdx := strings.Index(reply.Message, "custom triggers")
	helpIdx := strings.Index(reply.Message, "I'm here to help you")
	require.True(t, audioIdx >= 0 && triggerIdx >= 0 && helpIdx >= 0)
	assert.Less(t, audioIdx, triggerIdx)
	assert.Less(t, triggerIdx, helpIdx)
}

func TestRespond_ConfidenceClamp(t *testing.T) {
	e := NewDefaultEngine()
	history := []core.HistoryEntry{entry("anything")}

	reply := e.Respond("audio trigger transcribe learn help", history)

	assert.Equal(t, 1.0, reply.Confidence)
	assert.True(t, reply.ContextUsed)
	assert.True(t, strings.HasPrefix(reply.Message, prefixConfident))
}

func TestRespond_SuggestionOrder(t *testing.T) {
	kb := DefaultConfig()
	e := NewEngine(kb)

	reply := e.Respond("help detect", nil)
	assert.Equal(t, []string{
		"Set up sound trigger",
		"Configure speech trigger",
		"Analyze audio file",
		"Set up triggers",
		"Review recordings",
		"Check system status",
	}, reply.Suggestions)

	// fallback suggestions never mix with rule suggestions
	reply = e.Respond("nothing relevant", nil)
	assert.Len(t, reply.Suggestions, 2)
}

func TestRespond_ContextUsed(t *testing.T) {
	e := NewDefaultEngine()

	tests := []struct {
		name    string
		history []core.HistoryEntry
		want    bool
	}{
		{name: "nil history", history: nil, want: false},
		{name: "empty history", history: []core.HistoryEntry{}, want: false},
		{name: "one blank entry", history: []core.HistoryEntry{{}}, want: true},
		{name: "several entries", history: []core.HistoryEntry{entry("a"), entry("b")}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := e.Respond("hello", tt.history)
			assert.Equal(t, tt.want, reply.ContextUsed)
			if tt.want {
				assert.InDelta(t, 0.6, reply.Confidence, 1e-9)
			} else {
				assert.Equal(t, 0.5, reply.Confidence)
			}
		})
	}
}

func TestRespond_Continuity(t *testing.T) {
	e := NewDefaultEngine()

	t.Run("recent audio discussion", func(t *testing.T) {
		history := []core.HistoryEntry{entry("tell me about audio forensics")}
		reply := e.Respond("hello", history)

		assert.Contains(t, reply.Message, continuityNotice)
		// continuity counts as a fragment, so no fallback is produced
		assert.NotContains(t, reply.Message, "Interesting input")
		assert.Empty(t, reply.Suggestions)
	})

	t.Run("case insensitive", func(t *testing.T) {
		history := []core.HistoryEntry{entry("x"), entry("AUDIO please")}
		reply := e.Respond("hello", history)
		assert.Contains(t, reply.Message, continuityNotice)
	})

	t.Run("only first three entries are inspected", func(t *testing.T) {
		history := []core.HistoryEntry{entry("a"), entry("b"), entry("c"), entry("audio")}
		reply := e.Respond("hello", history)
		assert.NotContains(t, reply.Message, continuityNotice)
		assert.Contains(t, reply.Message, "'hello'")
	})

	t.Run("response field is ignored", func(t *testing.T) {
		history := []core.HistoryEntry{{UserInput: "hi", Response: "audio"}}
		reply := e.Respond("hello", history)
		assert.NotContains(t, reply.Message, continuityNotice)
	})
}

func TestRespond_MissingTopic(t *testing.T) {
	cfg := DefaultConfig()
	delete(cfg.Knowledge, TopicAudio)
	e := NewEngine(cfg)

	reply := e.Respond("audio", nil)

	assert.Equal(t, 0.5, reply.Confidence)
	assert.Contains(t, reply.Message, "Interesting input: 'audio'")
}

func TestRespond_Idempotent(t *testing.T) {
	e := NewDefaultEngine()
	history := []core.HistoryEntry{entry("audio"), entry("help")}

	first := e.Respond("Help me detect a recording", history)
	second := e.Respond("Help me detect a recording", history)

	assert.Equal(t, first, second)
	assert.Equal(t, "audio", history[0].UserInput)
}

func TestRespond_Concurrent(t *testing.T) {
	e := NewDefaultEngine()
	want := e.Respond("audio help", nil)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, e.Respond("audio help", nil))
		}()
	}
	wg.Wait()
}

func TestPersonalize(t *testing.T) {
	tests := []struct {
		confidence float64
		want       string
	}{
		{confidence: 0.71, want: prefixConfident + "msg"},
		{confidence: 0.7, want: "msg"},
		{confidence: 0.3, want: "msg"},
		{confidence: 0.29, want: prefixUncertain + "msg"},
		{confidence: 1.7, want: prefixConfident + "msg"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, personalize("msg", tt.confidence))
	}
}

func TestNewEngine_CopiesConfig(t *testing.T) {
	cfg := DefaultConfig()
	e := NewEngine(cfg)

	cfg.Knowledge[TopicAudio][0] = "mutated"
	cfg.Traits[0] = "mutated"

	assert.NotContains(t, e.Respond("audio", nil).Message, "mutated")
	assert.Equal(t, defaultConfig.Traits, e.Traits())

	traits := e.Traits()
	traits[0] = "mutated"
	assert.Equal(t, defaultConfig.Traits[0], e.Traits()[0])
}
