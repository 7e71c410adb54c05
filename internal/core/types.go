package core

import "time"

const (
	DwightName    = "Dwight"
	DwightVersion = "0.1.0"
)

// HistoryEntry is one past exchange with the assistant.
type HistoryEntry struct {
	ID        int64     `json:"id"`
	UserInput string    `json:"user_input"`
	Response  string    `json:"response"`
	Context   string    `json:"context"`
	CreatedAt time.Time `json:"created_at"`
}

// Reply is the structured answer produced for a single utterance.
type Reply struct {
	Message     string   `json:"message"`
	Confidence  float64  `json:"confidence"`
	ContextUsed bool     `json:"context_used"`
	Suggestions []string `json:"suggestions"`
}

type AudioRecord struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	FilePath   string    `json:"file_path"`
	Transcript string    `json:"transcript,omitempty"`
	Duration   float64   `json:"duration"`
	Triggers   string    `json:"triggers,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

const (
	TriggerSound  = "sound"
	TriggerSpeech = "speech"
)

type SoundTrigger struct {
	ID        int64     `json:"id"`
	Type      string    `json:"trigger_type"` // "sound" or "speech"
	Value     string    `json:"trigger_value"`
	Active    bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// FileAnalysis is the result of inspecting an audio file on disk.
type FileAnalysis struct {
	Path         string   `json:"path"`
	Format       string   `json:"format"`
	Notes        []string `json:"notes"`
	Observations []string `json:"observations"`
	Duration     float64  `json:"duration"`
	SampleRate   int      `json:"sample_rate"`
}
