package core

import "context"

// MemoryRepository stores the conversation history.
// FetchRecent returns entries ordered newest first.
type MemoryRepository interface {
	FetchRecent(ctx context.Context, limit int) ([]HistoryEntry, error)
	Append(ctx context.Context, entry HistoryEntry) (int64, error)
}

type AudioRecordRepository interface {
	SaveRecord(ctx context.Context, record AudioRecord) (int64, error)
	ListRecords(ctx context.Context) ([]AudioRecord, error)
}

type TriggerRepository interface {
	SaveTrigger(ctx context.Context, trigger SoundTrigger) (int64, error)
	ActiveTriggers(ctx context.Context) ([]SoundTrigger, error)
}
