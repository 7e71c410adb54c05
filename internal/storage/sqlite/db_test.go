package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/sandevgo/dwight/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := NewDB(context.Background(), filepath.Join(t.TempDir(), "nested", "dwight.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNewDB_Migrates(t *testing.T) {
	db := newTestDB(t)

	for _, table := range []string{"dwight_memory", "audio_records", "sound_triggers"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}
}

func TestNewDB_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dwight.db")
	ctx := context.Background()

	db, err := NewDB(ctx, path)
	require.NoError(t, err)
	_, err = NewMemoryRepo(db).Append(ctx, core.HistoryEntry{UserInput: "hi", Response: "hello", Context: "User asked: hi"})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = NewDB(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	entries, err := NewMemoryRepo(db).FetchRecent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestMemoryRepo_FetchRecentOrder(t *testing.T) {
	repo := NewMemoryRepo(newTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	for i, input := range []string{"first", "second", "third", "fourth"} {
		id, err := repo.Append(ctx, core.HistoryEntry{
			UserInput: input,
			Response:  "re: " + input,
			Context:   "User asked: " + input,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), id)
	}

	entries, err := repo.FetchRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "fourth", entries[0].UserInput)
	assert.Equal(t, "third", entries[1].UserInput)
	assert.Equal(t, "second", entries[2].UserInput)
	assert.Equal(t, "re: fourth", entries[0].Response)
	assert.Equal(t, "User asked: fourth", entries[0].Context)
	assert.True(t, entries[0].CreatedAt.Equal(base.Add(3*time.Minute)))
}

func TestMemoryRepo_SameTimestampFallsBackToID(t *testing.T) {
	repo := NewMemoryRepo(newTestDB(t))
	ctx := context.Background()
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	for _, input := range []string{"a", "b"} {
		_, err := repo.Append(ctx, core.HistoryEntry{UserInput: input, CreatedAt: at})
		require.NoError(t, err)
	}

	entries, err := repo.FetchRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].UserInput)
}

func TestMemoryRepo_Empty(t *testing.T) {
	repo := NewMemoryRepo(newTestDB(t))

	entries, err := repo.FetchRecent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMemoryRepo_ClosedDB(t *testing.T) {
	db := newTestDB(t)
	repo := NewMemoryRepo(db)
	require.NoError(t, db.Close())

	_, err := repo.FetchRecent(context.Background(), 10)
	assert.Error(t, err)

	_, err = repo.Append(context.Background(), core.HistoryEntry{UserInput: "x"})
	assert.Error(t, err)
}

func TestRecordsRepo(t *testing.T) {
	repo := NewRecordsRepo(newTestDB(t))
	ctx := context.Background()

	_, err := repo.SaveRecord(ctx, core.AudioRecord{
		Title:    "garage",
		FilePath: "/tmp/garage.wav",
		Duration: 12.5,
	})
	require.NoError(t, err)

	_, err = repo.SaveRecord(ctx, core.AudioRecord{
		Title:      "lobby",
		FilePath:   "/tmp/lobby.mp3",
		Transcript: "hello there",
		Duration:   3,
		Triggers:   "speech:hello",
	})
	require.NoError(t, err)

	records, err := repo.ListRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "lobby", records[0].Title)
	assert.Equal(t, "hello there", records[0].Transcript)
	assert.Equal(t, "speech:hello", records[0].Triggers)
	assert.Equal(t, "garage", records[1].Title)
	assert.Equal(t, "", records[1].Transcript)
	assert.InDelta(t, 12.5, records[1].Duration, 1e-9)
	assert.False(t, records[1].CreatedAt.IsZero())
}

func TestTriggersRepo(t *testing.T) {
	repo := NewTriggersRepo(newTestDB(t))
	ctx := context.Background()

	_, err := repo.SaveTrigger(ctx, core.SoundTrigger{Type: core.TriggerSound, Value: "glass break", Active: true})
	require.NoError(t, err)
	_, err = repo.SaveTrigger(ctx, core.SoundTrigger{Type: core.TriggerSpeech, Value: "help", Active: false})
	require.NoError(t, err)
	_, err = repo.SaveTrigger(ctx, core.SoundTrigger{Type: core.TriggerSpeech, Value: "open the door", Active: true})
	require.NoError(t, err)

	triggers, err := repo.ActiveTriggers(ctx)
	require.NoError(t, err)
	require.Len(t, triggers, 2)

	assert.Equal(t, "glass break", triggers[0].Value)
	assert.Equal(t, core.TriggerSound, triggers[0].Type)
	assert.True(t, triggers[0].Active)
	assert.Equal(t, "open the door", triggers[1].Value)
}

func TestTriggersRepo_RejectsUnknownType(t *testing.T) {
	repo := NewTriggersRepo(newTestDB(t))

	_, err := repo.SaveTrigger(context.Background(), core.SoundTrigger{Type: "vibration", Value: "x", Active: true})
	assert.Error(t, err)
}
