package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sandevgo/dwight/internal/core"
	"github.com/sandevgo/dwight/pkg/log"
)

type MemoryRepo struct {
	db *sql.DB
}

func NewMemoryRepo(db *sql.DB) *MemoryRepo {
	return &MemoryRepo{db: db}
}

func (r *MemoryRepo) Append(ctx context.Context, entry core.HistoryEntry) (int64, error) {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query := `INSERT INTO dwight_memory (context, response, user_input, created_at) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, entry.Context, entry.Response, entry.UserInput, createdAt.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to insert memory: %w", err)
	}
	return res.LastInsertId()
}

// FetchRecent returns up to limit entries, newest first.
func (r *MemoryRepo) FetchRecent(ctx context.Context, limit int) ([]core.HistoryEntry, error) {
	query := `SELECT id, context, response, user_input, created_at FROM dwight_memory ORDER BY created_at DESC, id DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query memory: %w", err)
	}
	defer rows.Close()

	var entries []core.HistoryEntry
	for rows.Next() {
		var e core.HistoryEntry
		if err := rows.Scan(&e.ID, &e.Context, &e.Response, &e.UserInput, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan memory: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.FromCtx(ctx).Debug().Int("count", len(entries)).Msg("loaded conversation memory")
	return entries, nil
}
