package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sandevgo/dwight/internal/core"
)

type RecordsRepo struct {
	db *sql.DB
}

func NewRecordsRepo(db *sql.DB) *RecordsRepo {
	return &RecordsRepo{db: db}
}

func (r *RecordsRepo) SaveRecord(ctx context.Context, rec core.AudioRecord) (int64, error) {
	query := `INSERT INTO audio_records (title, file_path, transcript, duration, triggers, created_at) VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		rec.Title, rec.FilePath, rec.Transcript, rec.Duration, rec.Triggers, time.Now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert audio record: %w", err)
	}
	return res.LastInsertId()
}

// ListRecords returns every record, newest first.
func (r *RecordsRepo) ListRecords(ctx context.Context) ([]core.AudioRecord, error) {
	query := `SELECT id, title, file_path, transcript, duration, triggers, created_at FROM audio_records ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query audio records: %w", err)
	}
	defer rows.Close()

	var records []core.AudioRecord
	for rows.Next() {
		var rec core.AudioRecord
		var transcript, triggers sql.NullString

		if err := rows.Scan(&rec.ID, &rec.Title, &rec.FilePath, &transcript, &rec.Duration, &triggers, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audio record: %w", err)
		}

		rec.Transcript = transcript.String
		rec.Triggers = triggers.String
		records = append(records, rec)
	}

	return records, rows.Err()
}
