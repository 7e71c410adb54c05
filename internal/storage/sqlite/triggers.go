package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sandevgo/dwight/internal/core"
)

type TriggersRepo struct {
	db *sql.DB
}

func NewTriggersRepo(db *sql.DB) *TriggersRepo {
	return &TriggersRepo{db: db}
}

func (r *TriggersRepo) SaveTrigger(ctx context.Context, trigger core.SoundTrigger) (int64, error) {
	query := `INSERT INTO sound_triggers (trigger_type, trigger_value, is_active, created_at) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, trigger.Type, trigger.Value, trigger.Active, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to insert trigger: %w", err)
	}
	return res.LastInsertId()
}

func (r *TriggersRepo) ActiveTriggers(ctx context.Context) ([]core.SoundTrigger, error) {
	query := `SELECT id, trigger_type, trigger_value, is_active, created_at FROM sound_triggers WHERE is_active = 1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query triggers: %w", err)
	}
	defer rows.Close()

	var triggers []core.SoundTrigger
	for rows.Next() {
		var tr core.SoundTrigger
		if err := rows.Scan(&tr.ID, &tr.Type, &tr.Value, &tr.Active, &tr.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan trigger: %w", err)
		}
		triggers = append(triggers, tr)
	}

	return triggers, rows.Err()
}
