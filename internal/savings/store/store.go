package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack/internal/savings"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListAutoSaveRecords(ctx context.Context, userID uuid.UUID, limit int) ([]*savings.AutoSaveRecord, error) {
	query := `
		SELECT id, user_id, date, amount, rule_type, status
		FROM autosave_records
		WHERE user_id = $1
		ORDER BY date DESC
		LIMIT $2
	`

	rows, err := s.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing autosave records: %w", err)
	}
	defer rows.Close()

	var records []*savings.AutoSaveRecord

	for rows.Next() {
		var (
			r      savings.AutoSaveRecord
			status string
		)

		if err := rows.Scan(&r.ID, &r.UserID, &r.Date, &r.Amount, &r.RuleType, &status); err != nil {
			return nil, fmt.Errorf("scanning autosave record: %w", err)
		}

		r.Status = savings.RecordStatus(status)
		records = append(records, &r)
	}

	return records, rows.Err()
}
