package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/rozvrh-svg/rozvrh/core/model"
)

// SQLiteSource persists events to a SQLite database, one JSON record per row.
type SQLiteSource struct {
	db *sql.DB
}

// NewSQLiteSource opens or creates the database at path and ensures schema.
func NewSQLiteSource(path string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	schema := `CREATE TABLE IF NOT EXISTS timetable_events (
        id TEXT PRIMARY KEY,
        day TEXT NOT NULL,
        start_time TEXT NOT NULL,
        record TEXT NOT NULL
    );`
	if _, err := db.Exec(schema); err != nil {
		if cerr := db.Close(); cerr != nil {
			return nil, fmt.Errorf("close db: %v (schema err: %w)", cerr, err)
		}
		return nil, err
	}
	return &SQLiteSource{db: db}, nil
}

// Save upserts events by id inside a single transaction.
func (s *SQLiteSource) Save(ctx context.Context, events []model.Event) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO timetable_events (id, day, start_time, record)
        VALUES (?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET day = excluded.day, start_time = excluded.start_time, record = excluded.record`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer func() { _ = stmt.Close() }()
	for _, ev := range events {
		b, err := json.Marshal(ev)
		if err != nil {
			_ = tx.Rollback()
			return err
		}
		if _, err := stmt.ExecContext(ctx, ev.ID, ev.Date.String(), ev.StartTime, string(b)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("save event %s: %w", ev.ID, err)
		}
	}
	return tx.Commit()
}

// Events returns every stored event ordered by day, start time and id.
func (s *SQLiteSource) Events(ctx context.Context) ([]model.Event, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT record FROM timetable_events ORDER BY day, start_time, id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	res := []model.Event{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var ev model.Event
		if err := json.Unmarshal([]byte(data), &ev); err != nil {
			return nil, fmt.Errorf("unmarshal record: %w", err)
		}
		res = append(res, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// Close closes the underlying database.
func (s *SQLiteSource) Close() error { return s.db.Close() }
