package state

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS operations (
	id           TEXT PRIMARY KEY,
	dataset_path TEXT NOT NULL,
	op           TEXT NOT NULL,
	column_name  TEXT NOT NULL DEFAULT '',
	detail       TEXT NOT NULL DEFAULT '',
	applied_at   TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_operations_dataset ON operations(dataset_path, applied_at);
`

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// NewSQLiteStore creates a new SQLite history store instance.
func NewSQLiteStore(logger *slog.Logger) *SQLiteStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SQLiteStore{logger: logger}
}

// Open opens a connection to the SQLite database.
// Use ":memory:" for an in-memory database.
func (s *SQLiteStore) Open(path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping history database: %w", err)
	}
	s.db = db
	s.path = path
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// InitSchema creates the operations table if it does not exist.
func (s *SQLiteStore) InitSchema() error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// RecordOperation appends an operation to a dataset file's history.
func (s *SQLiteStore) RecordOperation(datasetPath, op, column, detail string) (*Operation, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	rec := &Operation{
		ID:          uuid.New().String(),
		DatasetPath: datasetPath,
		Op:          op,
		Column:      column,
		Detail:      detail,
		AppliedAt:   time.Now().UTC(),
	}

	s.logger.Debug("recording operation", "id", rec.ID, "dataset", datasetPath, "op", op)

	_, err := s.db.Exec(
		`INSERT INTO operations (id, dataset_path, op, column_name, detail, applied_at) VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.DatasetPath, rec.Op, rec.Column, rec.Detail, rec.AppliedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to record operation: %w", err)
	}
	return rec, nil
}

// ListOperations returns a dataset file's history, oldest first.
func (s *SQLiteStore) ListOperations(datasetPath string) ([]*Operation, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	rows, err := s.db.Query(
		`SELECT id, dataset_path, op, column_name, detail, applied_at
		 FROM operations WHERE dataset_path = ? ORDER BY applied_at, id`,
		datasetPath,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}
	defer rows.Close()

	var ops []*Operation
	for rows.Next() {
		op := &Operation{}
		if err := rows.Scan(&op.ID, &op.DatasetPath, &op.Op, &op.Column, &op.Detail, &op.AppliedAt); err != nil {
			return nil, fmt.Errorf("failed to scan operation: %w", err)
		}
		ops = append(ops, op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate operations: %w", err)
	}
	return ops, nil
}
