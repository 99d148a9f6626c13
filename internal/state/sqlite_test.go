package state

import (
	"testing"
	"time"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(nil)
	if err := store.Open(":memory:"); err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	if err := store.InitSchema(); err != nil {
		t.Fatalf("failed to init schema: %v", err)
	}
	return store
}

func TestSQLiteStore_OpenClose(t *testing.T) {
	store := NewSQLiteStore(nil)

	if err := store.Open(":memory:"); err != nil {
		t.Fatalf("failed to open in-memory store: %v", err)
	}

	if err := store.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}
}

func TestSQLiteStore_InitSchema(t *testing.T) {
	store := NewSQLiteStore(nil)
	if err := store.Open(":memory:"); err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	if err := store.InitSchema(); err != nil {
		t.Fatalf("failed to init schema: %v", err)
	}

	rows, err := store.db.Query("SELECT 1 FROM operations LIMIT 1")
	if err != nil {
		t.Fatalf("operations table does not exist: %v", err)
	}
	rows.Close()
}

func TestSQLiteStore_RecordOperation(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()

	rec, err := store.RecordOperation("data/train.csv", "cast_type", "age", "int")
	if err != nil {
		t.Fatalf("failed to record operation: %v", err)
	}

	if rec.ID == "" {
		t.Error("operation ID should not be empty")
	}
	if rec.DatasetPath != "data/train.csv" {
		t.Errorf("expected dataset path 'data/train.csv', got %q", rec.DatasetPath)
	}
	if rec.Op != "cast_type" {
		t.Errorf("expected op 'cast_type', got %q", rec.Op)
	}
	if rec.Column != "age" {
		t.Errorf("expected column 'age', got %q", rec.Column)
	}
	if rec.Detail != "int" {
		t.Errorf("expected detail 'int', got %q", rec.Detail)
	}
	if rec.AppliedAt.IsZero() {
		t.Error("applied_at should be set")
	}
	if time.Since(rec.AppliedAt) > time.Minute {
		t.Errorf("applied_at should be recent, got %v", rec.AppliedAt)
	}
}

func TestSQLiteStore_RecordOperation_NotOpened(t *testing.T) {
	store := NewSQLiteStore(nil)
	if _, err := store.RecordOperation("data.csv", "split", "", ""); err == nil {
		t.Fatal("expected error when recording against unopened store")
	}
}

func TestSQLiteStore_ListOperations(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()

	want := []struct {
		op, column, detail string
	}{
		{"cast_type", "age", "float"},
		{"handle_nulls", "score", "fill_average"},
		{"split", "", "test=0.2 validate=0.1 seed=42"},
	}
	for _, w := range want {
		if _, err := store.RecordOperation("data/train.csv", w.op, w.column, w.detail); err != nil {
			t.Fatalf("failed to record %s: %v", w.op, err)
		}
	}
	// Operations on other files must not leak into the listing.
	if _, err := store.RecordOperation("data/other.csv", "drop_columns", "id", ""); err != nil {
		t.Fatalf("failed to record unrelated operation: %v", err)
	}

	ops, err := store.ListOperations("data/train.csv")
	if err != nil {
		t.Fatalf("failed to list operations: %v", err)
	}
	if len(ops) != len(want) {
		t.Fatalf("expected %d operations, got %d", len(want), len(ops))
	}
	for i, w := range want {
		if ops[i].Op != w.op {
			t.Errorf("operation %d: expected op %q, got %q", i, w.op, ops[i].Op)
		}
		if ops[i].Column != w.column {
			t.Errorf("operation %d: expected column %q, got %q", i, w.column, ops[i].Column)
		}
		if ops[i].Detail != w.detail {
			t.Errorf("operation %d: expected detail %q, got %q", i, w.detail, ops[i].Detail)
		}
	}
}

func TestSQLiteStore_ListOperations_Empty(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()

	ops, err := store.ListOperations("data/missing.csv")
	if err != nil {
		t.Fatalf("failed to list operations: %v", err)
	}
	if len(ops) != 0 {
		t.Errorf("expected no operations, got %d", len(ops))
	}
}
