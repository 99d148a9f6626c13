// Package state records the preparation operations applied to dataset files
// in a SQLite history store, so a run of casts and cleanups can be reviewed
// later.
package state

import "time"

// Operation is one recorded mutation of a dataset file.
type Operation struct {
	ID          string
	DatasetPath string
	Op          string
	Column      string
	Detail      string
	AppliedAt   time.Time
}

// Store is the operation-history interface.
type Store interface {
	Open(path string) error
	Close() error
	InitSchema() error
	RecordOperation(datasetPath, op, column, detail string) (*Operation, error)
	ListOperations(datasetPath string) ([]*Operation, error)
}
