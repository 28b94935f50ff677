// CLAUDE:SUMMARY SQLite handle for the mock catalog — opens the DB, applies schema, seeds deterministic demo data.
// Package catalog provides the mocked storefront backend: products,
// categories, and site navigation persisted in SQLite.
//
// Product rows carry the raw backend JSON document untouched; the store
// normalizes through the normalize package on every read, so both backend
// document shapes flow through the same pipeline the live integration
// would use.
package catalog

import (
	"database/sql"

	"github.com/sunrisefront/sunrise/dbopen"
)

// Store is the catalog database handle.
type Store struct {
	DB *sql.DB
}

// Open opens (or creates) the catalog SQLite database at path and applies
// the schema.
func Open(path string, opts ...dbopen.Option) (*Store, error) {
	allOpts := append([]dbopen.Option{
		dbopen.WithMkdirAll(),
		dbopen.WithSchema(Schema),
	}, opts...)

	db, err := dbopen.Open(path, allOpts...)
	if err != nil {
		return nil, err
	}
	return &Store{DB: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.DB.Close()
}
