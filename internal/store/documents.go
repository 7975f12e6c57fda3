package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// GetDocument returns the document stored under key, or ErrNotFound.
func (s *Store) GetDocument(key string) (*Document, error) {
	d := &Document{Key: key}
	var updatedAt string
	err := s.db.QueryRow(
		`SELECT value, revision, updated_at FROM documents WHERE key = ?`, key,
	).Scan(&d.Value, &d.Revision, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get document %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get document %q: %w", key, err)
	}
	d.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return d, nil
}

// Load returns the raw value stored under key. A missing key is not an error:
// ok is false and value is empty.
func (s *Store) Load(key string) (value []byte, ok bool, err error) {
	d, err := s.GetDocument(key)
	if errors.Is(err, ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(d.Value), true, nil
}

// Save overwrites the whole document stored under key.
func (s *Store) Save(key string, value []byte) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		`INSERT INTO documents (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			revision = documents.revision + 1,
			updated_at = excluded.updated_at`,
		key, string(value), now,
	)
	if err != nil {
		return fmt.Errorf("save document %q: %w", key, err)
	}
	return nil
}

// ListDocuments returns every stored document ordered by key.
func (s *Store) ListDocuments() ([]Document, error) {
	rows, err := s.db.Query(`SELECT key, value, revision, updated_at FROM documents ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		var updatedAt string
		if err := rows.Scan(&d.Key, &d.Value, &d.Revision, &updatedAt); err != nil {
			return nil, err
		}
		d.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		docs = append(docs, d)
	}
	return docs, rows.Err()
}
