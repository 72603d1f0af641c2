// Package objects keeps a sqlite index of known external objects and stores
// the packed blobs extracted from imported containers. It is the repository
// collaborator the importer hands required-object lists to.
package objects

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"parklegacy.dev/internal/s6"
)

type Index struct {
	db *sql.DB
}

func Open(path string) (*Index, error) {
	if path == "" {
		return nil, fmt.Errorf("objects: empty db path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Index{db: db}, nil
}

func (ix *Index) Close() error { return ix.db.Close() }

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA temp_store=MEMORY;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS objects (
			identifier TEXT PRIMARY KEY,
			flags INTEGER NOT NULL,
			checksum INTEGER NOT NULL,
			source TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS packed_objects (
			identifier TEXT PRIMARY KEY,
			flags INTEGER NOT NULL,
			checksum INTEGER NOT NULL,
			digest TEXT NOT NULL,
			data BLOB NOT NULL,
			updated_at TEXT NOT NULL
		);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// Record notes that source requires the given objects, upserting each into
// the known-objects table.
func (ix *Index) Record(source string, entries []s6.ObjectEntry) error {
	tx, err := ix.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	stmt, err := tx.Prepare(
		`INSERT INTO objects (identifier, flags, checksum, source, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(identifier) DO UPDATE SET
			flags=excluded.flags, checksum=excluded.checksum, updated_at=excluded.updated_at`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, e := range entries {
		if _, err := stmt.Exec(e.Identifier(), int64(e.Flags), int64(e.Checksum), source, now); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Has reports whether the identifier is known, either as an indexed object
// or as a stored packed blob.
func (ix *Index) Has(identifier string) (bool, error) {
	var n int
	err := ix.db.QueryRow(
		`SELECT COUNT(*) FROM (
			SELECT identifier FROM objects WHERE identifier = ?
			UNION SELECT identifier FROM packed_objects WHERE identifier = ?
		)`, identifier, identifier).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Missing filters entries down to the ones the index has never seen.
func (ix *Index) Missing(entries []s6.ObjectEntry) ([]s6.ObjectEntry, error) {
	var missing []s6.ObjectEntry
	for _, e := range entries {
		ok, err := ix.Has(e.Identifier())
		if err != nil {
			return nil, err
		}
		if !ok {
			missing = append(missing, e)
		}
	}
	return missing, nil
}

// ExportPackedObject stores one embedded asset blob. It implements the
// decoder's sink interface; duplicate identifiers keep the newest copy.
func (ix *Index) ExportPackedObject(entry s6.ObjectEntry, data []byte) error {
	sum := sha256.Sum256(data)
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := ix.db.Exec(
		`INSERT INTO packed_objects (identifier, flags, checksum, digest, data, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(identifier) DO UPDATE SET
			flags=excluded.flags, checksum=excluded.checksum,
			digest=excluded.digest, data=excluded.data, updated_at=excluded.updated_at`,
		entry.Identifier(), int64(entry.Flags), int64(entry.Checksum),
		hex.EncodeToString(sum[:]), data, now)
	return err
}

// PackedObject returns a stored blob by identifier.
func (ix *Index) PackedObject(identifier string) ([]byte, error) {
	var data []byte
	err := ix.db.QueryRow(
		`SELECT data FROM packed_objects WHERE identifier = ?`, identifier).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("objects: %q not stored", identifier)
	}
	return data, err
}
