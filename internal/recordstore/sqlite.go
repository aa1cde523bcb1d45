package recordstore

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

const recordColumns = `v1, v2, v3, q01, q03, q12, q23, q31, q33, c01, c03, c10, c20, c30, t_final`

// SQLiteStore keeps records in a single table ordered by insertion id.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		v1 REAL NOT NULL, v2 REAL NOT NULL, v3 REAL NOT NULL,
		q01 REAL NOT NULL, q03 REAL NOT NULL, q12 REAL NOT NULL,
		q23 REAL NOT NULL, q31 REAL NOT NULL, q33 REAL NOT NULL,
		c01 REAL NOT NULL, c03 REAL NOT NULL,
		c10 REAL NOT NULL, c20 REAL NOT NULL, c30 REAL NOT NULL,
		t_final REAL NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create records table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	if n > MaxRecords {
		n = MaxRecords
	}
	return n, nil
}

func (s *SQLiteStore) Append(r Record) (retErr error) {
	if err := r.check(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	var n int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM records`).Scan(&n); err != nil {
		return fmt.Errorf("count records: %w", err)
	}
	if n >= MaxRecords {
		return ErrFull
	}
	if _, err := tx.Exec(`INSERT INTO records (`+recordColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.V1, r.V2, r.V3,
		r.Q01, r.Q03, r.Q12, r.Q23, r.Q31, r.Q33,
		r.C01, r.C03,
		r.C10, r.C20, r.C30,
		r.TFinal,
	); err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	return tx.Commit()
}

func (s *SQLiteStore) List() ([]Record, error) {
	rows, err := s.db.Query(`SELECT `+recordColumns+` FROM records ORDER BY id LIMIT ?`, MaxRecords)
	if err != nil {
		return nil, fmt.Errorf("select records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := make([]Record, 0, MaxRecords)
	for rows.Next() {
		var r Record
		if err := rows.Scan(
			&r.V1, &r.V2, &r.V3,
			&r.Q01, &r.Q03, &r.Q12, &r.Q23, &r.Q31, &r.Q33,
			&r.C01, &r.C03,
			&r.C10, &r.C20, &r.C30,
			&r.TFinal,
		); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *SQLiteStore) Get(index int) (Record, error) {
	records, err := s.List()
	if err != nil {
		return Record{}, err
	}
	return getFrom(records, index)
}

func (s *SQLiteStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`DELETE FROM records`)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
