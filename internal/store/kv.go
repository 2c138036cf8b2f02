// Package store provides the durable key-value storage used for the
// booking ledger, favorites and host applications. The production
// implementation sits on the shared MySQL handle; Memory backs tests
// and DB-less runs.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	intconfig "villagestay/internal/config"
)

// KV is the minimal durable store contract: string keys, string values.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// SQL stores values in a kv_store table. Zero value uses config.DB.
type SQL struct {
	DB *sql.DB

	once sync.Once
}

func (s *SQL) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s *SQL) ensureTable() error {
	db := s.db()
	if db == nil {
		return fmt.Errorf("db not available")
	}
	var err error
	s.once.Do(func() {
		ddl := `
CREATE TABLE IF NOT EXISTS kv_store (
	k VARCHAR(255) NOT NULL PRIMARY KEY,
	v MEDIUMTEXT NOT NULL,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
		_, err = db.Exec(ddl)
	})
	return err
}

func (s *SQL) Get(key string) (string, bool, error) {
	if err := s.ensureTable(); err != nil {
		return "", false, err
	}
	var v string
	err := s.db().QueryRow(`SELECT v FROM kv_store WHERE k=? LIMIT 1`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *SQL) Set(key, value string) error {
	if err := s.ensureTable(); err != nil {
		return err
	}
	_, err := s.db().Exec(
		`INSERT INTO kv_store (k, v) VALUES (?, ?) ON DUPLICATE KEY UPDATE v=VALUES(v)`,
		key, value,
	)
	return err
}

func (s *SQL) Delete(key string) error {
	if err := s.ensureTable(); err != nil {
		return err
	}
	_, err := s.db().Exec(`DELETE FROM kv_store WHERE k=?`, key)
	return err
}

// Memory is an in-process KV used by tests.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemory() *Memory {
	return &Memory{data: map[string]string{}}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
