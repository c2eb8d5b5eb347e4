// Package store provides a SQLite-backed corpus of normalized chat
// messages, an alternative to flat-file archives. Retrieval state (used
// flags, scores) is process-local and never written back here.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/kitschpatrol/caprica/internal/model"
)

// CorpusStore holds persona message histories in SQLite.
type CorpusStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

// NewCorpusStore opens or creates a corpus database at the given path.
func NewCorpusStore(dbPath string) (*CorpusStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &CorpusStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *CorpusStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *CorpusStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS messages (
		id      TEXT PRIMARY KEY,
		persona TEXT NOT NULL,
		seq     INTEGER NOT NULL,
		chat_id TEXT NOT NULL,
		at      TEXT,
		author  TEXT NOT NULL,
		body    TEXT NOT NULL
	);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_messages_persona_seq ON messages(persona, seq);
	CREATE INDEX IF NOT EXISTS idx_messages_persona_author ON messages(persona, author);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Import appends records to a persona's history, continuing its sequence.
// Returns the number of rows written.
func (s *CorpusStore) Import(ctx context.Context, persona string, records []*model.Record) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var next int
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq) + 1, 0) FROM messages WHERE persona = ?`, persona).Scan(&next)
	if err != nil {
		return 0, err
	}

	for i, r := range records {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO messages (id, persona, seq, chat_id, at, author, body)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			s.newID(), persona, next+i, r.ChatID, r.Time, r.Author, r.Text)
		if err != nil {
			return 0, fmt.Errorf("insert message: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(records), nil
}

// Archive returns a persona's full history in sequence order, with
// positions assigned densely.
func (s *CorpusStore) Archive(ctx context.Context, persona string) ([]*model.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT chat_id, at, author, body FROM messages WHERE persona = ? ORDER BY seq`, persona)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*model.Record
	for rows.Next() {
		var r model.Record
		var at sql.NullString
		if err := rows.Scan(&r.ChatID, &at, &r.Author, &r.Text); err != nil {
			return nil, err
		}
		r.Time = at.String
		r.Position = len(records)
		records = append(records, &r)
	}
	return records, rows.Err()
}

// Personas lists persona names present in the corpus.
func (s *CorpusStore) Personas(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT persona FROM messages ORDER BY persona`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var personas []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		personas = append(personas, p)
	}
	return personas, rows.Err()
}

// Close closes the store.
func (s *CorpusStore) Close() error {
	return s.db.Close()
}
