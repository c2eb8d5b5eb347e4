package store

import (
	"context"
	"os"
)

// Stats holds corpus statistics.
type Stats struct {
	DBPath        string         `json:"db_path"`
	DBSizeBytes   int64          `json:"db_size_bytes"`
	TotalMessages int            `json:"total_messages"`
	Personas      []PersonaStats `json:"personas"`
}

// PersonaStats holds per-persona counts.
type PersonaStats struct {
	Persona       string `json:"persona"`
	Messages      int    `json:"messages"`
	Conversations int    `json:"conversations"`
	OwnerLines    int    `json:"owner_lines"`
}

// Stats returns corpus statistics.
func (s *CorpusStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM messages`).Scan(&st.TotalMessages)

	rows, err := s.db.QueryContext(ctx, `
		SELECT persona, COUNT(*) AS cnt, COUNT(DISTINCT chat_id) AS chats,
		       SUM(CASE WHEN author != 'other' THEN 1 ELSE 0 END) AS owned
		FROM messages
		GROUP BY persona ORDER BY cnt DESC`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var p PersonaStats
		rows.Scan(&p.Persona, &p.Messages, &p.Conversations, &p.OwnerLines)
		st.Personas = append(st.Personas, p)
	}

	return st, rows.Err()
}
