package retrieval

import (
	"strings"

	"github.com/kitschpatrol/caprica/internal/model"
)

// Score scans records in order and accumulates each record's relevance:
// one point per occurrence of each query variant as a literal substring of
// the record's text. Substring containment is the matching semantic, so a
// variant inside a longer word still counts. Matched scores are then
// normalized by the record's own space-split token count.
//
// The returned hit list collapses immediately-repeated identical-position
// hits from the raw (record, variant) match stream. Only transition
// boundaries survive, so the stream's first run is dropped; a record
// reappearing after a different record is kept again.
func Score(q *Query, records []*model.Record) []*model.Record {
	for _, r := range records {
		r.Relevance = 0
	}

	var hits []*model.Record
	for _, r := range records {
		for _, group := range q.Groups {
			for _, variant := range group {
				if n := strings.Count(r.Text, variant); n > 0 {
					r.Relevance += float64(n)
					hits = append(hits, r)
				}
			}
		}
	}

	for _, r := range records {
		if r.Relevance > 0 {
			if n := len(strings.Split(r.Text, " ")); n > 0 {
				r.Relevance /= float64(n)
			}
		}
	}

	var unique []*model.Record
	for i := 1; i < len(hits); i++ {
		if hits[i-1].Position != hits[i].Position {
			unique = append(unique, hits[i])
		}
	}
	return unique
}
