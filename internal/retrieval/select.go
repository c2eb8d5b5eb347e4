package retrieval

import "github.com/kitschpatrol/caprica/internal/model"

// Select picks the reply for a scored hit list. The scan starts at the
// last hit in iteration order that attains the maximum score and walks
// forward through the archive, inclusive, to the first unused record
// authored by the archive owner. That record is marked used and returned.
//
// Nil means no answer: an empty hit list or an exhausted forward scan.
// Exhaustion mutates nothing, so repeating the call is a no-op.
func Select(hits []*model.Record, records []*model.Record) *model.Record {
	if len(hits) == 0 {
		return nil
	}

	high := hits[0].Relevance
	for _, h := range hits[1:] {
		if h.Relevance > high {
			high = h.Relevance
		}
	}

	// Last max wins: keep overwriting so the final maximal hit decides
	// where the scan starts.
	start := 0
	for _, h := range hits {
		if h.Relevance == high {
			start = h.Position
		}
	}

	for _, r := range records[start:] {
		if r.Owned() && !r.Used {
			r.Used = true
			return r
		}
	}
	return nil
}
