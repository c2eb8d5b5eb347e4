// Package chunker merges consecutive messages from the same author into
// single records, which makes retrieved replies read like complete turns.
package chunker

import "github.com/kitschpatrol/caprica/internal/model"

// Separator joins the texts of merged messages.
const Separator = " ... "

// Merge combines runs of records that share an author and conversation id
// into one record, keeping the first record's id and time. The input is not
// mutated; output positions are assigned densely.
func Merge(records []*model.Record) []*model.Record {
	var out []*model.Record
	var current *model.Record

	for _, r := range records {
		if current != nil && r.Author == current.Author && r.ChatID == current.ChatID {
			current.Text += Separator + r.Text
			continue
		}
		cp := *r
		cp.Position = len(out)
		current = &cp
		out = append(out, current)
	}

	return out
}
