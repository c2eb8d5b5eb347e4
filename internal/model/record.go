// Package model defines the core chat log data types.
package model

// OtherAuthor is the anonymized author assigned to every non-owner line.
const OtherAuthor = "other"

// Record is a single archived chat message.
//
// Position fixes the record's place in the archive's arrival order and is
// its identity for hit deduplication and forward scanning; ChatID only
// groups records into conversations. Used is mutated by the selector,
// Relevance by the matcher; everything else is immutable after load.
type Record struct {
	ChatID    string  `json:"chat_id"`
	Time      string  `json:"time"`
	Author    string  `json:"author"`
	Text      string  `json:"text"`
	Position  int     `json:"position"`
	Used      bool    `json:"used,omitempty"`
	Relevance float64 `json:"relevance,omitempty"`
}

// Owned reports whether the line was written by the archive owner.
func (r *Record) Owned() bool {
	return r.Author != OtherAuthor
}
