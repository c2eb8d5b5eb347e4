// Package retrieval matches a query against a persona archive and picks an
// unused reply: synonym expansion, substring scoring, and a forward scan
// from the best hit.
package retrieval

import "strings"

// Lexicon looks up lexical variants of a single word. Unknown words return
// an empty result.
type Lexicon interface {
	Variants(word string) []string
}

// Query is a transient message being matched against an archive. Groups is
// its expansion table: one deduplicated variant group per input token, in
// token order.
type Query struct {
	Text   string
	Groups [][]string
}

// NewQuery expands text into a query. Tokens are split on single spaces
// with no punctuation normalization. A token with no lexicon entries
// expands to itself. Deduplication is global and first-occurrence-wins:
// each distinct variant appears exactly once in the whole table, attached
// to the first token that produced it, and groups left empty by
// deduplication are dropped.
func NewQuery(lex Lexicon, text string) *Query {
	q := &Query{Text: text}
	seen := make(map[string]bool)

	for _, token := range strings.Split(text, " ") {
		variants := lex.Variants(token)
		if len(variants) == 0 {
			variants = []string{token}
		}

		var group []string
		for _, v := range variants {
			if seen[v] {
				continue
			}
			seen[v] = true
			group = append(group, v)
		}
		if len(group) > 0 {
			q.Groups = append(q.Groups, group)
		}
	}

	return q
}
