// Package lexicon provides synonym lookup backed by a WordNet database.
package lexicon

import (
	"fmt"
	"strings"

	"github.com/fluhus/gostuff/nlp/wordnet"
)

// posOrder fixes iteration over the part-of-speech keyed search results so
// variant order is stable across runs.
var posOrder = []string{"n", "v", "a", "s", "r"}

// WordNet is a loaded WordNet dictionary.
type WordNet struct {
	wn *wordnet.WordNet
}

// Open parses the WordNet database directory at path. Matching quality
// depends entirely on the dictionary, so a missing or unreadable database is
// an error rather than a silent fallback.
func Open(path string) (*WordNet, error) {
	wn, err := wordnet.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("load wordnet from %s: %w", path, err)
	}
	return &WordNet{wn: wn}, nil
}

// Variants returns every lemma of every sense of word, lower-cased, in
// database order. Unknown words return nil.
func (l *WordNet) Variants(word string) []string {
	senses := l.wn.Search(word)
	var out []string
	for _, pos := range posOrder {
		for _, ss := range senses[pos] {
			for _, w := range ss.Word {
				out = append(out, strings.ToLower(w))
			}
		}
	}
	return out
}
