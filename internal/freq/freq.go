// Package freq reports word and bigram frequencies over a chat log, useful
// for understanding common word pairings in an archive.
package freq

import (
	"sort"
	"strings"
	"unicode"

	"github.com/kitschpatrol/caprica/internal/model"
)

// Count is one frequency report entry.
type Count struct {
	Item string `json:"item"`
	N    int    `json:"count"`
}

const punctuation = "!\"'#$%&()*+,-./:;<=>?@[]^_`{|}~"

// Tokenize splits text into runs of word characters and runs of
// punctuation, the wordpunct style: "don't" -> ["don", "'", "t"].
func Tokenize(text string) []string {
	var tokens []string
	var current []rune
	currentWord := false

	flush := func() {
		if len(current) > 0 {
			tokens = append(tokens, string(current))
			current = current[:0]
		}
	}

	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			flush()
		case isWordRune(r) != currentWord:
			flush()
			currentWord = isWordRune(r)
			current = append(current, r)
		default:
			current = append(current, r)
		}
	}
	flush()

	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// Words counts token frequencies across all records, keeping tokens that
// occur at least minFreq times.
func Words(records []*model.Record, minFreq int) []Count {
	counts := make(map[string]int)
	for _, tok := range tokenizeAll(records) {
		counts[tok]++
	}
	return report(counts, minFreq)
}

// Bigrams counts adjacent token pairs across the combined token stream,
// skipping pairs that contain a bare punctuation or digit token. Pair items
// are rendered "first second" with commas removed so the report stays
// loadable as comma-separated lines.
func Bigrams(records []*model.Record, minFreq int) []Count {
	tokens := tokenizeAll(records)
	counts := make(map[string]int)
	for i := 1; i < len(tokens); i++ {
		if skipToken(tokens[i-1]) || skipToken(tokens[i]) {
			continue
		}
		gram := strings.ReplaceAll(tokens[i-1]+" "+tokens[i], ",", "")
		counts[gram]++
	}
	return report(counts, minFreq)
}

func tokenizeAll(records []*model.Record) []string {
	var texts []string
	for _, r := range records {
		texts = append(texts, r.Text)
	}
	return Tokenize(strings.Join(texts, " "))
}

func skipToken(tok string) bool {
	if len(tok) != 1 {
		return false
	}
	return strings.ContainsAny(tok, punctuation) || tok[0] >= '0' && tok[0] <= '9'
}

func report(counts map[string]int, minFreq int) []Count {
	if minFreq < 1 {
		minFreq = 1
	}
	var out []Count
	for item, n := range counts {
		if n >= minFreq {
			out = append(out, Count{Item: item, N: n})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].N != out[j].N {
			return out[i].N > out[j].N
		}
		return out[i].Item < out[j].Item
	})
	return out
}
