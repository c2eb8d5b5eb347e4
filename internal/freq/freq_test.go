package freq

import (
	"reflect"
	"testing"

	"github.com/kitschpatrol/caprica/internal/model"
)

func recs(texts ...string) []*model.Record {
	var out []*model.Record
	for i, t := range texts {
		out = append(out, &model.Record{ChatID: "1", Author: "me", Text: t, Position: i})
	}
	return out
}

func TestTokenize_WordPunct(t *testing.T) {
	got := Tokenize("don't stop!! ok")
	want := []string{"don", "'", "t", "stop", "!!", "ok"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTokenize_Empty(t *testing.T) {
	if got := Tokenize("   "); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestWords_MinFreqAndOrder(t *testing.T) {
	records := recs("the cat and the dog", "the dog barks")
	got := Words(records, 2)
	want := []Count{{Item: "the", N: 3}, {Item: "dog", N: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestBigrams_CountsAdjacentPairs(t *testing.T) {
	records := recs("good morning world", "good morning sunshine")
	got := Bigrams(records, 2)
	want := []Count{{Item: "good morning", N: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestBigrams_SkipsBarePunctuationAndDigits(t *testing.T) {
	records := recs("ok . ok . ok 5 ok")
	got := Bigrams(records, 1)
	if len(got) != 0 {
		t.Errorf("expected punctuation/digit pairs skipped, got %v", got)
	}
}

func TestBigrams_StripsCommasFromItems(t *testing.T) {
	// "so, anyway" tokenizes to ["so", ",", "anyway"]; the bare comma pair
	// is filtered, but longer punctuation runs are kept and de-comma'd.
	records := recs("hm ,, hm ,, hm")
	got := Bigrams(records, 2)
	for _, c := range got {
		for _, r := range c.Item {
			if r == ',' {
				t.Errorf("comma survived in report item %q", c.Item)
			}
		}
	}
	if len(got) == 0 {
		t.Fatal("expected multi-character punctuation pairs to be counted")
	}
}
