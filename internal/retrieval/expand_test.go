package retrieval

import (
	"reflect"
	"strings"
	"testing"
)

// fakeLexicon is an in-memory Lexicon for tests.
type fakeLexicon map[string][]string

func (f fakeLexicon) Variants(word string) []string { return f[word] }

func TestNewQuery_UnknownWordIsSingleton(t *testing.T) {
	lex := fakeLexicon{"test": {"test", "trial", "run"}}
	q := NewQuery(lex, "zzzznotaword test")

	if len(q.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(q.Groups))
	}
	if !reflect.DeepEqual(q.Groups[0], []string{"zzzznotaword"}) {
		t.Errorf("expected singleton group, got %v", q.Groups[0])
	}
	found := false
	for _, v := range q.Groups[1] {
		if v == "test" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected second group to contain \"test\", got %v", q.Groups[1])
	}
}

func TestNewQuery_GlobalDedup(t *testing.T) {
	lex := fakeLexicon{
		"a": {"x", "y"},
		"b": {"y", "z"},
	}
	q := NewQuery(lex, "a b")

	want := [][]string{{"x", "y"}, {"z"}}
	if !reflect.DeepEqual(q.Groups, want) {
		t.Errorf("expected %v, got %v", want, q.Groups)
	}
}

func TestNewQuery_DedupWithinGroup(t *testing.T) {
	lex := fakeLexicon{"a": {"x", "x", "y"}}
	q := NewQuery(lex, "a")

	want := [][]string{{"x", "y"}}
	if !reflect.DeepEqual(q.Groups, want) {
		t.Errorf("expected %v, got %v", want, q.Groups)
	}
}

func TestNewQuery_EmptyGroupDropped(t *testing.T) {
	lex := fakeLexicon{
		"a": {"x"},
		"b": {"x"},
	}
	q := NewQuery(lex, "a b")

	want := [][]string{{"x"}}
	if !reflect.DeepEqual(q.Groups, want) {
		t.Errorf("expected second group dropped, got %v", q.Groups)
	}
}

func TestNewQuery_TableProperties(t *testing.T) {
	lex := fakeLexicon{
		"want": {"want", "desire", "wish"},
		"pics": {"pics", "pic", "picture"},
	}
	text := "i want to see pics"
	q := NewQuery(lex, text)

	tokens := len(strings.Split(text, " "))
	if len(q.Groups) > tokens {
		t.Errorf("table has %d groups for %d tokens", len(q.Groups), tokens)
	}

	seen := map[string]bool{}
	for _, g := range q.Groups {
		if len(g) == 0 {
			t.Error("empty group survived")
		}
		for _, v := range g {
			if seen[v] {
				t.Errorf("variant %q appears in more than one group", v)
			}
			seen[v] = true
		}
	}
}
