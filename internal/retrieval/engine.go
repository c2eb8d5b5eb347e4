package retrieval

import (
	"github.com/kitschpatrol/caprica/internal/logstore"
	"github.com/kitschpatrol/caprica/internal/model"
)

// Engine answers queries against a single persona archive. It owns the
// archive's mutable retrieval state (relevance and used flags) for the
// lifetime of a session.
type Engine struct {
	lex     Lexicon
	archive *logstore.Archive
}

// New creates an engine over an archive.
func New(lex Lexicon, archive *logstore.Archive) *Engine {
	return &Engine{lex: lex, archive: archive}
}

// Persona returns the name of the archive this engine answers for.
func (e *Engine) Persona() string {
	return e.archive.Name
}

// Respond runs one full retrieval cycle: expand the question, score the
// archive, select a reply. Nil means no answer, which is a legitimate
// outcome (empty expansion, zero hits, or an exhausted scan), not an error.
func (e *Engine) Respond(question string) *model.Record {
	q := NewQuery(e.lex, question)
	hits := Score(q, e.archive.Records)
	return Select(hits, e.archive.Records)
}
