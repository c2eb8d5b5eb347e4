package logstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLine_CommasInText(t *testing.T) {
	r, ok := ParseLine("3,1017519736,obrigado,well, that, depends", 0)
	if !ok {
		t.Fatal("expected line to parse")
	}
	if r.ChatID != "3" || r.Time != "1017519736" || r.Author != "obrigado" {
		t.Errorf("bad fields: %+v", r)
	}
	if r.Text != "well, that, depends" {
		t.Errorf("text split on more than three commas: %q", r.Text)
	}
}

func TestParseLine_CaseFoldsAuthor(t *testing.T) {
	r, ok := ParseLine("1,0,ObRiGaDo,hey", 0)
	if !ok {
		t.Fatal("expected line to parse")
	}
	if r.Author != "obrigado" {
		t.Errorf("expected case-folded author, got %q", r.Author)
	}
}

func TestParseLine_TooFewFields(t *testing.T) {
	for _, line := range []string{"", "1,2,3", "just some text"} {
		if _, ok := ParseLine(line, 0); ok {
			t.Errorf("expected %q to be rejected", line)
		}
	}
}

func TestRead_SkipsMalformedAndAssignsPositions(t *testing.T) {
	input := "1,t0,me,first line\nbroken\n1,t1,other,second line\n\n1,t2,me,third line\n"
	arc, err := Read(strings.NewReader(input), "test")
	if err != nil {
		t.Fatal(err)
	}
	if len(arc.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(arc.Records))
	}
	for i, r := range arc.Records {
		if r.Position != i {
			t.Errorf("record %d has position %d", i, r.Position)
		}
	}
	if arc.Records[2].Text != "third line" {
		t.Errorf("unexpected record order: %+v", arc.Records[2])
	}
}

func TestFormatLine_RoundTrip(t *testing.T) {
	r, ok := ParseLine("2,99,other,so, anyway", 5)
	if !ok {
		t.Fatal("expected line to parse")
	}
	if got := FormatLine(r); got != "2,99,other,so, anyway" {
		t.Errorf("round trip changed the line: %q", got)
	}
}

func TestLoadDir_MissingBothIsFatal(t *testing.T) {
	if _, _, err := LoadDir(t.TempDir()); err == nil {
		t.Fatal("expected an error when both archives are missing")
	}
}

func TestLoadDir_OneArchiveIsEnough(t *testing.T) {
	dir := t.TempDir()
	line := "1,0,obrigado,hello there\n"
	if err := os.WriteFile(filepath.Join(dir, SecondPersona+".txt"), []byte(line), 0o644); err != nil {
		t.Fatal(err)
	}

	first, second, err := LoadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(first.Records) != 0 {
		t.Errorf("expected empty first archive, got %d records", len(first.Records))
	}
	if len(second.Records) != 1 || second.Records[0].Text != "hello there" {
		t.Errorf("unexpected second archive: %+v", second.Records)
	}
	if second.Name != SecondPersona {
		t.Errorf("expected archive name %q, got %q", SecondPersona, second.Name)
	}
}
