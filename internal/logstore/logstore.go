// Package logstore loads normalized chat logs into ordered persona archives.
package logstore

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kitschpatrol/caprica/internal/model"
)

// Fixed logical persona names. An archive for a persona lives at
// <data-dir>/<persona>.txt in the normalized line format.
const (
	FirstPersona  = "edgwired"
	SecondPersona = "obrigado"
)

// Archive is the ordered message history of one persona. Records are never
// reordered or removed after load, only annotated by the retrieval layer.
type Archive struct {
	Name    string
	Records []*model.Record
}

// ParseLine parses one normalized log line, "id,time,author,text", split on
// the first three commas so the text may itself contain commas. Lines with
// fewer than four fields are rejected.
func ParseLine(line string, pos int) (*model.Record, bool) {
	parts := strings.SplitN(strings.TrimSpace(line), ",", 4)
	if len(parts) < 4 {
		return nil, false
	}
	return &model.Record{
		ChatID:   parts[0],
		Time:     parts[1],
		Author:   strings.ToLower(parts[2]),
		Text:     parts[3],
		Position: pos,
	}, true
}

// FormatLine renders a record back into the normalized line format.
func FormatLine(r *model.Record) string {
	return fmt.Sprintf("%s,%s,%s,%s", r.ChatID, r.Time, r.Author, r.Text)
}

// Read parses an archive from r. Malformed lines are skipped; positions are
// assigned densely over the kept records.
func Read(r io.Reader, name string) (*Archive, error) {
	arc := &Archive{Name: name}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if rec, ok := ParseLine(sc.Text(), len(arc.Records)); ok {
			arc.Records = append(arc.Records, rec)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s archive: %w", name, err)
	}
	return arc, nil
}

// ReadFile loads an archive from path. A missing file yields an empty
// archive, not an error; whether that is fatal is the caller's call.
func ReadFile(path, name string) (*Archive, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return &Archive{Name: name}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s archive: %w", name, err)
	}
	defer f.Close()
	return Read(f, name)
}

// LoadDir loads both persona archives from dir. Both being empty is a fatal
// startup condition.
func LoadDir(dir string) (first, second *Archive, err error) {
	first, err = ReadFile(filepath.Join(dir, FirstPersona+".txt"), FirstPersona)
	if err != nil {
		return nil, nil, err
	}
	second, err = ReadFile(filepath.Join(dir, SecondPersona+".txt"), SecondPersona)
	if err != nil {
		return nil, nil, err
	}
	if len(first.Records) == 0 && len(second.Records) == 0 {
		return nil, nil, fmt.Errorf("no chat logs in %s (expected %s.txt or %s.txt)", dir, FirstPersona, SecondPersona)
	}
	return first, second, nil
}
