// Package aim converts raw AIM chat logs into normalized records.
//
// Sessions are demarcated with either
//
//	Session Start (obrigado:ollHONDAllo): Tue Mar 30 16:22:16 2004
//	Start of ollHONDAllo buffer: Sat Sep 29 02:07:00 2001
//
// and every conversation line is "author: text".
package aim

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/kitschpatrol/caprica/internal/model"
)

// DefaultUsername is the archive owner's screen name; everyone else is
// anonymized to "other".
const DefaultUsername = "obrigado"

// stampLen is how many trailing characters of a session header hold the
// date, e.g. "Sep 29 02:07:00 2001".
const stampLen = 20

const stampLayout = "Jan _2 15:04:05 2006"

var (
	sessionStart = regexp.MustCompile(`^(Start of|Session Start)`)
	sessionEnd   = regexp.MustCompile(`^(End of|Session Close)`)
)

// Parse reads a raw AIM log and returns normalized records in arrival
// order. Lines by any author whose name does not start with username
// (case-insensitively) are anonymized to "other"; authors are lower-cased.
// Blank lines and meta-cruft ("*...", "-...") are skipped, as are
// conversation lines with no colon.
func Parse(r io.Reader, username string) ([]*model.Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	chatID := 0
	var stamp int64
	var records []*model.Record

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "*") || strings.HasPrefix(line, "-") {
			continue
		}

		switch {
		case sessionStart.MatchString(line):
			chatID++
			if len(line) >= stampLen {
				// A bad date keeps the previous stamp.
				if t, err := time.Parse(stampLayout, strings.TrimSpace(line[len(line)-stampLen:])); err == nil {
					stamp = t.Unix()
				}
			}

		case sessionEnd.MatchString(line):
			// Nothing to record.

		default:
			author, text, ok := strings.Cut(line, ":")
			if !ok {
				continue
			}
			if !strings.HasPrefix(strings.ToLower(author), strings.ToLower(username)) {
				author = model.OtherAuthor
			}
			records = append(records, &model.Record{
				ChatID:   strconv.Itoa(chatID),
				Time:     strconv.FormatInt(stamp, 10),
				Author:   strings.ToLower(author),
				Text:     strings.TrimSpace(text),
				Position: len(records),
			})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read aim log: %w", err)
	}
	return records, nil
}
