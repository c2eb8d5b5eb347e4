package retrieval

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Interactive runs a query/response loop against one engine. Each input
// line is a query; the literal string "quit", case-insensitively, or
// end-of-input ends the session. A no-answer turn is reported and the
// session continues. Context cancellation (interrupt) ends the session
// cleanly between turns.
func Interactive(ctx context.Context, e *Engine, in io.Reader, out io.Writer) error {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- sc.Err()
		close(lines)
	}()

	for {
		fmt.Fprint(out, "You say: ")
		select {
		case <-ctx.Done():
			fmt.Fprintln(out, "\nGoodbye!")
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(out, "\nGoodbye!")
				return <-errc
			}
			if strings.EqualFold(line, "quit") {
				return nil
			}
			if r := e.Respond(line); r != nil {
				fmt.Fprintf(out, "%s: %s\n", r.Author, r.Text)
			} else {
				fmt.Fprintln(out, "No response found.")
			}
		}
	}
}

// Auto alternates two engines: each reply becomes the other persona's next
// query. The first engine answers the initial query. The session ends on
// the first no-answer turn; there are no retries.
func Auto(first, second *Engine, initial string, out io.Writer) {
	engines := [2]*Engine{first, second}
	query := initial

	for turn := 0; ; turn++ {
		r := engines[turn%2].Respond(query)
		if r == nil {
			fmt.Fprintln(out, "No more responses available.")
			return
		}
		fmt.Fprintf(out, "%s: %s\n", r.Author, r.Text)
		query = r.Text
	}
}
