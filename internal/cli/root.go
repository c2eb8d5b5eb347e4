// Package cli implements the caprica CLI commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kitschpatrol/caprica/internal/lexicon"
	"github.com/kitschpatrol/caprica/internal/logstore"
	"github.com/kitschpatrol/caprica/internal/store"
)

var (
	dataDir    string
	dbPath     string
	wordnetDir string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "caprica",
	Short: "A digital doppelganger chatbot",
	Long: "Caprica replays your instant-message history: it matches a query against\n" +
		"archived chat lines by synonym overlap and answers with your own old words.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "data", "Directory containing normalized chat logs")
	RootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Load archives from a corpus database instead of the data directory")
	RootCmd.PersistentFlags().StringVar(&wordnetDir, "wordnet", "", "WordNet database directory (default: $CAPRICA_WORDNET, $WNHOME/dict, /usr/share/wordnet)")
}

func wordnetPath() string {
	if wordnetDir != "" {
		return wordnetDir
	}
	if env := os.Getenv("CAPRICA_WORDNET"); env != "" {
		return env
	}
	if home := os.Getenv("WNHOME"); home != "" {
		return filepath.Join(home, "dict")
	}
	return "/usr/share/wordnet"
}

func openLexicon() (*lexicon.WordNet, error) {
	return lexicon.Open(wordnetPath())
}

func openStore() (*store.CorpusStore, error) {
	return store.NewCorpusStore(dbPath)
}

// loadArchives loads both persona archives from the corpus database when
// --db is set, from the data directory otherwise. Both being empty is
// fatal either way.
func loadArchives(ctx context.Context) (first, second *logstore.Archive, err error) {
	if dbPath == "" {
		return logstore.LoadDir(dataDir)
	}

	s, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	defer s.Close()

	firstRecs, err := s.Archive(ctx, logstore.FirstPersona)
	if err != nil {
		return nil, nil, err
	}
	secondRecs, err := s.Archive(ctx, logstore.SecondPersona)
	if err != nil {
		return nil, nil, err
	}
	if len(firstRecs) == 0 && len(secondRecs) == 0 {
		return nil, nil, fmt.Errorf("no chat logs in %s for %s or %s", dbPath, logstore.FirstPersona, logstore.SecondPersona)
	}
	return &logstore.Archive{Name: logstore.FirstPersona, Records: firstRecs},
		&logstore.Archive{Name: logstore.SecondPersona, Records: secondRecs}, nil
}

// outputFile returns where a report command should write: stdout by
// default, or the file named by --output.
func outputFile(cmd *cobra.Command) (*os.File, func(), error) {
	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
