package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kitschpatrol/caprica/internal/retrieval"
)

func init() {
	cmd := &cobra.Command{
		Use:   "auto",
		Short: "Let the two personas talk to each other",
		Long:  "Alternate between the two persona archives, feeding each reply in as the next query, until one side runs out of responses.",
		Run:   runAuto,
	}

	cmd.Flags().StringP("query", "q", "pics", "Initial query")

	RootCmd.AddCommand(cmd)
}

func runAuto(cmd *cobra.Command, args []string) {
	query, _ := cmd.Flags().GetString("query")

	lex, err := openLexicon()
	if err != nil {
		exitErr("open lexicon", err)
	}

	first, second, err := loadArchives(cmd.Context())
	if err != nil {
		exitErr("load archives", err)
	}
	if len(first.Records) == 0 || len(second.Records) == 0 {
		exitErr("auto", fmt.Errorf("automatic mode needs both archives (%s: %d lines, %s: %d lines)",
			first.Name, len(first.Records), second.Name, len(second.Records)))
	}

	retrieval.Auto(retrieval.New(lex, first), retrieval.New(lex, second), query, os.Stdout)
}
