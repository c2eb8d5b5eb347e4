package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kitschpatrol/caprica/internal/logstore"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a persona's history from the corpus database",
		Long:  "Print a persona's history from the corpus database (--db) in the normalized line format.",
		Run:   runExport,
	}

	cmd.Flags().StringP("persona", "p", "", "Persona to export (required)")
	cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	cmd.MarkFlagRequired("persona")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	persona, _ := cmd.Flags().GetString("persona")

	if dbPath == "" {
		exitErr("export", fmt.Errorf("--db is required"))
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	records, err := s.Archive(cmd.Context(), persona)
	if err != nil {
		exitErr("export", err)
	}

	out, closeOut, err := outputFile(cmd)
	if err != nil {
		exitErr("open output", err)
	}
	defer closeOut()

	for _, r := range records {
		fmt.Fprintln(out, logstore.FormatLine(r))
	}
}
