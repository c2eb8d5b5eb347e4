package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kitschpatrol/caprica/internal/aim"
	"github.com/kitschpatrol/caprica/internal/chunker"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import [aim-log]",
		Short: "Ingest a raw AIM log into the corpus database",
		Long:  "Parse and chunk an AIM log and append the result to a persona's history in the corpus database (--db).",
		Args:  cobra.ExactArgs(1),
		Run:   runImport,
	}

	cmd.Flags().StringP("persona", "p", "", "Persona the log belongs to (required)")
	cmd.Flags().StringP("username", "u", aim.DefaultUsername, "Your username in the logs")
	cmd.MarkFlagRequired("persona")

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	persona, _ := cmd.Flags().GetString("persona")
	username, _ := cmd.Flags().GetString("username")

	if dbPath == "" {
		exitErr("import", fmt.Errorf("--db is required"))
	}

	f, err := os.Open(args[0])
	if err != nil {
		exitErr("open log", err)
	}
	defer f.Close()

	records, err := aim.Parse(f, username)
	if err != nil {
		exitErr("parse", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	n, err := s.Import(cmd.Context(), persona, chunker.Merge(records))
	if err != nil {
		exitErr("import", err)
	}

	fmt.Printf(`{"ok":true,"persona":%q,"imported":%d}`+"\n", persona, n)
}
