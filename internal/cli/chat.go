package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kitschpatrol/caprica/internal/logstore"
	"github.com/kitschpatrol/caprica/internal/retrieval"
)

func init() {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk with a persona interactively",
		Long:  "Read queries from stdin and answer each one from the chosen persona's archive. Type 'quit' to exit.",
		Run:   runChat,
	}

	cmd.Flags().StringP("persona", "p", logstore.SecondPersona, "Which persona to talk with")

	RootCmd.AddCommand(cmd)
}

func runChat(cmd *cobra.Command, args []string) {
	persona, _ := cmd.Flags().GetString("persona")
	if persona != logstore.FirstPersona && persona != logstore.SecondPersona {
		exitErr("chat", fmt.Errorf("unknown persona %q (want %s or %s)", persona, logstore.FirstPersona, logstore.SecondPersona))
	}

	lex, err := openLexicon()
	if err != nil {
		exitErr("open lexicon", err)
	}

	first, second, err := loadArchives(cmd.Context())
	if err != nil {
		exitErr("load archives", err)
	}

	archive := second
	if persona == logstore.FirstPersona {
		archive = first
	}
	if len(archive.Records) == 0 {
		exitErr("chat", fmt.Errorf("archive for %s is empty", persona))
	}

	engine := retrieval.New(lex, archive)

	fmt.Printf("Caprica Interactive Mode - talking with %s\n", engine.Persona())
	fmt.Println("Type 'quit' to exit")
	fmt.Println()
	if err := retrieval.Interactive(cmd.Context(), engine, os.Stdin, os.Stdout); err != nil {
		exitErr("chat", err)
	}
}
