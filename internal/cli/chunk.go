package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kitschpatrol/caprica/internal/chunker"
	"github.com/kitschpatrol/caprica/internal/logstore"
)

func init() {
	cmd := &cobra.Command{
		Use:   "chunk [log]",
		Short: "Merge consecutive messages from the same author",
		Long:  "Combine consecutive messages from the same person in the same conversation into single '...'-joined lines.",
		Args:  cobra.ExactArgs(1),
		Run:   runChunk,
	}

	cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")

	RootCmd.AddCommand(cmd)
}

func runChunk(cmd *cobra.Command, args []string) {
	f, err := os.Open(args[0])
	if err != nil {
		exitErr("open log", err)
	}
	defer f.Close()

	arc, err := logstore.Read(f, "input")
	if err != nil {
		exitErr("chunk", err)
	}

	out, closeOut, err := outputFile(cmd)
	if err != nil {
		exitErr("open output", err)
	}
	defer closeOut()

	for _, r := range chunker.Merge(arc.Records) {
		fmt.Fprintln(out, logstore.FormatLine(r))
	}
}
