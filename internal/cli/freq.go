package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kitschpatrol/caprica/internal/freq"
	"github.com/kitschpatrol/caprica/internal/logstore"
)

func init() {
	cmd := &cobra.Command{
		Use:   "freq [log]",
		Short: "Report word or bigram frequencies in a chat log",
		Args:  cobra.ExactArgs(1),
		Run:   runFreq,
	}

	cmd.Flags().IntP("min-freq", "m", 2, "Minimum frequency to include")
	cmd.Flags().StringP("format", "f", "bigrams", "Output format: bigrams or words")
	cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")

	RootCmd.AddCommand(cmd)
}

func runFreq(cmd *cobra.Command, args []string) {
	minFreq, _ := cmd.Flags().GetInt("min-freq")
	format, _ := cmd.Flags().GetString("format")

	f, err := os.Open(args[0])
	if err != nil {
		exitErr("open log", err)
	}
	defer f.Close()

	arc, err := logstore.Read(f, "input")
	if err != nil {
		exitErr("freq", err)
	}

	var counts []freq.Count
	switch format {
	case "words":
		counts = freq.Words(arc.Records, minFreq)
	case "bigrams":
		counts = freq.Bigrams(arc.Records, minFreq)
	default:
		exitErr("freq", fmt.Errorf("unknown format %q (want words or bigrams)", format))
	}

	out, closeOut, err := outputFile(cmd)
	if err != nil {
		exitErr("open output", err)
	}
	defer closeOut()

	for _, c := range counts {
		fmt.Fprintf(out, "%s,%d\n", c.Item, c.N)
	}
}
