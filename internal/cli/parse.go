package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kitschpatrol/caprica/internal/aim"
	"github.com/kitschpatrol/caprica/internal/logstore"
)

func init() {
	cmd := &cobra.Command{
		Use:   "parse [aim-log]",
		Short: "Convert a raw AIM log to the normalized format",
		Long:  "Parse an AIM chat log into normalized id,time,author,text lines, anonymizing everyone but the owner as 'other'.",
		Args:  cobra.ExactArgs(1),
		Run:   runParse,
	}

	cmd.Flags().StringP("username", "u", aim.DefaultUsername, "Your username in the logs")
	cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")

	RootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) {
	username, _ := cmd.Flags().GetString("username")

	f, err := os.Open(args[0])
	if err != nil {
		exitErr("open log", err)
	}
	defer f.Close()

	records, err := aim.Parse(f, username)
	if err != nil {
		exitErr("parse", err)
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
