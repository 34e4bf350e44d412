package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dgellow/csv2emails/internal/filter"
	"github.com/dgellow/csv2emails/internal/ioutil"
	"github.com/dgellow/csv2emails/internal/log"
)

var BuildVersion = "dev"

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "csv2emails [FILE...]",
		Short: "Extract lowercase email addresses from firstname;lastname;email lines",
		Long: `csv2emails reads lines of the form firstname;lastname;email from the
named files, in order, or from standard input when no file is given
("-" also names standard input). It prints the lowercased email of
every line whose email contains '@', one per line. Lines without '@',
such as a header row, are skipped. A line without exactly three
fields stops the run with a non-zero exit status.

File names starting with "-" must follow "--":
  csv2emails -- -contacts.csv`,
		Version:       BuildVersion,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := ioutil.NewInputs(args, cmd.InOrStdin())
			stats, err := filter.Run(inputs, cmd.OutOrStdout())

			log.LogDebugWithFields("main", "Finished reading input", map[string]any{
				"lines":   stats.Lines,
				"emitted": stats.Emitted,
				"skipped": stats.Skipped,
			})
			return err
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.LogError("csv2emails: %v", err)
		os.Exit(1)
	}
}
