package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ledgers"
	"github.com/etnz/ledgers/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	ledgerFile string
	pretty     bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "aggregate a ledger export and print per-asset totals" }
func (*reportCmd) Usage() string {
	return `klg report [-l <ledgers.csv>] [-pretty]

  Reads a ledger export, classifies every row, and prints totals per entry
  kind and asset, followed by totals per trading pair. Rows that fail
  classification are counted in a single warning and excluded from every
  total.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "l", "ledgers.csv", "Ledger export to aggregate (CSV).")
	f.BoolVar(&c.pretty, "pretty", false, "Also render fiat totals in their currency display format.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	file, err := os.Open(c.ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger export %q: %v\n", c.ledgerFile, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	report, err := ledgers.Process(ledgers.DecodeRecords(file))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger export %q: %v\n", c.ledgerFile, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Report(report, renderer.ReportOptions{Pretty: c.pretty}))
	return subcommands.ExitSuccess
}
