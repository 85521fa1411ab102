package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ledgers"
	"github.com/google/subcommands"
)

// tradesCmd holds the flags for the 'trades' subcommand.
type tradesCmd struct {
	ledgerFile string
	outFile    string
}

func (*tradesCmd) Name() string     { return "trades" }
func (*tradesCmd) Synopsis() string { return "export per trading pair totals as CSV" }
func (*tradesCmd) Usage() string {
	return `klg trades [-l <ledgers.csv>] [-o <trades.csv>]

  Reads a ledger export, pairs the buy and sell legs of each trade by
  reference id, and writes one CSV row of totals per trading pair.
  Incomplete trades are skipped with a warning on stderr.
`
}

func (c *tradesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "l", "ledgers.csv", "Ledger export to aggregate (CSV).")
	f.StringVar(&c.outFile, "o", "trades.csv", "File to write the trade totals to (CSV).")
}

func (c *tradesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if report.Unprocessed > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d unprocessed entries\n", report.Unprocessed)
	}
	if report.ReplacedLegs > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d trade legs replaced by later rows with the same refid\n", report.ReplacedLegs)
	}
	if report.IncompleteTrades > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d incomplete trades skipped\n", report.IncompleteTrades)
	}

	out, err := os.Create(c.outFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating trade totals file %q: %v\n", c.outFile, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := ledgers.EncodeTradeTotals(out, report.TradeTotals); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing trade totals file %q: %v\n", c.outFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully wrote %d trade totals to %s\n", report.TradeTotals.Len(), c.outFile)
	return subcommands.ExitSuccess
}
