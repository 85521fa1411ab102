// Package cmd implements the CLI application to aggregate ledger exports.
package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Commands lists the subcommands registered by the klg binary.
var Commands = []subcommands.Command{
	&reportCmd{},
	&tradesCmd{},
	&topicCmd{},
}

// printMarkdown renders markdown to the terminal, or prints it raw when
// the terminal renderer is unavailable.
func printMarkdown(markdown string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err == nil {
		if out, rerr := r.Render(markdown); rerr == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(markdown)
}
