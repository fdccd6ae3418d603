package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sonpb/advisor/renderer"
)

// householdCmd holds the flags for the 'household' subcommand.
type householdCmd struct {
	inputFlags
	outputFile string
}

func (*householdCmd) Name() string { return "household" }

func (*householdCmd) Synopsis() string { return "generate the household analysis report" }
func (*householdCmd) Usage() string {
	return `spb household -profile <file> [-o <file>]

  Analyse the client's household finances: balance sheet, cash-flow
  averages, financial-health metrics with their ratings, the recent
  spending pattern and the overall verdict.
`
}

func (c *householdCmd) SetFlags(f *flag.FlagSet) {
	c.setProfileFlag(f)
	f.StringVar(&c.outputFile, "o", "", "Write the report to this file instead of the terminal")
}

func (c *householdCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	profile, err := c.loadProfile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	md := renderer.RenderHousehold(renderer.NewHousehold(profile))
	return emit(c.outputFile, md)
}
