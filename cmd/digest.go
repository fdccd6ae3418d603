package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sonpb/advisor/renderer"
)

// digestCmd holds the flags for the 'digest' subcommand.
type digestCmd struct {
	inputFlags
	outputFile string
}

func (*digestCmd) Name() string { return "digest" }

func (*digestCmd) Synopsis() string { return "generate the condensed advisory digest" }
func (*digestCmd) Usage() string {
	return `spb digest -profile <file> -goals <file> [-allocation <file>] [-o <file>]

  Condense the client's situation into a one-page digest: headline
  balance figures, the goal list with monthly investments, and the
  main assets of the proposed allocation.
`
}

func (c *digestCmd) SetFlags(f *flag.FlagSet) {
	c.setProfileFlag(f)
	c.setGoalsFlag(f)
	c.setAllocationFlag(f)
	f.StringVar(&c.outputFile, "o", "", "Write the report to this file instead of the terminal")
}

func (c *digestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	profile, err := c.loadProfile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	goals, err := c.loadGoals()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	alloc, err := c.loadAllocation()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	md := renderer.RenderDigest(renderer.NewDigest(profile, goals, alloc))
	return emit(c.outputFile, md)
}
