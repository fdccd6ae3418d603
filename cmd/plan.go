package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sonpb/advisor/renderer"
)

// planCmd holds the flags for the 'plan' subcommand.
type planCmd struct {
	inputFlags
	outputFile string
}

func (*planCmd) Name() string { return "plan" }

func (*planCmd) Synopsis() string { return "generate the goals and asset allocation plan" }
func (*planCmd) Usage() string {
	return `spb plan -goals <file> [-allocation <file>] [-o <file>]

  Lay out the client's financial goals, the proposed asset allocation
  with expected returns, and the monthly investment plan funding them.
`
}

func (c *planCmd) SetFlags(f *flag.FlagSet) {
	c.setGoalsFlag(f)
	c.setAllocationFlag(f)
	f.StringVar(&c.outputFile, "o", "", "Write the report to this file instead of the terminal")
}

func (c *planCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	md := renderer.RenderPlan(renderer.NewPlan(goals, alloc))
	return emit(c.outputFile, md)
}
