// Package cmd implements the CLI application generating advisory reports.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/sonpb/advisor"
)

// Commands are all spb subcommands.
// A main package registers them and executes the user-selected one.
var Commands = []subcommands.Command{
	&householdCmd{},
	&planCmd{},
	&digestCmd{},
	&publishCmd{},
	&topicCmd{},
	&assistCmd{},
}

// inputFlags holds the document paths shared by the report subcommands.
// Inputs are always explicit, there is no ambient fallback to sample data.
type inputFlags struct {
	profileFile    string
	goalsFile      string
	allocationFile string
}

func (c *inputFlags) setProfileFlag(f *flag.FlagSet) {
	f.StringVar(&c.profileFile, "profile", "", "Path to the client profile JSON document")
}

func (c *inputFlags) setGoalsFlag(f *flag.FlagSet) {
	f.StringVar(&c.goalsFile, "goals", "", "Path to the goal list JSON document")
}

func (c *inputFlags) setAllocationFlag(f *flag.FlagSet) {
	f.StringVar(&c.allocationFile, "allocation", "", "Path to the allocation JSON document")
}

// loadProfile loads the profile document, required.
func (c *inputFlags) loadProfile() (*advisor.ClientProfile, error) {
	if c.profileFile == "" {
		return nil, fmt.Errorf("-profile is required")
	}
	return advisor.LoadProfile(c.profileFile)
}

// loadGoals loads the goal list document, required.
func (c *inputFlags) loadGoals() ([]advisor.Goal, error) {
	if c.goalsFile == "" {
		return nil, fmt.Errorf("-goals is required")
	}
	return advisor.LoadGoals(c.goalsFile)
}

// loadAllocation loads the allocation document. The allocation is an
// optional input: no path means an empty allocation, not an error.
func (c *inputFlags) loadAllocation() (advisor.Allocation, error) {
	if c.allocationFile == "" {
		return advisor.Allocation{}, nil
	}
	return advisor.LoadAllocation(c.allocationFile)
}

// writeDocument writes a markdown document, creating parent directories.
func writeDocument(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create output directory %q: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	return nil
}

// emit prints the document to the terminal, or writes it to outputFile
// when one is given.
func emit(outputFile, content string) subcommands.ExitStatus {
	if outputFile == "" {
		printMarkdown(content)
		return subcommands.ExitSuccess
	}
	if err := writeDocument(outputFile, content); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("✅ Report written to %s\n", outputFile)
	return subcommands.ExitSuccess
}
