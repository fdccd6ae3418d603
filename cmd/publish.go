package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/subcommands"
	"github.com/sonpb/advisor/renderer"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// publishCmd generates the full advisory pack in one run.
type publishCmd struct {
	inputFlags
	outputDir string
	html      bool
}

func (*publishCmd) Name() string { return "publish" }

func (*publishCmd) Synopsis() string { return "generate the full advisory pack to a directory" }

func (*publishCmd) Usage() string {
	return `spb publish -profile <file> -goals <file> [-allocation <file>] [-o <dir>] [-html]

  Generates the three advisory documents (household analysis, goals plan,
  digest) and saves them to the output directory. With -html each document
  is also converted to a standalone HTML page.
`
}

func (c *publishCmd) SetFlags(f *flag.FlagSet) {
	c.setProfileFlag(f)
	c.setGoalsFlag(f)
	c.setAllocationFlag(f)
	f.StringVar(&c.outputDir, "o", "reports", "Root directory for the generated documents")
	f.BoolVar(&c.html, "html", false, "Also convert each document to HTML")
}

func (c *publishCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := os.MkdirAll(c.outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create output directory: %v\n", err)
		return subcommands.ExitFailure
	}

	documents := []struct {
		File    string
		Content string
	}{
		{"household_analysis.md", renderer.RenderHousehold(renderer.NewHousehold(profile))},
		{"goals_plan.md", renderer.RenderPlan(renderer.NewPlan(goals, alloc))},
		{"advisory_digest.md", renderer.RenderDigest(renderer.NewDigest(profile, goals, alloc))},
	}

	for _, doc := range documents {
		path := filepath.Join(c.outputDir, doc.File)
		if err := os.WriteFile(path, []byte(doc.Content), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", path, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "✅ Published %s\n", path)

		if !c.html {
			continue
		}
		htmlPath := strings.TrimSuffix(path, ".md") + ".html"
		page, err := toHTML(doc.Content)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to convert %s: %v\n", path, err)
			return subcommands.ExitFailure
		}
		if err := os.WriteFile(htmlPath, page, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", htmlPath, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "✅ Published %s\n", htmlPath)
	}

	return subcommands.ExitSuccess
}

// toHTML converts a markdown document into a standalone HTML page.
func toHTML(md string) ([]byte, error) {
	converter := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html>\n<body>\n")
	if err := converter.Convert([]byte(md), &buf); err != nil {
		return nil, err
	}
	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes(), nil
}
