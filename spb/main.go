package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/sonpb/advisor/cmd"
)

func main() {
	// Shell completion runs before flag parsing and exits on its own
	// when invoked by the completion machinery.
	completion().Complete("spb")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	inputs := map[string]complete.Predictor{
		"profile":    predict.Files("*.json"),
		"goals":      predict.Files("*.json"),
		"allocation": predict.Files("*.json"),
	}
	report := func() map[string]complete.Predictor {
		flags := map[string]complete.Predictor{"o": predict.Files("*.md")}
		for k, v := range inputs {
			flags[k] = v
		}
		return flags
	}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"household": {Flags: report()},
			"plan":      {Flags: report()},
			"digest":    {Flags: report()},
			"publish": {Flags: map[string]complete.Predictor{
				"profile":    inputs["profile"],
				"goals":      inputs["goals"],
				"allocation": inputs["allocation"],
				"o":          predict.Dirs("*"),
				"html":       predict.Nothing,
			}},
			"topic":  {Args: predict.Something},
			"assist": {Flags: inputs},
		},
	}
}
