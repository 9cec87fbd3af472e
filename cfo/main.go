// Command cfo analyzes an exported management ledger: KPI reports,
// alerts against targets, trends and what-if simulations.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/mdac/cfodash/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: when invoked by the shell's completion hook this
	// prints the candidates and exits, otherwise it is a no-op.
	completion().Complete("cfo")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")

	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	scope := map[string]complete.Predictor{
		"y": predict.Something,
		"p": predict.Something,
	}
	inputs := map[string]complete.Predictor{
		"capital": predict.Something,
		"clients": predict.Something,
	}
	merge := func(ms ...map[string]complete.Predictor) map[string]complete.Predictor {
		out := map[string]complete.Predictor{}
		for _, m := range ms {
			for k, v := range m {
				out[k] = v
			}
		}
		return out
	}
	deltas := map[string]complete.Predictor{
		"revenue":   predict.Something,
		"variable":  predict.Something,
		"fixed":     predict.Something,
		"personnel": predict.Something,
	}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-file":  predict.Files("*.csv"),
			"targets-file": predict.Files("*.yaml"),
		},
		Sub: map[string]*complete.Command{
			"report":  {Flags: merge(scope, inputs)},
			"alerts":  {Flags: merge(scope, inputs)},
			"trend":   {Flags: scope},
			"whatif":  {Flags: merge(scope, inputs, deltas)},
			"insight": {Flags: merge(scope, inputs)},
			"assist":  {},
			"targets": {Flags: map[string]complete.Predictor{"set": predict.Something}},
			"topic":   {Args: predict.Set{"readme", "format", "targets", "whatif"}},
		},
	}
}
