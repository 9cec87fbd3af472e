package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/subcommands"
)

// targetsCmd holds the flags for the 'targets' subcommand.
type targetsCmd struct {
	edits editList
}

// editList accumulates repeated -set field=value pairs.
type editList []string

func (e *editList) String() string { return strings.Join(*e, ",") }
func (e *editList) Set(v string) error {
	*e = append(*e, v)
	return nil
}

func (*targetsCmd) Name() string     { return "targets" }
func (*targetsCmd) Synopsis() string { return "show or edit the alert targets" }
func (*targetsCmd) Usage() string {
	return `cfo targets [-set <field>=<value>]...

  Without flags, print the current targets. Each -set edits one field
  (ebitda, personnel, variable, fixed, ros) and the result is written
  back to the targets file. A value that does not parse as a number is
  ignored and the previous target is kept.

Usage Examples:
# Tighten the EBITDA margin target to 20%.
$ cfo targets -set ebitda=20
`
}

func (c *targetsCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.edits, "set", "edit one target as field=value, repeatable")
}

func (c *targetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t := DecodeTargets()

	changed := false
	for _, edit := range c.edits {
		field, value, ok := strings.Cut(edit, "=")
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: invalid -set %q, want field=value\n", edit)
			return subcommands.ExitUsageError
		}
		applied, err := t.Set(field, value)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		if !applied {
			log.Printf("warning: value %q for %q is not a number, keeping the previous target", value, field)
			continue
		}
		changed = true
	}
	if changed {
		if err := t.Save(*targetsFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Alert Targets\n\n")
	fmt.Fprintf(&sb, "| Target | Value |\n")
	fmt.Fprintf(&sb, "|--|--:|\n")
	fmt.Fprintf(&sb, "| EBITDA margin (min) | %.1f%% |\n", t.EBITDAMargin)
	fmt.Fprintf(&sb, "| Personnel share of revenue (max) | %.1f%% |\n", t.PersonnelShare)
	fmt.Fprintf(&sb, "| Variable cost incidence (max) | %.1f%% |\n", t.VariableIncidence)
	fmt.Fprintf(&sb, "| Fixed cost incidence (max) | %.1f%% |\n", t.FixedIncidence)
	fmt.Fprintf(&sb, "| ROS (min) | %.1f%% |\n", t.ROS)
	printMarkdown(sb.String())
	return subcommands.ExitSuccess
}
