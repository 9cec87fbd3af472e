// Package cmd implements the CLI application to analyze a management ledger.
package cmd

import (
	"flag"
	"log"

	"github.com/google/subcommands"
	"github.com/mdac/cfodash"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "reports")
	c.Register(&alertsCmd{}, "reports")
	c.Register(&trendCmd{}, "reports")

	c.Register(&whatifCmd{}, "simulation")

	c.Register(&insightCmd{}, "advice")
	c.Register(&assistCmd{}, "advice")

	c.Register(&targetsCmd{}, "configuration")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "ledger.csv", "Path to the exported management ledger (.csv, or .json for a Sheets values response)")
var targetsFile = flag.String("targets-file", "targets.yaml", "Path to the KPI targets file")

// DecodeLedger is the central function to load the ledger of the current
// invocation. The file extension selects the import format.
func DecodeLedger() (*cfodash.Ledger, error) {
	return cfodash.ImportFile(*ledgerFile)
}

// DecodeTargets loads the targets file, falling back to the defaults.
func DecodeTargets() cfodash.Targets {
	t, err := cfodash.LoadTargets(*targetsFile)
	if err != nil {
		log.Println("warning:", err)
	}
	return t
}

// filterFlags are the year/period selection flags shared by the
// reporting subcommands.
type filterFlags struct {
	year   string
	period string
}

func (ff *filterFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&ff.year, "y", cfodash.All, "Year to report on, ALL for every year")
	f.StringVar(&ff.period, "p", cfodash.All, "Period to report on (e.g. Q1, ANNO), ALL for every period")
}

// inputFlags are the optional user-supplied figures enabling ROI and ARPU.
type inputFlags struct {
	capital string
	clients string
}

func (inf *inputFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&inf.capital, "capital", "", "Invested capital, for ROI (e.g. 150.000,00)")
	f.StringVar(&inf.clients, "clients", "", "Number of clients, for ARPU")
}

func (inf *inputFlags) Inputs() cfodash.Inputs {
	return cfodash.Inputs{
		InvestedCapital: cfodash.ParseAmount(inf.capital),
		Clients:         cfodash.ParseCount(inf.clients),
	}
}
