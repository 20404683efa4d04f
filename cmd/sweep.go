package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/propfolio/propfolio"
	"github.com/propfolio/propfolio/renderer"
)

// sweepCmd holds the flags for the 'sweep' subcommand.
type sweepCmd struct {
	file  string
	paths string
	from  float64
	to    float64
	step  float64
}

func (*sweepCmd) Name() string     { return "sweep" }
func (*sweepCmd) Synopsis() string { return "re-run an analysis across a grid of purchase prices" }
func (*sweepCmd) Usage() string {
	return `rea sweep -f <record> -from <dollars> -to <dollars> [-step <dollars>]

  Re-runs the record's analysis at each purchase price of the grid,
  scaling the financing to a constant loan-to-value, and reports how the
  cash flow and cash-on-cash react.
`
}

func (c *sweepCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "-", "Property record file (JSON object). '-' reads from stdin.")
	f.StringVar(&c.paths, "paths", "", "Comma-separated field=jsonpath mappings to extract the record from an arbitrary JSON document.")
	f.Float64Var(&c.from, "from", 0, "Lowest purchase price to try, in dollars.")
	f.Float64Var(&c.to, "to", 0, "Highest purchase price to try, in dollars.")
	f.Float64Var(&c.step, "step", 5000, "Price increment between tries, in dollars.")
}

func (c *sweepCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rec, err := decodeRecord(c.file, c.paths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading record: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := propfolio.PriceSweep(rec, propfolio.M(c.from), propfolio.M(c.to), propfolio.M(c.step), propfolio.WithLogger(logger()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.Sweep(report))
	return subcommands.ExitSuccess
}
