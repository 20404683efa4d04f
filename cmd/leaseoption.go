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

// leaseOptionCmd holds the flags for the 'leaseoption' subcommand.
type leaseOptionCmd struct {
	strike     float64
	fee        float64
	term       int
	rent       float64
	credit     float64
	creditRate float64
}

func (*leaseOptionCmd) Name() string     { return "leaseoption" }
func (*leaseOptionCmd) Synopsis() string { return "compute the economics of a lease option" }
func (*leaseOptionCmd) Usage() string {
	return `rea leaseoption -strike <dollars> -term <months> [-fee <dollars>] [-credit <dollars> | -rent <dollars> -credit-rate <percent>]

  Accumulates the rent credits over the option term and nets them, along
  with the option fee, out of the strike price.
`
}

func (c *leaseOptionCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.strike, "strike", 0, "Strike price in dollars.")
	f.Float64Var(&c.fee, "fee", 0, "Up-front option fee in dollars.")
	f.IntVar(&c.term, "term", 0, "Option term in months.")
	f.Float64Var(&c.rent, "rent", 0, "Monthly rent in dollars, used with -credit-rate.")
	f.Float64Var(&c.credit, "credit", 0, "Fixed rent credit per month in dollars. Takes precedence over -credit-rate.")
	f.Float64Var(&c.creditRate, "credit-rate", 0, "Rent credit as a percentage of the monthly rent.")
}

func (c *leaseOptionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.strike <= 0 || c.term <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -strike and -term are required")
		return subcommands.ExitUsageError
	}
	calc := propfolio.CalculateLeaseOption(propfolio.LeaseOptionInput{
		StrikePrice:       propfolio.M(c.strike),
		OptionFee:         propfolio.M(c.fee),
		OptionTermMonths:  c.term,
		MonthlyRent:       propfolio.M(c.rent),
		MonthlyRentCredit: propfolio.M(c.credit),
		RentCreditRate:    propfolio.Percent(c.creditRate),
	})
	printMarkdown(renderer.LeaseOptionTerms(&calc))
	return subcommands.ExitSuccess
}
