package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"fincalc/domain"
	"fincalc/service"
)

type investFlags struct {
	principal string
	monthly   string
	rate      string
	term      string
	frequency string
	currency  string
}

func (v *investFlags) set(f *flag.FlagSet) {
	f.StringVar(&v.principal, "principal", "", "initial capital (empty means 0)")
	f.StringVar(&v.monthly, "monthly", "", "monthly contribution (empty means 0)")
	f.StringVar(&v.rate, "rate", "", "expected annual return, in percent")
	f.StringVar(&v.term, "term", "", "term in years")
	f.StringVar(&v.currency, "currency", "USD", "ISO 4217 currency used for display")
}

func (v *investFlags) input(compounding bool) (domain.InvestmentInput, string, error) {
	if err := validCurrency(v.currency); err != nil {
		return domain.InvestmentInput{}, "", err
	}
	in, err := domain.InvestmentForm{
		Principal:           v.principal,
		MonthlyContribution: v.monthly,
		AnnualRatePercent:   v.rate,
		TermYears:           v.term,
		Compounding:         compounding,
		Frequency:           v.frequency,
	}.Input()
	return in, strings.ToUpper(v.currency), err
}

type investCmd struct {
	investFlags
	simple bool
}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "project the growth of an investment" }
func (*investCmd) Usage() string {
	return `fincalc invest [-principal <amount>] [-monthly <amount>] -rate <percent> -term <years> [-frequency monthly] [-simple]

  Projects the final amount of a lump sum plus monthly contributions.
  Interest is reinvested at the given frequency (daily, weekly, monthly,
  quarterly, yearly) unless -simple is set.
`
}

func (c *investCmd) SetFlags(f *flag.FlagSet) {
	c.set(f)
	f.StringVar(&c.frequency, "frequency", "monthly", "compounding frequency")
	f.BoolVar(&c.simple, "simple", false, "use simple interest on the principal only")
}

func (c *investCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, cur, err := c.input(!c.simple)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	res, outcome, err := service.NewInvestmentService(nil, nil, newLogger()).Calculate(ctx, in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if outcome != domain.Computed {
		fmt.Fprintln(os.Stderr, "Not computed: rate and term must be positive numbers.")
		return subcommands.ExitUsageError
	}

	printMarkdown(investmentMarkdown(in, res, cur))
	return subcommands.ExitSuccess
}

type frequenciesCmd struct {
	investFlags
}

func (*frequenciesCmd) Name() string { return "frequencies" }
func (*frequenciesCmd) Synopsis() string {
	return "compare an investment across compounding frequencies"
}
func (*frequenciesCmd) Usage() string {
	return `fincalc frequencies [-principal <amount>] [-monthly <amount>] -rate <percent> -term <years>

  Projects the investment compounded yearly, quarterly, monthly, weekly and daily.
`
}

func (c *frequenciesCmd) SetFlags(f *flag.FlagSet) { c.set(f) }

func (c *frequenciesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, cur, err := c.input(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	projections, outcome, err := service.NewInvestmentService(nil, nil, newLogger()).CompareFrequencies(ctx, in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if outcome != domain.Computed {
		fmt.Fprintln(os.Stderr, "Not computed: rate and term must be positive numbers.")
		return subcommands.ExitUsageError
	}

	printMarkdown(frequenciesMarkdown(projections, cur))
	return subcommands.ExitSuccess
}
