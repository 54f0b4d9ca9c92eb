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

// loanFlags are shared by the loan and schedule commands.
type loanFlags struct {
	principal string
	rate      string
	term      string
	currency  string
}

func (l *loanFlags) set(f *flag.FlagSet) {
	f.StringVar(&l.principal, "principal", "", "loan amount")
	f.StringVar(&l.rate, "rate", "", "nominal annual interest rate, in percent")
	f.StringVar(&l.term, "term", "", "term in years")
	f.StringVar(&l.currency, "currency", "USD", "ISO 4217 currency used for display")
}

func (l *loanFlags) input() (domain.LoanInput, string, error) {
	if err := validCurrency(l.currency); err != nil {
		return domain.LoanInput{}, "", err
	}
	form := domain.LoanForm{Principal: l.principal, AnnualRatePercent: l.rate, TermYears: l.term}
	return form.Input(), strings.ToUpper(l.currency), nil
}

type loanCmd struct {
	loanFlags
}

func (*loanCmd) Name() string     { return "loan" }
func (*loanCmd) Synopsis() string { return "compute the monthly payment of a fixed-rate loan" }
func (*loanCmd) Usage() string {
	return `fincalc loan -principal <amount> -rate <percent> -term <years> [-currency USD]

  Prints the monthly payment, total payment and total interest.
`
}

func (c *loanCmd) SetFlags(f *flag.FlagSet) { c.set(f) }

func (c *loanCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, cur, err := c.input()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	res, outcome, err := service.NewLoanService(nil, nil, newLogger()).CalculateLoan(ctx, in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if outcome != domain.Computed {
		fmt.Fprintln(os.Stderr, "Not computed: principal, rate and term must be positive numbers.")
		return subcommands.ExitUsageError
	}

	printMarkdown(loanMarkdown(in, res, cur))
	return subcommands.ExitSuccess
}

type scheduleCmd struct {
	loanFlags
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "print the month-by-month amortization of a loan" }
func (*scheduleCmd) Usage() string {
	return `fincalc schedule -principal <amount> -rate <percent> -term <years> [-currency USD]

  Prints one row per month with the interest, principal and remaining balance.
  The term must cover a whole number of months.
`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) { c.set(f) }

func (c *scheduleCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, cur, err := c.input()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	entries, outcome, err := service.NewLoanService(nil, nil, newLogger()).Schedule(ctx, in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if outcome != domain.Computed {
		fmt.Fprintln(os.Stderr, "Not computed: principal, rate and a term of whole months are required.")
		return subcommands.ExitUsageError
	}

	printMarkdown(scheduleMarkdown(entries, cur))
	return subcommands.ExitSuccess
}
