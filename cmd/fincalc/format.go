package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/glamour"
	"github.com/shopspring/decimal"

	"fincalc/domain"
)

var plain = flag.Bool("plain", false, "print raw markdown instead of rendering it")

// formatMoney formats amount in the currency's own notation, rounded to its
// minor unit.
func formatMoney(amount float64, currency string) string {
	// money.New never returns a nil currency, even for unknown codes
	cur := money.New(0, currency).Currency()
	minor := decimal.NewFromFloat(amount).Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

func validCurrency(code string) error {
	if money.GetCurrency(strings.ToUpper(code)) == nil {
		return fmt.Errorf("unknown currency %q", code)
	}
	return nil
}

func loanMarkdown(in domain.LoanInput, res domain.LoanResult, cur string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Loan\n\n")
	fmt.Fprintf(&b, "%s at %.2f%% over %g years\n\n", formatMoney(in.Principal, cur), in.AnnualRatePercent, in.TermYears)
	fmt.Fprintf(&b, "| | |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Monthly payment | %s |\n", formatMoney(res.MonthlyPayment, cur))
	fmt.Fprintf(&b, "| Total payment | %s |\n", formatMoney(res.TotalPayment, cur))
	fmt.Fprintf(&b, "| Total interest | %s |\n", formatMoney(res.TotalInterest, cur))
	return b.String()
}

func scheduleMarkdown(entries []domain.ScheduleEntry, cur string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Amortization schedule\n\n")
	fmt.Fprintf(&b, "| Month | Payment | Principal | Interest | Balance |\n|---:|---:|---:|---:|---:|\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n", e.Period,
			formatMoney(e.Payment.InexactFloat64(), cur),
			formatMoney(e.Principal.InexactFloat64(), cur),
			formatMoney(e.Interest.InexactFloat64(), cur),
			formatMoney(e.RemainingBalance.InexactFloat64(), cur))
	}
	return b.String()
}

func investmentMarkdown(in domain.InvestmentInput, res domain.InvestmentResult, cur string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Investment\n\n")
	mode := "simple interest"
	if in.Compounding {
		mode = "compounded " + in.Frequency.String()
	}
	fmt.Fprintf(&b, "%.2f%% a year over %g years, %s\n\n", in.AnnualRatePercent, in.TermYears, mode)
	fmt.Fprintf(&b, "| | |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Final amount | %s |\n", formatMoney(res.FinalAmount, cur))
	fmt.Fprintf(&b, "| Contributions | %s |\n", formatMoney(res.TotalContributions, cur))
	fmt.Fprintf(&b, "| Earnings | %s |\n", formatMoney(res.TotalEarnings, cur))
	fmt.Fprintf(&b, "| Return | %.2f%% |\n", res.ReturnOnInvestmentPercent)
	return b.String()
}

func frequenciesMarkdown(projections []domain.FrequencyProjection, cur string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Compounding frequencies\n\n")
	fmt.Fprintf(&b, "| Frequency | Final amount | Earnings | Return |\n|---|---:|---:|---:|\n")
	for _, p := range projections {
		fmt.Fprintf(&b, "| %s | %s | %s | %.2f%% |\n", p.Frequency,
			formatMoney(p.Result.FinalAmount, cur),
			formatMoney(p.Result.TotalEarnings, cur),
			p.Result.ReturnOnInvestmentPercent)
	}
	return b.String()
}

func printMarkdown(md string) {
	if *plain {
		fmt.Print(md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: cannot render output: %v\n", err)
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
