package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LoanForm holds loan fields exactly as a user typed them.
type LoanForm struct {
	Principal         string
	AnnualRatePercent string
	TermYears         string
}

// Input converts the form into a LoanInput. Empty or malformed fields become
// zero, which the calculator reports as NeedsInput.
func (f LoanForm) Input() LoanInput {
	return LoanInput{
		Principal:         parseAmount(f.Principal),
		AnnualRatePercent: parseAmount(f.AnnualRatePercent),
		TermYears:         parseAmount(f.TermYears),
	}
}

// InvestmentForm holds investment fields exactly as a user typed them.
type InvestmentForm struct {
	Principal           string
	MonthlyContribution string
	AnnualRatePercent   string
	TermYears           string
	Compounding         bool
	Frequency           string
}

// Input converts the form into an InvestmentInput. Only an unrecognised
// frequency name is an error.
func (f InvestmentForm) Input() (InvestmentInput, error) {
	freq, err := ParseFrequency(f.Frequency)
	if err != nil {
		return InvestmentInput{}, err
	}
	return InvestmentInput{
		Principal:           parseAmount(f.Principal),
		MonthlyContribution: parseAmount(f.MonthlyContribution),
		AnnualRatePercent:   parseAmount(f.AnnualRatePercent),
		TermYears:           parseAmount(f.TermYears),
		Compounding:         f.Compounding,
		Frequency:           freq,
	}, nil
}

func parseAmount(s string) float64 {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return d.InexactFloat64()
}
