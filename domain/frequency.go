package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownFrequency = errors.New("unknown compounding frequency")

// Frequency is how often accrued interest is reinvested. The zero value is
// treated as Monthly.
type Frequency int

const (
	FrequencyUnset Frequency = iota
	Daily
	Weekly
	Monthly
	Quarterly
	Yearly
)

// Frequencies lists every compounding frequency from the least to the most
// frequent.
func Frequencies() []Frequency {
	return []Frequency{Yearly, Quarterly, Monthly, Weekly, Daily}
}

// PeriodsPerYear returns the number of compounding periods in one year.
func (f Frequency) PeriodsPerYear() float64 {
	switch f {
	case Daily:
		return 365
	case Weekly:
		return 52
	case Quarterly:
		return 4
	case Yearly:
		return 1
	default:
		return 12
	}
}

func (f Frequency) String() string {
	switch f {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	default:
		return "monthly"
	}
}

// ParseFrequency maps a frequency name to its Frequency. An empty name is
// monthly.
func ParseFrequency(s string) (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "monthly":
		return Monthly, nil
	case "daily":
		return Daily, nil
	case "weekly":
		return Weekly, nil
	case "quarterly":
		return Quarterly, nil
	case "yearly", "annually":
		return Yearly, nil
	}
	return FrequencyUnset, fmt.Errorf("%w: %q", ErrUnknownFrequency, s)
}

func (f Frequency) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Frequency) UnmarshalText(text []byte) error {
	parsed, err := ParseFrequency(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
