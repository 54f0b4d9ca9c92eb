package service

const (
	MaxLoanAmount          = 1_000_000_000.0 // 1 billion
	MaxInvestmentAmount    = 1_000_000_000.0
	MaxInterestRate        = 1000.0 // 1000% a year
	MaxLoanTermYears       = 50
	MaxInvestmentTermYears = 100 // 1200 monthly contributions

	// Bounds for term comparison
	MaxTermRangeYears = 30 // widest range of terms evaluated at once

	DefaultHistoryLimit = 50
)
