package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type CalculationKind string

const (
	KindLoan        CalculationKind = "loan"
	KindSchedule    CalculationKind = "schedule"
	KindInvestment  CalculationKind = "investment"
	KindFrequencies CalculationKind = "frequencies"
)

// CalculationRecord is one computed calculation kept in the history.
type CalculationRecord struct {
	ID        uuid.UUID       `json:"id"`
	Kind      CalculationKind `json:"kind"`
	CreatedAt time.Time       `json:"created_at"`
	Input     json.RawMessage `json:"input"`
	Result    json.RawMessage `json:"result"`
}
