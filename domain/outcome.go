package domain

import "fmt"

// Outcome tells whether a calculation produced a result or is still waiting
// for usable input. A NeedsInput outcome is not a failure.
type Outcome int

const (
	NeedsInput Outcome = iota
	Computed
)

func (o Outcome) String() string {
	switch o {
	case Computed:
		return "ok"
	case NeedsInput:
		return "needs_input"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}
