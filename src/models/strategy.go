package models

type StrategyKind string

const (
	Straddle StrategyKind = "straddle"
	Strangle StrategyKind = "strangle"
)

// Strategy pairs a call and a put leg into a straddle or strangle. A nil
// *Strategy means no qualifying pair exists, which is not an error.
type Strategy struct {
	Kind       StrategyKind `json:"kind"`
	Symbol     string       `json:"symbol"`
	Expiration string       `json:"expiration"`

	// Strike is set for straddles; CallStrike/PutStrike for strangles.
	Strike     float64 `json:"strike,omitempty"`
	CallStrike float64 `json:"call_strike,omitempty"`
	PutStrike  float64 `json:"put_strike,omitempty"`

	Call Contract `json:"call"`
	Put  Contract `json:"put"`

	TotalCost     float64 `json:"total_cost"`
	MaxLoss       float64 `json:"max_loss"`
	BreakEvenUp   float64 `json:"break_even_up"`
	BreakEvenDown float64 `json:"break_even_down"`
}
