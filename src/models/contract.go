package models

import (
	"time"
)

const ExpirationLayout = "2006-01-02"

// Contract is a snapshot of a single option row, stamped with the
// underlying's last close at fetch time. Every contract returned from the
// same fetch carries the same UnderlyingPrice.
type Contract struct {
	UnderlyingSymbol  string     `json:"underlying_symbol" csv:"underlying_symbol"`
	OptionType        OptionType `json:"option_type" csv:"option_type"`
	Strike            float64    `json:"strike" csv:"strike"`
	ExpirationDate    string     `json:"expiration_date" csv:"expiration_date"`
	Bid               float64    `json:"bid" csv:"bid"`
	Ask               float64    `json:"ask" csv:"ask"`
	Volume            int64      `json:"volume" csv:"volume"`
	OpenInterest      int64      `json:"open_interest" csv:"open_interest"`
	ImpliedVolatility float64    `json:"implied_volatility" csv:"implied_volatility"`
	UnderlyingPrice   float64    `json:"underlying_price" csv:"underlying_price"`

	// derived by the scan pipeline
	Score      float64   `json:"score,omitempty" csv:"score"`
	IVRank     float64   `json:"iv_rank,omitempty" csv:"iv_rank"`
	TakeProfit float64   `json:"tp,omitempty" csv:"tp"`
	StopLoss   float64   `json:"sl,omitempty" csv:"sl"`
	Direction  Direction `json:"direction,omitempty" csv:"direction"`
}

func (c Contract) Expiration() (time.Time, error) {
	return time.Parse(ExpirationLayout, c.ExpirationDate)
}

const fallbackDaysToExpiration = 30

// DaysToExpiration returns the whole days between today and the contract's
// expiration. An unparseable expiration defaults to 30 days.
func (c Contract) DaysToExpiration(today time.Time) int {
	exp, err := c.Expiration()
	if err != nil {
		return fallbackDaysToExpiration
	}

	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(exp.Sub(t).Hours() / 24)
}
