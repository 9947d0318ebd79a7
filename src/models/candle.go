package models

import "time"

// Candle is one daily bar of the underlying's price history.
type Candle struct {
	Timestamp time.Time
	Open      float64
	High      float64
	Low       float64
	Close     float64
}

func Closes(candles []Candle) []float64 {
	closes := make([]float64, 0, len(candles))
	for _, c := range candles {
		closes = append(closes, c.Close)
	}

	return closes
}
