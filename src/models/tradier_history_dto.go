package models

import "time"

type TradierDayDTO struct {
	Date  string  `json:"date"`
	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`
}

func (dto TradierDayDTO) ToCandle() (Candle, error) {
	ts, err := time.Parse(ExpirationLayout, dto.Date)
	if err != nil {
		return Candle{}, err
	}

	return Candle{
		Timestamp: ts,
		Open:      dto.Open,
		High:      dto.High,
		Low:       dto.Low,
		Close:     dto.Close,
	}, nil
}

type TradierHistoryResponseDTO struct {
	History struct {
		Day []TradierDayDTO `json:"day"`
	} `json:"history"`
}
