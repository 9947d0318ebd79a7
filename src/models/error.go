package models

import "errors"

// ErrNoData signals that the provider returned no expirations, chain rows or
// price history for a symbol. Callers degrade to an empty result; a
// multi-symbol batch never aborts on it.
var ErrNoData = errors.New("no market data available")

type ErrorDTO struct {
	Msg string `json:"msg"`
}
