package marketdata

import (
	"context"

	"github.com/optionscope/optionscope/src/models"
)

// Provider is the external market-data boundary. FetchChain stamps the
// underlying's most recent daily close onto every contract of the batch, so
// all contracts from one call share the same UnderlyingPrice.
type Provider interface {
	ListExpirations(ctx context.Context, symbol string) ([]string, error)
	FetchChain(ctx context.Context, symbol string, expiration string) ([]models.Contract, error)
	PriceHistory(ctx context.Context, symbol string, lookbackDays int) ([]models.Candle, error)
}
