package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/optionscope/optionscope/src/models"
)

const requestTimeout = 10 * time.Second

// TradierClient fetches expirations, option chains and daily price history
// from the Tradier market-data API.
type TradierClient struct {
	BaseURL     string
	BearerToken string

	client *http.Client
}

func NewTradierClient(baseURL, bearerToken string) *TradierClient {
	return &TradierClient{
		BaseURL:     baseURL,
		BearerToken: bearerToken,
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

func NewTradierClientFromEnv() (*TradierClient, error) {
	baseURL := os.Getenv("TRADIER_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.tradier.com"
	}

	bearerToken := os.Getenv("TRADIER_BEARER_TOKEN")
	if bearerToken == "" {
		return nil, fmt.Errorf("NewTradierClientFromEnv: missing TRADIER_BEARER_TOKEN environment variable")
	}

	return NewTradierClient(baseURL, bearerToken), nil
}

func (t *TradierClient) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("TradierClient: get: failed to create request: %w", err)
	}

	req.URL.RawQuery = query.Encode()
	req.Header.Add("Accept", "application/json")
	req.Header.Add("Authorization", "Bearer "+t.BearerToken)

	res, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("TradierClient: get: failed to fetch %s: %w", path, err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("TradierClient: get: %s returned status %d", path, res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("TradierClient: get: failed to read response body: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("TradierClient: get: failed to unmarshal response: %w", err)
	}

	return nil
}

func (t *TradierClient) ListExpirations(ctx context.Context, symbol string) ([]string, error) {
	query := url.Values{}
	query.Add("symbol", symbol)
	query.Add("includeAllRoots", "true")

	var dto models.TradierExpirationsResponseDTO
	if err := t.get(ctx, "/v1/markets/options/expirations", query, &dto); err != nil {
		return nil, fmt.Errorf("ListExpirations: %w", err)
	}

	return dto.Expirations.Date, nil
}

// FetchChain fetches all calls and puts for one expiration and stamps the
// underlying's last close onto every row.
func (t *TradierClient) FetchChain(ctx context.Context, symbol string, expiration string) ([]models.Contract, error) {
	underlyingPrice, err := t.lastClose(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("FetchChain: %w", err)
	}

	query := url.Values{}
	query.Add("symbol", symbol)
	query.Add("expiration", expiration)
	query.Add("greeks", "true")

	var dto models.TradierChainResponseDTO
	if err := t.get(ctx, "/v1/markets/options/chains", query, &dto); err != nil {
		return nil, fmt.Errorf("FetchChain: %w", err)
	}

	contracts := make([]models.Contract, 0, len(dto.Options.Option))
	for _, row := range dto.Options.Option {
		c := row.ToContract(underlyingPrice)
		if c.UnderlyingSymbol == "" {
			c.UnderlyingSymbol = symbol
		}

		contracts = append(contracts, c)
	}

	return contracts, nil
}

func (t *TradierClient) PriceHistory(ctx context.Context, symbol string, lookbackDays int) ([]models.Candle, error) {
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -lookbackDays)

	query := url.Values{}
	query.Add("symbol", symbol)
	query.Add("interval", "daily")
	query.Add("start", start.Format(models.ExpirationLayout))
	query.Add("end", end.Format(models.ExpirationLayout))

	var dto models.TradierHistoryResponseDTO
	if err := t.get(ctx, "/v1/markets/history", query, &dto); err != nil {
		return nil, fmt.Errorf("PriceHistory: %w", err)
	}

	candles := make([]models.Candle, 0, len(dto.History.Day))
	for _, day := range dto.History.Day {
		candle, err := day.ToCandle()
		if err != nil {
			log.Warnf("PriceHistory: skipping malformed day %s: %v", day.Date, err)
			continue
		}

		candles = append(candles, candle)
	}

	return candles, nil
}

// lastClose returns the most recent daily close, looking back up to a week
// to cover weekends and holidays.
func (t *TradierClient) lastClose(ctx context.Context, symbol string) (float64, error) {
	candles, err := t.PriceHistory(ctx, symbol, 7)
	if err != nil {
		return 0, err
	}

	if len(candles) == 0 {
		return 0, fmt.Errorf("lastClose: %s: %w", symbol, models.ErrNoData)
	}

	return candles[len(candles)-1].Close, nil
}
