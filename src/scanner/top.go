package scanner

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/optionscope/optionscope/src/marketdata"
	"github.com/optionscope/optionscope/src/models"
	money_management "github.com/optionscope/optionscope/src/money-management"
)

// Moneyness sanity band applied by PickTop2 independently of the tolerance
// bands in FilterNearMoney.
const (
	top2CallMin = 0.95
	top2CallMax = 1.15
	top2PutMin  = 0.85
	top2PutMax  = 1.05
)

const (
	DefaultTopN    = 10
	DefaultWorkers = 4
)

// PickTop2 re-checks moneyness, scores the survivors and returns at most the
// two best contracts, ties broken by encounter order.
func PickTop2(contracts []models.Contract, direction models.Direction, today time.Time) []models.Contract {
	var scored []models.Contract

	for _, c := range contracts {
		price := c.UnderlyingPrice

		switch direction {
		case models.Up:
			if c.Strike < price*top2CallMin || c.Strike > price*top2CallMax {
				continue
			}
		case models.Down:
			if c.Strike < price*top2PutMin || c.Strike > price*top2PutMax {
				continue
			}
		default:
			continue
		}

		c.Score = ScoreContract(c, today)
		scored = append(scored, c)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > 2 {
		scored = scored[:2]
	}

	return scored
}

// Scanner runs the contract selection pipeline over a watchlist.
type Scanner struct {
	provider marketdata.Provider
	cfg      *models.ScannerConfigYAML

	now     func() time.Time
	workers int
}

func NewScanner(provider marketdata.Provider, cfg *models.ScannerConfigYAML) *Scanner {
	return &Scanner{
		provider: provider,
		cfg:      cfg,
		now:      time.Now,
		workers:  DefaultWorkers,
	}
}

// ProcessSymbol fetches the weekly and monthly chains for one symbol, runs
// the near-the-money filter and returns the two best contracts with score,
// IV rank and TP/SL attached. An empty result is not an error; an error
// means the provider had no usable data for the symbol.
func (s *Scanner) ProcessSymbol(ctx context.Context, symbol string, direction models.Direction) ([]models.Contract, error) {
	today := s.now()

	expirations, err := s.provider.ListExpirations(ctx, symbol)
	if err != nil {
		return nil, err
	}

	weekly, monthly := ClassifyExpirations(expirations, today)
	all := s.fetchChains(ctx, symbol, weekly, monthly)

	if len(all) == 0 {
		return nil, models.ErrNoData
	}

	if all[0].UnderlyingPrice <= 0 {
		log.Warnf("ProcessSymbol: %s: missing underlying price", symbol)
		return nil, models.ErrNoData
	}

	filtered := FilterNearMoney(all, direction)
	if len(filtered) == 0 {
		return nil, nil
	}

	sample := IVSample(all)
	top2 := PickTop2(filtered, direction, today)

	for i := range top2 {
		top2[i].IVRank = IVRank(top2[i].ImpliedVolatility, sample)
		top2[i].TakeProfit, top2[i].StopLoss = money_management.OptionTPSL(top2[i].Ask)
		top2[i].Direction = direction
	}

	return top2, nil
}

// fetchChains fetches each classified expiration, skipping failures.
func (s *Scanner) fetchChains(ctx context.Context, symbol string, expirations ...string) []models.Contract {
	var all []models.Contract

	for _, expiration := range expirations {
		if expiration == "" {
			continue
		}

		contracts, err := s.provider.FetchChain(ctx, symbol, expiration)
		if err != nil {
			log.Warnf("fetchChains: %s %s: %v", symbol, expiration, err)
			continue
		}

		all = append(all, contracts...)
	}

	return all
}

// TopAcrossWatchlist runs ProcessSymbol over the whole watchlist with a
// bounded worker pool and returns the n best contracts by score. Symbols
// that fail contribute nothing; the batch never aborts.
func (s *Scanner) TopAcrossWatchlist(ctx context.Context, direction models.Direction, n int) []models.Contract {
	if n <= 0 {
		n = DefaultTopN
	}

	watchlist := s.cfg.Watchlist
	runID := uuid.NewString()

	log.WithFields(log.Fields{
		"run":       runID,
		"symbols":   len(watchlist),
		"direction": direction,
	}).Info("TopAcrossWatchlist: starting scan")

	jobs := make(chan string)
	resultCh := make(chan []models.Contract)

	var wg sync.WaitGroup

	workers := s.workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for symbol := range jobs {
				top2, err := s.ProcessSymbol(ctx, symbol, direction)
				if err != nil {
					log.WithField("run", runID).Warnf("TopAcrossWatchlist: %s: %v", symbol, err)
					continue
				}

				if len(top2) > 0 {
					resultCh <- top2
				}
			}
		}()
	}

	go func() {
		for _, symbol := range watchlist {
			jobs <- symbol
		}

		close(jobs)
		wg.Wait()
		close(resultCh)
	}()

	var all []models.Contract
	for top2 := range resultCh {
		all = append(all, top2...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Score > all[j].Score
	})

	if len(all) > n {
		all = all[:n]
	}

	log.WithField("run", runID).Infof("TopAcrossWatchlist: selected %d contracts", len(all))

	return all
}
