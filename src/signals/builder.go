package signals

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/optionscope/optionscope/src/indicators"
	"github.com/optionscope/optionscope/src/marketdata"
	"github.com/optionscope/optionscope/src/models"
	money_management "github.com/optionscope/optionscope/src/money-management"
	"github.com/optionscope/optionscope/src/scanner"
)

const historyLookbackDays = 180

// Builder renders the full per-symbol option signal report. It produces text
// only; delivery is the caller's concern.
type Builder struct {
	provider marketdata.Provider
	cfg      *models.ScannerConfigYAML

	now func() time.Time
}

func NewBuilder(provider marketdata.Provider, cfg *models.ScannerConfigYAML) *Builder {
	return &Builder{
		provider: provider,
		cfg:      cfg,
		now:      time.Now,
	}
}

// GenerateSignal builds the report for one symbol and a raw direction
// string. An unrecognized direction yields a descriptive message, never an
// error; provider failures degrade to explanatory lines.
func (b *Builder) GenerateSignal(ctx context.Context, symbol string, rawDirection string) string {
	direction, err := models.ParseDirection(rawDirection)
	if err != nil {
		return fmt.Sprintf("unknown direction %q for %s: use up or down (bull/long and bear/short work too)", rawDirection, symbol)
	}

	today := b.now()

	expirations, err := b.provider.ListExpirations(ctx, symbol)
	if err != nil {
		log.Warnf("GenerateSignal: %s: list expirations: %v", symbol, err)
		return fmt.Sprintf("no expiration dates available for %s", symbol)
	}

	weeklyExp, monthlyExp := scanner.ClassifyExpirations(expirations, today)
	if weeklyExp == "" && monthlyExp == "" {
		return fmt.Sprintf("no expiration dates available for %s", symbol)
	}

	var report strings.Builder

	fmt.Fprintf(&report, "Option signal — %s\n", symbol)
	report.WriteString("------------------------------------\n")

	snap := b.writeIndicators(ctx, &report, symbol)

	weeklyAll := b.fetchChain(ctx, symbol, weeklyExp)
	monthlyAll := b.fetchChain(ctx, symbol, monthlyExp)

	filter := b.cfg.GetSymbolFilter(symbol)
	topWeekly := pickTop(weeklyAll, direction, filter, today)
	topMonthly := pickTop(monthlyAll, direction, filter, today)

	b.writeContractBlocks(&report, "Weekly", weeklyExp, topWeekly, direction)
	b.writeContractBlocks(&report, "Monthly", monthlyExp, topMonthly, direction)

	if len(topWeekly) == 0 && len(topMonthly) == 0 {
		report.WriteString("No suitable contracts after filtering.\n\n")
	}

	b.writeRSICommentary(&report, snap, filter)

	all := append(append([]models.Contract{}, weeklyAll...), monthlyAll...)
	b.writeIVAnalysis(&report, bestContract(topWeekly, topMonthly), all)
	b.writeStrategies(&report, symbol, all)

	report.WriteString("------------------------------------")
	return report.String()
}

// pickTop narrows a raw chain to its two best contracts for the direction:
// near-the-money bands, then the per-symbol liquidity filter, then scoring.
func pickTop(contracts []models.Contract, direction models.Direction, filter models.SymbolFilter, today time.Time) []models.Contract {
	nearMoney := scanner.FilterNearMoney(contracts, direction)
	liquid := scanner.ApplySymbolFilter(nearMoney, filter)
	return scanner.PickTop2(liquid, direction, today)
}

func (b *Builder) fetchChain(ctx context.Context, symbol string, expiration string) []models.Contract {
	if expiration == "" {
		return nil
	}

	contracts, err := b.provider.FetchChain(ctx, symbol, expiration)
	if err != nil {
		log.Warnf("GenerateSignal: %s %s: fetch chain: %v", symbol, expiration, err)
		return nil
	}

	return contracts
}

func (b *Builder) writeIndicators(ctx context.Context, report *strings.Builder, symbol string) indicators.Snapshot {
	candles, err := b.provider.PriceHistory(ctx, symbol, historyLookbackDays)
	if err != nil {
		log.Warnf("GenerateSignal: %s: price history: %v", symbol, err)
	}

	snap := indicators.BuildSnapshot(candles)

	report.WriteString("Technical indicators:\n")
	fmt.Fprintf(report, "- price: %.2f\n", snap.Price)
	fmt.Fprintf(report, "- RSI(14): %.2f\n", snap.RSI)
	fmt.Fprintf(report, "- SMA50: %.2f\n", snap.SMA50)
	fmt.Fprintf(report, "- SMA200: %.2f\n", snap.SMA200)

	if alerts := indicators.PriceAlerts(snap.Price, b.cfg.GetPriceLevels(symbol)); len(alerts) > 0 {
		levels := make([]string, 0, len(alerts))
		for _, level := range alerts {
			levels = append(levels, fmt.Sprintf("%.2f", level))
		}

		fmt.Fprintf(report, "\nPrice alert: within 1%% of %s\n", strings.Join(levels, ", "))
	}

	report.WriteString("\n")
	return snap
}

func (b *Builder) writeContractBlocks(report *strings.Builder, label string, expiration string, contracts []models.Contract, direction models.Direction) {
	if expiration == "" {
		fmt.Fprintf(report, "%s: no expiration available.\n\n", label)
		return
	}

	if len(contracts) == 0 {
		fmt.Fprintf(report, "%s (expires %s): no suitable %s contract.\n\n", label, expiration, strings.ToUpper(string(direction)))
		return
	}

	for _, c := range contracts {
		writeContractBlock(report, fmt.Sprintf("%s (expires %s)", label, expiration), c, direction)
	}
}

func writeContractBlock(report *strings.Builder, title string, c models.Contract, direction models.Direction) {
	tp, sl := money_management.OptionTPSL(c.Ask)

	fmt.Fprintf(report, "%s\n", title)
	fmt.Fprintf(report, "- symbol: %s\n", c.UnderlyingSymbol)
	fmt.Fprintf(report, "- direction: %s\n", strings.ToUpper(string(direction)))
	fmt.Fprintf(report, "- strike: %.2f\n", c.Strike)
	fmt.Fprintf(report, "- expiration: %s\n", c.ExpirationDate)
	fmt.Fprintf(report, "- bid/ask: %.2f / %.2f\n", c.Bid, c.Ask)
	fmt.Fprintf(report, "- volume: %d\n", c.Volume)
	fmt.Fprintf(report, "- open interest: %d\n", c.OpenInterest)
	fmt.Fprintf(report, "- IV: %.4f\n", c.ImpliedVolatility)
	fmt.Fprintf(report, "- score: %.2f\n", c.Score)
	fmt.Fprintf(report, "- entry: %.2f\n", c.Ask)
	fmt.Fprintf(report, "- TP: %.2f\n", tp)
	fmt.Fprintf(report, "- SL: %.2f\n\n", sl)
}

func (b *Builder) writeRSICommentary(report *strings.Builder, snap indicators.Snapshot, filter models.SymbolFilter) {
	switch {
	case snap.RSI <= filter.RSIBuyThreshold:
		fmt.Fprintf(report, "RSI %.2f is at or below the buy threshold %.0f.\n\n", snap.RSI, filter.RSIBuyThreshold)
	case snap.RSI >= filter.RSISellThreshold:
		fmt.Fprintf(report, "RSI %.2f is at or above the sell threshold %.0f.\n\n", snap.RSI, filter.RSISellThreshold)
	}
}

func (b *Builder) writeIVAnalysis(report *strings.Builder, best *models.Contract, all []models.Contract) {
	report.WriteString("IV analysis:\n")

	if best == nil || best.ImpliedVolatility <= 0 {
		report.WriteString("- IV rank: unavailable\n\n")
		return
	}

	analysis := scanner.AnalyzeIV(best.ImpliedVolatility, scanner.IVSample(all))

	fmt.Fprintf(report, "- IV rank: %.1f%%\n", analysis.Rank)
	fmt.Fprintf(report, "- %s\n\n", analysis.Signal)
}

func (b *Builder) writeStrategies(report *strings.Builder, symbol string, all []models.Contract) {
	straddle := scanner.FindStraddle(symbol, all)
	strangle := scanner.FindStrangle(symbol, all)

	if straddle == nil && strangle == nil {
		return
	}

	report.WriteString("Strategies:\n")

	if straddle != nil {
		writeStrategyBlock(report, straddle)
	}

	if strangle != nil {
		writeStrategyBlock(report, strangle)
	}
}

func writeStrategyBlock(report *strings.Builder, s *models.Strategy) {
	fmt.Fprintf(report, "- %s on %s, expires %s\n", s.Kind, s.Symbol, s.Expiration)

	if s.Kind == models.Straddle {
		fmt.Fprintf(report, "  strike: %.2f\n", s.Strike)
	} else {
		fmt.Fprintf(report, "  call strike: %.2f, put strike: %.2f\n", s.CallStrike, s.PutStrike)
	}

	fmt.Fprintf(report, "  total cost: $%.2f (max loss $%.2f)\n", s.TotalCost, s.MaxLoss)
	fmt.Fprintf(report, "  break even: %.2f / %.2f\n\n", s.BreakEvenDown, s.BreakEvenUp)
}

func bestContract(topWeekly, topMonthly []models.Contract) *models.Contract {
	if len(topWeekly) > 0 {
		return &topWeekly[0]
	}

	if len(topMonthly) > 0 {
		return &topMonthly[0]
	}

	return nil
}
