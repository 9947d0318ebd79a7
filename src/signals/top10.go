package signals

import (
	"fmt"
	"strings"

	"github.com/optionscope/optionscope/src/models"
)

// BuildTop10Alert renders the full text block for a top-N scan result.
func BuildTop10Alert(contracts []models.Contract) string {
	if len(contracts) == 0 {
		return "No suitable contracts found."
	}

	var alert strings.Builder
	alert.WriteString("Top contracts by score:\n\n")

	for _, c := range contracts {
		fmt.Fprintf(&alert, "%s | %s\n", c.UnderlyingSymbol, strings.ToUpper(string(c.Direction)))
		fmt.Fprintf(&alert, "strike: %.2f | exp: %s\n", c.Strike, c.ExpirationDate)
		fmt.Fprintf(&alert, "bid: %.2f | ask: %.2f\n", c.Bid, c.Ask)
		fmt.Fprintf(&alert, "IV: %.4f | IV rank: %.1f | score: %.2f\n", c.ImpliedVolatility, c.IVRank, c.Score)
		fmt.Fprintf(&alert, "TP: %.2f | SL: %.2f\n", c.TakeProfit, c.StopLoss)
		alert.WriteString("-----------------------------\n")
	}

	return alert.String()
}

// BuildCompactMessage renders at most ten contracts as one line each:
// symbol | type | strike | ask.
func BuildCompactMessage(contracts []models.Contract) string {
	if len(contracts) == 0 {
		return "No contracts to display."
	}

	if len(contracts) > 10 {
		contracts = contracts[:10]
	}

	lines := []string{"Selected contracts:"}
	for _, c := range contracts {
		lines = append(lines, fmt.Sprintf("%s | %s | %.2f | %.2f", c.UnderlyingSymbol, contractTypeLabel(c.Direction), c.Strike, c.Ask))
	}

	return strings.Join(lines, "\n")
}

// BuildCompactSignal is the one-line form of a single contract signal.
func BuildCompactSignal(symbol string, direction models.Direction, c models.Contract) string {
	return fmt.Sprintf("Trade signal\n%s | %s | %.2f | %.2f", symbol, contractTypeLabel(direction), c.Strike, c.Ask)
}

func contractTypeLabel(direction models.Direction) string {
	if direction == models.Down {
		return "PUT"
	}

	return "CALL"
}
