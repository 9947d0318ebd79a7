package scanner

import (
	"sort"

	"github.com/optionscope/optionscope/src/models"
)

// Empirical cost ceilings and leg liquidity minimums for strategy pairing.
const (
	MaxStraddleCost = 20.0
	MaxStrangleCost = 15.0

	minStraddleLegVolume = 100
	minStrangleLegVolume = 80
)

type strikeExpirationKey struct {
	strike     float64
	expiration string
}

// FindStraddle returns the first call/put pair sharing strike and expiration
// whose combined ask stays under the cost ceiling and whose legs are liquid
// enough. First match wins; legs are not re-ranked. Nil means no qualifying
// pair.
func FindStraddle(symbol string, contracts []models.Contract) *models.Strategy {
	callsByKey := make(map[strikeExpirationKey]models.Contract)
	for _, c := range contracts {
		if c.OptionType == models.Call {
			callsByKey[strikeExpirationKey{c.Strike, c.ExpirationDate}] = c
		}
	}

	for _, put := range contracts {
		if put.OptionType != models.Put {
			continue
		}

		call, ok := callsByKey[strikeExpirationKey{put.Strike, put.ExpirationDate}]
		if !ok {
			continue
		}

		totalCost := call.Ask + put.Ask
		if totalCost > MaxStraddleCost {
			continue
		}

		if call.Volume < minStraddleLegVolume || put.Volume < minStraddleLegVolume {
			continue
		}

		return &models.Strategy{
			Kind:          models.Straddle,
			Symbol:        symbol,
			Strike:        put.Strike,
			Expiration:    put.ExpirationDate,
			Call:          call,
			Put:           put,
			TotalCost:     round2(totalCost),
			MaxLoss:       round2(totalCost),
			BreakEvenUp:   round2(put.Strike + totalCost),
			BreakEvenDown: round2(put.Strike - totalCost),
		}
	}

	return nil
}

// FindStrangle pairs the call with the smallest strike above the underlying
// price and the put with the largest strike below it. Both legs must share
// an expiration and pass the cost and liquidity limits. When the underlying
// price is missing, the mean of the nonzero strikes approximates it.
func FindStrangle(symbol string, contracts []models.Contract) *models.Strategy {
	var calls, puts []models.Contract
	for _, c := range contracts {
		switch c.OptionType {
		case models.Call:
			calls = append(calls, c)
		case models.Put:
			puts = append(puts, c)
		}
	}

	if len(calls) == 0 || len(puts) == 0 {
		return nil
	}

	sort.SliceStable(calls, func(i, j int) bool { return calls[i].Strike < calls[j].Strike })
	sort.SliceStable(puts, func(i, j int) bool { return puts[i].Strike > puts[j].Strike })

	price := contracts[0].UnderlyingPrice
	if price == 0 {
		price = meanStrike(contracts)
	}

	var call, put *models.Contract

	for i := range calls {
		if calls[i].Strike > price {
			call = &calls[i]
			break
		}
	}

	for i := range puts {
		if puts[i].Strike < price {
			put = &puts[i]
			break
		}
	}

	if call == nil || put == nil || call.ExpirationDate != put.ExpirationDate {
		return nil
	}

	totalCost := call.Ask + put.Ask
	if totalCost > MaxStrangleCost {
		return nil
	}

	if call.Volume < minStrangleLegVolume || put.Volume < minStrangleLegVolume {
		return nil
	}

	return &models.Strategy{
		Kind:          models.Strangle,
		Symbol:        symbol,
		CallStrike:    call.Strike,
		PutStrike:     put.Strike,
		Expiration:    call.ExpirationDate,
		Call:          *call,
		Put:           *put,
		TotalCost:     round2(totalCost),
		MaxLoss:       round2(totalCost),
		BreakEvenUp:   round2(call.Strike + totalCost),
		BreakEvenDown: round2(put.Strike - totalCost),
	}
}

func meanStrike(contracts []models.Contract) float64 {
	sum := 0.0
	count := 0

	for _, c := range contracts {
		if c.Strike > 0 {
			sum += c.Strike
			count++
		}
	}

	if count == 0 {
		return 0
	}

	return sum / float64(count)
}
