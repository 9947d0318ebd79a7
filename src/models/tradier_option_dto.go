package models

// TradierOptionDTO is one row of the Tradier option chain response.
type TradierOptionDTO struct {
	Symbol         string  `json:"symbol"`
	Underlying     string  `json:"underlying"`
	Strike         float64 `json:"strike"`
	Bid            float64 `json:"bid"`
	Ask            float64 `json:"ask"`
	Volume         int64   `json:"volume"`
	OpenInterest   int64   `json:"open_interest"`
	OptionType     string  `json:"option_type"`
	ExpirationDate string  `json:"expiration_date"`
	Greeks         *struct {
		MidIV float64 `json:"mid_iv"`
	} `json:"greeks"`
}

// ToContract converts the row to a Contract, stamping the underlying's last
// close onto it. Rows missing a strike or a valid option type are rejected
// by the caller via Contract validation.
func (dto TradierOptionDTO) ToContract(underlyingPrice float64) Contract {
	iv := 0.0
	if dto.Greeks != nil {
		iv = dto.Greeks.MidIV
	}

	return Contract{
		UnderlyingSymbol:  dto.Underlying,
		OptionType:        OptionType(dto.OptionType),
		Strike:            dto.Strike,
		ExpirationDate:    dto.ExpirationDate,
		Bid:               dto.Bid,
		Ask:               dto.Ask,
		Volume:            dto.Volume,
		OpenInterest:      dto.OpenInterest,
		ImpliedVolatility: iv,
		UnderlyingPrice:   underlyingPrice,
	}
}

type TradierChainResponseDTO struct {
	Options struct {
		Option []TradierOptionDTO `json:"option"`
	} `json:"options"`
}

type TradierExpirationsResponseDTO struct {
	Expirations struct {
		Date []string `json:"date"`
	} `json:"expirations"`
}
