package currency

import "time"

// Supported currency codes.
const (
	USD = "USD"
	NGN = "NGN"
	SUI = "SUI"
	EUR = "EUR"
	GBP = "GBP"
)

// SUIUSDRate anchors the SUI token's dollar valuation across the converter
// and the airdrop panel.
const SUIUSDRate = 2.22

// Info describes a supported currency.
type Info struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Currencies lists the supported currencies.
func Currencies() []Info {
	return []Info{
		{Code: USD, Name: "US Dollar", Symbol: "$"},
		{Code: NGN, Name: "Nigerian Naira", Symbol: "₦"},
		{Code: SUI, Name: "Sui Token", Symbol: "SUI"},
		{Code: EUR, Name: "Euro", Symbol: "€"},
		{Code: GBP, Name: "British Pound", Symbol: "£"},
	}
}

// Rate is one direction of a static exchange pair. This is demo data, not a
// market feed.
type Rate struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Rate float64 `json:"rate"`
}

var rateTable = []Rate{
	{From: USD, To: NGN, Rate: 1600},
	{From: NGN, To: USD, Rate: 0.000625},
	{From: USD, To: SUI, Rate: 1 / SUIUSDRate},
	{From: SUI, To: USD, Rate: SUIUSDRate},
	{From: USD, To: EUR, Rate: 0.92},
	{From: EUR, To: USD, Rate: 1.087},
	{From: USD, To: GBP, Rate: 0.79},
	{From: GBP, To: USD, Rate: 1.266},
	{From: SUI, To: NGN, Rate: SUIUSDRate * 1600},
	{From: EUR, To: GBP, Rate: 0.858},
	{From: GBP, To: EUR, Rate: 1.165},
}

// Rates returns the static rate table.
func Rates() []Rate {
	out := make([]Rate, len(rateTable))
	copy(out, rateTable)
	return out
}

func lookupRate(from, to string) (float64, bool) {
	for _, r := range rateTable {
		if r.From == from && r.To == to {
			return r.Rate, true
		}
	}
	return 0, false
}

// Transaction records a completed conversion.
type Transaction struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Type         string    `json:"type"`
	Amount       float64   `json:"amount"`
	FromCurrency string    `json:"from_currency"`
	ToCurrency   string    `json:"to_currency"`
	Converted    float64   `json:"converted"`
	Fee          float64   `json:"fee"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	Hash         string    `json:"hash"`
}
