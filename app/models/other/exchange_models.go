package other

// ExchangeRateResponse mirrors the public exchange-rate endpoint's payload;
// only the rates map is consumed.
type ExchangeRateResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}
