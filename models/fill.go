package models

// FillResult is the estimated cost of filling a base-currency amount against
// a book snapshot. Price is the volume-weighted average over the consumed
// levels and Total is Price*amount, both denominated in Currency (the
// settlement currency of the requested pair).
type FillResult struct {
	Total    float64 `json:"total"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
}

// LimitOrderInfo echoes a simulated request for building a follow-up limit
// order. Price here is the raw price of the boundary level that completed the
// fill, not the volume-weighted price carried by FillResult.
type LimitOrderInfo struct {
	Action       OrderAction
	Trading      string
	Settlement   string
	Amount       float64
	Price        float64
	IcebergCount int
}
