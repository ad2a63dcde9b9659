package models

type OrderType int

const (
	Ask OrderType = iota
	Bid
)

// OrderAction is the side of an order as the exchange spells it.
type OrderAction string

const (
	Buy  OrderAction = "buy"
	Sell OrderAction = "sell"
)

func (a OrderAction) Valid() bool {
	return a == Buy || a == Sell
}

type Order struct {
	ExchangeOrderID string
	Type            OrderType
	Trading         string
	Settlement      string
	Price           float64
	Amount          float64
}

// IcebergOrder is one child of a split limit order. OrderSize is the
// quote-currency notional (size*price), not the base size sent to the
// exchange.
type IcebergOrder struct {
	OrderSize float64 `json:"Order_size"`
	Price     float64 `json:"Price"`
	Currency  string  `json:"Currency"`
}
