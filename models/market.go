package models

// MarketType selects which part of the exchange catalog an operation works on.
type MarketType string

const (
	Spot   MarketType = "spot"
	Future MarketType = "future"
	All    MarketType = "all"
)

// ValidForListing reports whether t can be used to filter the market catalog.
func (t MarketType) ValidForListing() bool {
	return t == Spot || t == Future || t == All
}

// ValidForSymbol reports whether t maps to a symbol separator convention.
// "all" has no separator and is rejected here.
func (t MarketType) ValidForSymbol() bool {
	return t == Spot || t == Future
}
