package models

type Balance struct {
	Available float64
	OnOrders  float64
}

func NewBalance(available float64, onOrders float64) *Balance {
	return &Balance{
		Available: available,
		OnOrders:  onOrders,
	}
}

// AccountInfo is the trading-relevant subset of the exchange account endpoint.
type AccountInfo struct {
	Collateral        float64
	FreeCollateral    float64
	TotalAccountValue float64
	MakerFee          float64
	TakerFee          float64
	Leverage          float64
}
