package models

type BoardOrder struct {
	Type   OrderType
	Price  float64
	Amount float64
}

// Board is a depth-limited order book snapshot, best price first on both sides.
type Board struct {
	Asks []BoardOrder
	Bids []BoardOrder
}

func (b *Board) BestAskPrice() float64 {
	if len(b.Asks) == 0 {
		return 0
	}
	return b.Asks[0].Price
}

func (b *Board) BestBidPrice() float64 {
	if len(b.Bids) == 0 {
		return 0
	}
	return b.Bids[0].Price
}

// Invert reprices the book in the reverse currency pair's frame. The fetched
// bids become asks and vice versa, each level's amount is converted to the
// quote denomination (amount*price) and its rate inverted (1/price). Level
// order is preserved, so the best level stays first on both sides.
func (b *Board) Invert() *Board {
	asks := make([]BoardOrder, 0, len(b.Bids))
	for _, o := range b.Bids {
		asks = append(asks, BoardOrder{
			Type:   Ask,
			Price:  1 / o.Price,
			Amount: o.Amount * o.Price,
		})
	}
	bids := make([]BoardOrder, 0, len(b.Asks))
	for _, o := range b.Asks {
		bids = append(bids, BoardOrder{
			Type:   Bid,
			Price:  1 / o.Price,
			Amount: o.Amount * o.Price,
		})
	}
	return &Board{Asks: asks, Bids: bids}
}
