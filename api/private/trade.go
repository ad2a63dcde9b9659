package private

import (
	"github.com/erkanugur/AlgoTrading/logger"
	"github.com/erkanugur/AlgoTrading/models"
	"github.com/pkg/errors"
)

// fillSide walks one book side best price first, accumulating quantity until
// the requested amount is covered. The boundary level is clipped so that the
// consumed quantity equals amount exactly. It returns the volume-weighted
// average price over the consumed levels and the raw price of the boundary
// level.
func fillSide(side []models.BoardOrder, amount float64) (weighted float64, boundary float64, err error) {
	if len(side) == 0 {
		return 0, 0, errors.WithStack(models.ErrEmptyBoard)
	}
	cum := 0.0
	weightedSum := 0.0
	for _, level := range side {
		if cum+level.Amount >= amount {
			take := amount - cum
			weightedSum += level.Price * take
			return weightedSum / amount, level.Price, nil
		}
		weightedSum += level.Price * level.Amount
		cum += level.Amount
	}
	return 0, 0, errors.Wrapf(models.ErrInsufficientDepth, "amount %v within %d depths", amount, orderBookDepth)
}

func (f *FtxApi) simulate(action models.OrderAction, trading string, settlement string, amount float64) (*models.FillResult, float64, error) {
	if !action.Valid() {
		return nil, 0, errors.Wrapf(models.ErrInvalidAction, "%q (want buy or sell)", action)
	}
	if amount <= 0 {
		return nil, 0, errors.Wrapf(models.ErrInvalidAmount, "got %v", amount)
	}
	if err := f.checkMarketType(trading, settlement); err != nil {
		return nil, 0, err
	}
	market, direct, err := f.resolveSpotMarket(trading, settlement)
	if err != nil {
		return nil, 0, err
	}
	board, err := f.fetchBoard(market)
	if err != nil {
		return nil, 0, err
	}
	if !direct {
		board = board.Invert()
	}
	side := board.Asks
	if action == models.Sell {
		side = board.Bids
	}
	weighted, boundary, err := fillSide(side, amount)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "failed to fill %s of %s%s", action, trading, settlement)
	}
	return &models.FillResult{
		Total:    weighted * amount,
		Price:    weighted,
		Currency: settlement,
	}, boundary, nil
}

// SimulateMarketPrice estimates what a market order of the given base amount
// would cost against the current depth-limited book. When only the reverse
// pair is listed, the fetched book is inverted into the requested pair's
// frame first.
func (f *FtxApi) SimulateMarketPrice(action models.OrderAction, trading string, settlement string, amount float64) (*models.FillResult, error) {
	fill, _, err := f.simulate(action, trading, settlement, amount)
	return fill, err
}

// SimulateMarketPriceWithInfo additionally reports the request echoed as
// LimitOrderInfo. Its Price field is the raw boundary-level price rather than
// the volume-weighted price of the FillResult.
func (f *FtxApi) SimulateMarketPriceWithInfo(action models.OrderAction, trading string, settlement string,
	amount float64, icebergCount int) (*models.FillResult, *models.LimitOrderInfo, error) {
	fill, boundary, err := f.simulate(action, trading, settlement, amount)
	if err != nil {
		return nil, nil, err
	}
	return fill, &models.LimitOrderInfo{
		Action:       action,
		Trading:      trading,
		Settlement:   settlement,
		Amount:       amount,
		Price:        boundary,
		IcebergCount: icebergCount,
	}, nil
}

// CreateMarketOrder simulates the fill and submits a single market order.
// When only the reverse pair is listed, the submitted size is the simulated
// total, reinterpreting the amount in the listed market's base units.
func (f *FtxApi) CreateMarketOrder(action models.OrderAction, trading string, settlement string, amount float64) (*models.FillResult, error) {
	if err := f.checkMarketType(trading, settlement); err != nil {
		return nil, err
	}
	market, direct, err := f.resolveSpotMarket(trading, settlement)
	if err != nil {
		return nil, err
	}
	fill, err := f.SimulateMarketPrice(action, trading, settlement, amount)
	if err != nil {
		return nil, err
	}
	size := amount
	if !direct {
		size = fill.Total
	}
	orderID, err := f.placeOrder(market, action, nil, size, "market")
	if err != nil {
		return nil, err
	}
	logger.Get().Infof("placed market order %s: %s %s size %v", orderID, action, market, size)
	return fill, nil
}

// CreateLimitOrder splits the amount into icebergCount equal child orders and
// submits them sequentially at the given limit price. When only the reverse
// pair is listed, amount is converted to the listed market's units
// (amount*price) and the rate inverted (1/price) before splitting. Each
// returned child reports its quote-currency notional (size*price), not the
// raw size sent to the exchange. Submission is not atomic: on a mid-sequence
// failure the children placed so far stay working on the exchange, and the
// partial plan is returned along with the error.
func (f *FtxApi) CreateLimitOrder(action models.OrderAction, trading string, settlement string,
	amount float64, price float64, icebergCount int) ([]models.IcebergOrder, error) {
	if !action.Valid() {
		return nil, errors.Wrapf(models.ErrInvalidAction, "%q (want buy or sell)", action)
	}
	if amount <= 0 {
		return nil, errors.Wrapf(models.ErrInvalidAmount, "got amount %v", amount)
	}
	if price <= 0 {
		return nil, errors.Wrapf(models.ErrInvalidAmount, "got price %v", price)
	}
	if icebergCount <= 0 {
		return nil, errors.Wrapf(models.ErrInvalidAmount, "got %d iceberg orders", icebergCount)
	}
	market, direct, err := f.resolveSpotMarket(trading, settlement)
	if err != nil {
		return nil, err
	}
	if !direct {
		amount = amount * price
		price = 1 / price
	}

	orderSize := amount / float64(icebergCount)
	orders := make([]models.IcebergOrder, 0, icebergCount)
	for i := 0; i < icebergCount; i++ {
		orderID, err := f.placeOrder(market, action, &price, orderSize, "limit")
		if err != nil {
			return orders, errors.Wrapf(err, "iceberg order %d of %d failed, %d orders already working", i+1, icebergCount, i)
		}
		logger.Get().Infof("placed limit order %s: %s %s size %v price %v", orderID, action, market, orderSize, price)
		orders = append(orders, models.IcebergOrder{
			OrderSize: orderSize * price,
			Price:     price,
			Currency:  settlement,
		})
	}
	return orders, nil
}
