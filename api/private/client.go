package private

import (
	"strings"

	"github.com/erkanugur/AlgoTrading/models"
	"github.com/pkg/errors"
)

//go:generate mockery -name=PrivateClient
type PrivateClient interface {
	AccountInfo() (*models.AccountInfo, error)
	Balances() (map[string]*models.Balance, error)
	ActiveOrders() ([]*models.Order, error)
	AvailableCurrencies(marketType models.MarketType) ([]string, error)
	SimulateMarketPrice(action models.OrderAction, trading string, settlement string,
		amount float64) (*models.FillResult, error)
	SimulateMarketPriceWithInfo(action models.OrderAction, trading string, settlement string,
		amount float64, icebergCount int) (*models.FillResult, *models.LimitOrderInfo, error)
	CreateMarketOrder(action models.OrderAction, trading string, settlement string,
		amount float64) (*models.FillResult, error)
	CreateLimitOrder(action models.OrderAction, trading string, settlement string,
		amount float64, price float64, icebergCount int) ([]models.IcebergOrder, error)
}

func NewClient(exchangeName string, apikey string, seckey string) (PrivateClient, error) {
	switch strings.ToLower(exchangeName) {
	case "ftx":
		return NewFtxApi(apikey, seckey)
	}
	return nil, errors.New("failed to init exchange api")
}
