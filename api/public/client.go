package public

import (
	"strings"

	"github.com/erkanugur/AlgoTrading/models"
	"github.com/pkg/errors"
)

//go:generate mockery -name=PublicClient
type PublicClient interface {
	Volume(trading string, settlement string) (float64, error)
	CurrencyPairs() ([]models.CurrencyPair, error)
	Rate(trading string, settlement string) (float64, error)
	Board(trading string, settlement string) (*models.Board, error)
}

func NewClient(exchangeName string) (PublicClient, error) {
	switch strings.ToLower(exchangeName) {
	case "ftx":
		return NewFtxPublicApi()
	}
	return nil, errors.New("failed to init exchange api")
}
