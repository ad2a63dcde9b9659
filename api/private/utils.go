package private

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/erkanugur/AlgoTrading/models"
	"github.com/pkg/errors"
)

var symbolSeparators = strings.NewReplacer("-", "", "/", "")

// NormalizeSymbol strips the base/quote separator from a market name,
// e.g. "BTC/USDT" and "BTC-USDT" both become "BTCUSDT". The normalization is
// lossy; AvailableCurrencies rejects catalogs where two distinct markets
// collide on the same key.
func NormalizeSymbol(name string) string {
	return symbolSeparators.Replace(name)
}

// SymbolAndReverse builds the exchange symbol for a currency pair and for its
// reverse. Spot markets join with "/", future markets with "-".
func SymbolAndReverse(trading string, settlement string, marketType models.MarketType) (string, string, error) {
	if !marketType.ValidForSymbol() {
		return "", "", errors.Wrapf(models.ErrInvalidMarketType, "%q (want spot or future)", marketType)
	}
	sep := "/"
	if marketType == models.Future {
		sep = "-"
	}
	return trading + sep + settlement, settlement + sep + trading, nil
}

func parseCurrencyPair(s string) (string, string, error) {
	sep := "/"
	if !strings.Contains(s, sep) {
		sep = "-"
	}
	xs := strings.Split(s, sep)
	if len(xs) != 2 {
		return "", "", errors.Errorf("invalid market name %s", s)
	}
	return xs[0], xs[1], nil
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}

func GetParamHmacSHA256Sign(secret, params string) (string, error) {
	mac := hmac.New(sha256.New, []byte(secret))
	_, err := mac.Write([]byte(params))
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(mac.Sum(nil)), nil
}

type orderRequest struct {
	Market string   `json:"market"`
	Side   string   `json:"side"`
	Price  *float64 `json:"price"`
	Size   float64  `json:"size"`
	Type   string   `json:"type"`
}
