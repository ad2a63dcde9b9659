package private

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strconv"
	"time"

	"github.com/antonholmquist/jason"
	"github.com/erkanugur/AlgoTrading/logger"
	"github.com/erkanugur/AlgoTrading/models"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

const (
	FTX_BASE_URL = "https://ftx.com"

	// orderBookDepth is the number of levels requested per book snapshot and
	// therefore the horizon of every fill simulation.
	orderBookDepth = 100
)

func NewFtxApi(apikey string, apisecret string) (*FtxApi, error) {
	return &FtxApi{
		BaseURL:    FTX_BASE_URL,
		ApiKey:     apikey,
		SecretKey:  apisecret,
		HttpClient: http.Client{Timeout: 10 * time.Second},
	}, nil
}

// FtxApi is an authenticated FTX REST client. Credentials are read-only after
// construction; every request carries a timestamped HMAC signature.
type FtxApi struct {
	ApiKey     string
	SecretKey  string
	BaseURL    string
	HttpClient http.Client
}

func (f *FtxApi) privateApiUrl(path string) string {
	return f.BaseURL + "/api/" + path
}

func (f *FtxApi) privateApi(method string, path string, body []byte) ([]byte, error) {
	req, err := http.NewRequest(method, f.privateApiUrl(path), bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create request for %s", path)
	}

	ts := strconv.FormatInt(time.Now().UnixMilli(), 10)
	payload := ts + method + req.URL.RequestURI()
	if len(body) > 0 {
		payload += string(body)
	}
	sign, err := GetParamHmacSHA256Sign(f.SecretKey, payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign request")
	}
	req.Header.Set("FTX-KEY", f.ApiKey)
	req.Header.Set("FTX-SIGN", sign)
	req.Header.Set("FTX-TS", ts)
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := f.HttpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to request %s", path)
	}
	defer res.Body.Close()

	byteArray, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch result of %s", path)
	}
	value := gjson.ParseBytes(byteArray)
	if !value.Get("success").Exists() {
		return nil, errors.Errorf("HttpStatusCode:%d ,Desc:%s", res.StatusCode, string(byteArray))
	}
	if !value.Get("success").Bool() {
		return nil, errors.Wrap(models.ErrRemote, value.Get("error").String())
	}
	return []byte(value.Get("result").Raw), nil
}

func (f *FtxApi) privateGet(path string) ([]byte, error) {
	return f.privateApi(http.MethodGet, path, nil)
}

func (f *FtxApi) AccountInfo() (*models.AccountInfo, error) {
	bs, err := f.privateGet("account")
	if err != nil {
		return nil, err
	}
	json, err := jason.NewObjectFromBytes(bs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse json")
	}
	info := &models.AccountInfo{}
	for _, field := range []struct {
		key string
		dst *float64
	}{
		{"collateral", &info.Collateral},
		{"freeCollateral", &info.FreeCollateral},
		{"totalAccountValue", &info.TotalAccountValue},
		{"makerFee", &info.MakerFee},
		{"takerFee", &info.TakerFee},
		{"leverage", &info.Leverage},
	} {
		v, err := json.GetFloat64(field.key)
		if err != nil {
			return nil, errors.Wrapf(err, "couldn't get %s as float64", field.key)
		}
		*field.dst = v
	}
	return info, nil
}

func (f *FtxApi) Balances() (map[string]*models.Balance, error) {
	bs, err := f.privateGet("wallet/balances")
	if err != nil {
		return nil, err
	}
	root, err := jason.NewValueFromBytes(bs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse json")
	}
	vals, err := root.Array()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse json as array")
	}
	m := make(map[string]*models.Balance)
	for _, v := range vals {
		obj, err := v.Object()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse %v as object", v)
		}
		coin, err := obj.GetString("coin")
		if err != nil {
			return nil, errors.Wrap(err, "couldn't get coin as string")
		}
		free, err := obj.GetFloat64("free")
		if err != nil {
			return nil, errors.Wrap(err, "couldn't get free as float64")
		}
		total, err := obj.GetFloat64("total")
		if err != nil {
			return nil, errors.Wrap(err, "couldn't get total as float64")
		}
		m[coin] = models.NewBalance(free, total-free)
	}
	return m, nil
}

func (f *FtxApi) ActiveOrders() ([]*models.Order, error) {
	bs, err := f.privateGet("orders")
	if err != nil {
		return nil, err
	}
	var orders []*models.Order
	for _, v := range gjson.ParseBytes(bs).Array() {
		market := v.Get("market").String()
		trading, settlement, err := parseCurrencyPair(market)
		if err != nil {
			logger.Get().Warnf("couldn't parse market name %s", market)
			continue
		}
		orderType := models.Bid
		if v.Get("side").String() == string(models.Sell) {
			orderType = models.Ask
		}
		orders = append(orders, &models.Order{
			ExchangeOrderID: v.Get("id").String(),
			Type:            orderType,
			Trading:         trading,
			Settlement:      settlement,
			Price:           v.Get("price").Float(),
			Amount:          v.Get("remainingSize").Float(),
		})
	}
	return orders, nil
}

// AvailableCurrencies lists the catalog for the given market type as
// concatenated symbols ("BTC/USDT" -> "BTCUSDT"). The catalog is fetched
// fresh on every call.
func (f *FtxApi) AvailableCurrencies(marketType models.MarketType) ([]string, error) {
	if !marketType.ValidForListing() {
		return nil, errors.Wrapf(models.ErrInvalidMarketType, "%q (want spot, future or all)", marketType)
	}
	bs, err := f.privateGet("markets")
	if err != nil {
		return nil, err
	}
	currencies := make([]string, 0)
	seen := make(map[string]string)
	for _, v := range gjson.ParseBytes(bs).Array() {
		if marketType != models.All && v.Get("type").String() != string(marketType) {
			continue
		}
		name := v.Get("name").String()
		symbol := NormalizeSymbol(name)
		if prev, ok := seen[symbol]; ok && prev != name {
			return nil, errors.Wrapf(models.ErrAmbiguousSymbol, "%s and %s both normalize to %s", prev, name, symbol)
		}
		seen[symbol] = name
		currencies = append(currencies, symbol)
	}
	return currencies, nil
}

// checkMarketType fails when the pair (in either direction) is listed on the
// future market. The service trades spot markets only.
func (f *FtxApi) checkMarketType(trading string, settlement string) error {
	futures, err := f.AvailableCurrencies(models.Future)
	if err != nil {
		return err
	}
	if contains(futures, trading+settlement) || contains(futures, settlement+trading) {
		return errors.Wrapf(models.ErrFuturesNotSupported, "%s/%s", trading, settlement)
	}
	return nil
}

// resolveSpotMarket finds the listed spot symbol for a pair. The direct pair
// wins when both directions are listed; direct reports which one was taken.
func (f *FtxApi) resolveSpotMarket(trading string, settlement string) (market string, direct bool, err error) {
	symbol, reverseSymbol, err := SymbolAndReverse(trading, settlement, models.Spot)
	if err != nil {
		return "", false, err
	}
	spot, err := f.AvailableCurrencies(models.Spot)
	if err != nil {
		return "", false, err
	}
	if contains(spot, trading+settlement) {
		return symbol, true, nil
	}
	if contains(spot, settlement+trading) {
		return reverseSymbol, false, nil
	}
	return "", false, errors.Wrapf(models.ErrMarketNotFound, "neither %s nor %s is a listed spot market", symbol, reverseSymbol)
}

func (f *FtxApi) fetchBoard(symbol string) (*models.Board, error) {
	path := fmt.Sprintf("markets/%s/orderbook?depth=%d", symbol, orderBookDepth)
	bs, err := f.privateGet(path)
	if err != nil {
		return nil, err
	}
	value := gjson.ParseBytes(bs)
	bids := make([]models.BoardOrder, 0)
	asks := make([]models.BoardOrder, 0)
	for _, v := range value.Get("bids").Array() {
		bids = append(bids, models.BoardOrder{
			Price:  v.Array()[0].Float(),
			Amount: v.Array()[1].Float(),
			Type:   models.Bid,
		})
	}
	for _, v := range value.Get("asks").Array() {
		asks = append(asks, models.BoardOrder{
			Price:  v.Array()[0].Float(),
			Amount: v.Array()[1].Float(),
			Type:   models.Ask,
		})
	}
	return &models.Board{Bids: bids, Asks: asks}, nil
}

func (f *FtxApi) placeOrder(market string, action models.OrderAction, price *float64, size float64, orderType string) (string, error) {
	body, err := json.Marshal(&orderRequest{
		Market: market,
		Side:   string(action),
		Price:  price,
		Size:   size,
		Type:   orderType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to encode order")
	}
	bs, err := f.privateApi(http.MethodPost, "orders", body)
	if err != nil {
		return "", errors.Wrapf(err, "failed to place %s order on %s", orderType, market)
	}
	return gjson.ParseBytes(bs).Get("id").String(), nil
}
