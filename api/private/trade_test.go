package private

import (
	"strings"
	"testing"

	"github.com/erkanugur/AlgoTrading/models"
	"github.com/pkg/errors"
)

const orderbookJson = `{"success":true,"result":{
  "asks":[[10,2],[11,3]],
  "bids":[[0.5,8]]
}}`

const orderPlacedJson = `{"success":true,"result":{"id":9596912,"status":"new"}}`

func newSimRoundTripper() *FakeRoundTripper {
	return &FakeRoundTripper{routes: map[string]string{
		"/api/markets":                    marketsJson,
		"/api/markets/BTC/USDT/orderbook": orderbookJson,
		"/api/orders":                     orderPlacedJson,
	}}
}

func TestFillSide(t *testing.T) {
	t.Parallel()
	side := []models.BoardOrder{
		{Type: models.Ask, Price: 10, Amount: 2},
		{Type: models.Ask, Price: 11, Amount: 3},
	}

	weighted, boundary, err := fillSide(side, 4)
	if err != nil {
		panic(err)
	}
	if weighted != 10.5 {
		t.Errorf("Expected weighted price 10.5. Got %v", weighted)
	}
	if boundary != 11 {
		t.Errorf("Expected boundary price 11. Got %v", boundary)
	}

	// amount equal to one level consumes it exactly
	weighted, boundary, err = fillSide(side, 2)
	if err != nil {
		panic(err)
	}
	if weighted != 10 || boundary != 10 {
		t.Errorf("Expected weighted and boundary 10. Got %v and %v", weighted, boundary)
	}

	// whole book consumed exactly
	weighted, _, err = fillSide(side, 5)
	if err != nil {
		panic(err)
	}
	if weighted != (10*2+11*3)/5.0 {
		t.Errorf("Expected weighted price %v. Got %v", (10*2+11*3)/5.0, weighted)
	}

	_, _, err = fillSide(side, 5.0001)
	if errors.Cause(err) != models.ErrInsufficientDepth {
		t.Errorf("Expected ErrInsufficientDepth. Got %v", err)
	}

	_, _, err = fillSide(nil, 1)
	if errors.Cause(err) != models.ErrEmptyBoard {
		t.Errorf("Expected ErrEmptyBoard. Got %v", err)
	}
}

func TestSimulateMarketPrice(t *testing.T) {
	t.Parallel()
	client := newTestFtxApi(newSimRoundTripper())

	fill, err := client.SimulateMarketPrice(models.Buy, "BTC", "USDT", 4)
	if err != nil {
		panic(err)
	}
	if fill.Price != 10.5 || fill.Total != 42.0 || fill.Currency != "USDT" {
		t.Errorf("FtxApi: Expected price 10.5 total 42 USDT. Got %+v", fill)
	}

	fill, err = client.SimulateMarketPrice(models.Sell, "BTC", "USDT", 4)
	if err != nil {
		panic(err)
	}
	if fill.Price != 0.5 || fill.Total != 2.0 {
		t.Errorf("FtxApi: Expected price 0.5 total 2. Got %+v", fill)
	}
}

func TestSimulateMarketPriceReverse(t *testing.T) {
	t.Parallel()
	rt := newSimRoundTripper()
	client := newTestFtxApi(rt)

	// USDT/BTC is not listed; the BTC/USDT book is inverted: its bids
	// (price 0.5, qty 8) become asks with price 2 and qty 4.
	fill, err := client.SimulateMarketPrice(models.Buy, "USDT", "BTC", 4)
	if err != nil {
		panic(err)
	}
	if fill.Price != 2.0 || fill.Total != 8.0 || fill.Currency != "BTC" {
		t.Errorf("FtxApi: Expected price 2 total 8 BTC. Got %+v", fill)
	}

	// its asks (price 10, qty 2) become bids with price 0.1 and qty 20
	fill, err = client.SimulateMarketPrice(models.Sell, "USDT", "BTC", 20)
	if err != nil {
		panic(err)
	}
	if fill.Price != 0.1 || fill.Total != 2.0 {
		t.Errorf("FtxApi: Expected price 0.1 total 2. Got %+v", fill)
	}
}

func TestSimulateMarketPriceFuturesRejected(t *testing.T) {
	t.Parallel()
	rt := newSimRoundTripper()
	client := newTestFtxApi(rt)

	_, err := client.SimulateMarketPrice(models.Buy, "BTC", "PERP", 1)
	if errors.Cause(err) != models.ErrFuturesNotSupported {
		t.Errorf("FtxApi: Expected ErrFuturesNotSupported. Got %v", err)
	}
	if rt.orderbookRequests() != 0 {
		t.Error("FtxApi: book must not be fetched for a future pair")
	}
}

func TestSimulateMarketPriceMarketNotFound(t *testing.T) {
	t.Parallel()
	rt := newSimRoundTripper()
	client := newTestFtxApi(rt)

	_, err := client.SimulateMarketPrice(models.Buy, "XXX", "YYY", 1)
	if errors.Cause(err) != models.ErrMarketNotFound {
		t.Errorf("FtxApi: Expected ErrMarketNotFound. Got %v", err)
	}
	if rt.orderbookRequests() != 0 {
		t.Error("FtxApi: book must not be fetched for an unlisted pair")
	}
}

func TestSimulateMarketPriceInsufficientDepth(t *testing.T) {
	t.Parallel()
	client := newTestFtxApi(newSimRoundTripper())
	_, err := client.SimulateMarketPrice(models.Buy, "BTC", "USDT", 1000)
	if errors.Cause(err) != models.ErrInsufficientDepth {
		t.Errorf("FtxApi: Expected ErrInsufficientDepth. Got %v", err)
	}
}

func TestSimulateMarketPriceInvalidArguments(t *testing.T) {
	t.Parallel()
	client := newTestFtxApi(newSimRoundTripper())
	_, err := client.SimulateMarketPrice(models.OrderAction("hold"), "BTC", "USDT", 1)
	if errors.Cause(err) != models.ErrInvalidAction {
		t.Errorf("FtxApi: Expected ErrInvalidAction. Got %v", err)
	}
	_, err = client.SimulateMarketPrice(models.Buy, "BTC", "USDT", 0)
	if errors.Cause(err) != models.ErrInvalidAmount {
		t.Errorf("FtxApi: Expected ErrInvalidAmount. Got %v", err)
	}
}

func TestSimulateMarketPriceWithInfo(t *testing.T) {
	t.Parallel()
	client := newTestFtxApi(newSimRoundTripper())
	fill, info, err := client.SimulateMarketPriceWithInfo(models.Buy, "BTC", "USDT", 4, 5)
	if err != nil {
		panic(err)
	}
	if fill.Price != 10.5 {
		t.Errorf("FtxApi: Expected weighted price 10.5. Got %v", fill.Price)
	}
	// info carries the raw boundary-level price, not the weighted one
	if info.Price != 11 {
		t.Errorf("FtxApi: Expected boundary price 11. Got %v", info.Price)
	}
	if info.Action != models.Buy || info.Trading != "BTC" || info.Settlement != "USDT" ||
		info.Amount != 4 || info.IcebergCount != 5 {
		t.Errorf("FtxApi: limit order info mismatch: %+v", info)
	}
}

func TestCreateMarketOrder(t *testing.T) {
	t.Parallel()
	rt := newSimRoundTripper()
	client := newTestFtxApi(rt)

	fill, err := client.CreateMarketOrder(models.Buy, "BTC", "USDT", 4)
	if err != nil {
		panic(err)
	}
	if fill.Total != 42.0 {
		t.Errorf("FtxApi: Expected total 42. Got %v", fill.Total)
	}
	body := rt.bodies[len(rt.bodies)-1]
	for _, want := range []string{`"market":"BTC/USDT"`, `"side":"buy"`, `"price":null`, `"size":4`, `"type":"market"`} {
		if !strings.Contains(body, want) {
			t.Errorf("FtxApi: order body missing %s: %s", want, body)
		}
	}
}

func TestCreateMarketOrderReverse(t *testing.T) {
	t.Parallel()
	rt := newSimRoundTripper()
	client := newTestFtxApi(rt)

	// only BTC/USDT is listed, so the submitted size is the simulated total
	fill, err := client.CreateMarketOrder(models.Buy, "USDT", "BTC", 4)
	if err != nil {
		panic(err)
	}
	if fill.Total != 8.0 {
		t.Errorf("FtxApi: Expected total 8. Got %v", fill.Total)
	}
	body := rt.bodies[len(rt.bodies)-1]
	for _, want := range []string{`"market":"BTC/USDT"`, `"size":8`, `"type":"market"`} {
		if !strings.Contains(body, want) {
			t.Errorf("FtxApi: order body missing %s: %s", want, body)
		}
	}
}

func TestCreateMarketOrderFuturesRejected(t *testing.T) {
	t.Parallel()
	rt := newSimRoundTripper()
	client := newTestFtxApi(rt)

	// BTC-PERP is listed only as a future market
	_, err := client.CreateMarketOrder(models.Buy, "BTC", "PERP", 1)
	if errors.Cause(err) != models.ErrFuturesNotSupported {
		t.Errorf("FtxApi: Expected ErrFuturesNotSupported. Got %v", err)
	}
	if rt.orderbookRequests() != 0 {
		t.Error("FtxApi: book must not be fetched for a future pair")
	}
	for _, r := range rt.requests {
		if r.Method == "POST" {
			t.Error("FtxApi: no order may be submitted for a future pair")
		}
	}
}

func TestCreateLimitOrder(t *testing.T) {
	t.Parallel()
	rt := newSimRoundTripper()
	client := newTestFtxApi(rt)

	orders, err := client.CreateLimitOrder(models.Sell, "AVAX", "USDT", 100, 0.2, 5)
	if err != nil {
		panic(err)
	}
	if len(orders) != 5 {
		t.Fatalf("FtxApi: Expected 5 child orders. Got %d", len(orders))
	}
	for _, o := range orders {
		if o.OrderSize != 4.0 || o.Price != 0.2 || o.Currency != "USDT" {
			t.Errorf("FtxApi: Expected Order_size 4.0 at 0.2 USDT. Got %+v", o)
		}
	}
	posted := 0
	for i, r := range rt.requests {
		if r.Method != "POST" {
			continue
		}
		posted++
		body := rt.bodies[i]
		for _, want := range []string{`"market":"AVAX/USDT"`, `"side":"sell"`, `"price":0.2`, `"size":20`, `"type":"limit"`} {
			if !strings.Contains(body, want) {
				t.Errorf("FtxApi: order body missing %s: %s", want, body)
			}
		}
	}
	if posted != 5 {
		t.Errorf("FtxApi: Expected 5 submissions. Got %d", posted)
	}
}

func TestCreateLimitOrderReverse(t *testing.T) {
	t.Parallel()
	rt := newSimRoundTripper()
	client := newTestFtxApi(rt)

	// only AVAX/USDT is listed: amount becomes 100*0.2=20, price becomes 5
	orders, err := client.CreateLimitOrder(models.Sell, "USDT", "AVAX", 100, 0.2, 5)
	if err != nil {
		panic(err)
	}
	if len(orders) != 5 {
		t.Fatalf("FtxApi: Expected 5 child orders. Got %d", len(orders))
	}
	for _, o := range orders {
		if o.OrderSize != 20.0 || o.Price != 5.0 || o.Currency != "AVAX" {
			t.Errorf("FtxApi: Expected Order_size 20 at 5 AVAX. Got %+v", o)
		}
	}
	body := rt.bodies[len(rt.bodies)-1]
	for _, want := range []string{`"market":"AVAX/USDT"`, `"price":5`, `"size":4`} {
		if !strings.Contains(body, want) {
			t.Errorf("FtxApi: order body missing %s: %s", want, body)
		}
	}
}

func TestCreateLimitOrderInvalidArguments(t *testing.T) {
	t.Parallel()
	client := newTestFtxApi(newSimRoundTripper())
	_, err := client.CreateLimitOrder(models.OrderAction("hold"), "AVAX", "USDT", 100, 0.2, 5)
	if errors.Cause(err) != models.ErrInvalidAction {
		t.Errorf("FtxApi: Expected ErrInvalidAction. Got %v", err)
	}
	_, err = client.CreateLimitOrder(models.Sell, "AVAX", "USDT", 100, 0.2, 0)
	if errors.Cause(err) != models.ErrInvalidAmount {
		t.Errorf("FtxApi: Expected ErrInvalidAmount. Got %v", err)
	}
}
