package public

import (
	"io/ioutil"
	"net/http"
	"sync"
	"time"

	"github.com/Jeffail/gabs"
	"github.com/erkanugur/AlgoTrading/logger"
	"github.com/erkanugur/AlgoTrading/models"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

const (
	FTX_BASE_URL = "https://ftx.com"
)

func NewFtxPublicApi() (*FtxApi, error) {
	api := &FtxApi{
		BaseURL:           FTX_BASE_URL,
		RateCacheDuration: 30 * time.Second,
		HttpClient:        http.Client{Timeout: 10 * time.Second},
		boardCache:        cache.New(3*time.Second, 1*time.Second),
		rateMap:           nil,
		volumeMap:         nil,
		rateLastUpdated:   time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),

		m: new(sync.Mutex),
	}
	return api, nil
}

type FtxApi struct {
	BaseURL           string
	RateCacheDuration time.Duration
	HttpClient        http.Client
	boardCache        *cache.Cache

	volumeMap       map[string]map[string]float64
	rateMap         map[string]map[string]float64
	rateLastUpdated time.Time

	m *sync.Mutex
}

func (f *FtxApi) publicApiUrl(command string) string {
	return f.BaseURL + "/api/" + command
}

func (f *FtxApi) fetchMarkets() (*gabs.Container, error) {
	url := f.publicApiUrl("markets")
	resp, err := f.HttpClient.Get(url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch %s", url)
	}
	defer resp.Body.Close()

	byteArray, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch %s", url)
	}
	json, err := gabs.ParseJSON(byteArray)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse json")
	}
	if ok, _ := json.Path("success").Data().(bool); !ok {
		msg, _ := json.Path("error").Data().(string)
		return nil, errors.Wrap(models.ErrRemote, msg)
	}
	return json, nil
}

func (f *FtxApi) fetchRate() error {
	f.rateMap = make(map[string]map[string]float64)
	f.volumeMap = make(map[string]map[string]float64)
	json, err := f.fetchMarkets()
	if err != nil {
		return err
	}
	markets, err := json.Path("result").Children()
	if err != nil {
		return errors.Wrapf(err, "failed to parse json")
	}
	for _, v := range markets {
		typ, ok := v.Path("type").Data().(string)
		if !ok || typ != "spot" {
			continue
		}
		trading, ok := v.Path("baseCurrency").Data().(string)
		if !ok {
			logger.Get().Warnf("spot market without base currency: %v", v.Path("name").Data())
			continue
		}
		settlement, ok := v.Path("quoteCurrency").Data().(string)
		if !ok {
			logger.Get().Warnf("spot market without quote currency: %v", v.Path("name").Data())
			continue
		}
		last, _ := v.Path("last").Data().(float64)
		volume, _ := v.Path("quoteVolume24h").Data().(float64)

		m, ok := f.rateMap[trading]
		if !ok {
			m = make(map[string]float64)
			f.rateMap[trading] = m
		}
		m[settlement] = last

		m, ok = f.volumeMap[trading]
		if !ok {
			m = make(map[string]float64)
			f.volumeMap[trading] = m
		}
		m[settlement] = volume
	}
	return nil
}

func (f *FtxApi) refreshRate() error {
	now := time.Now()
	if now.Sub(f.rateLastUpdated) >= f.RateCacheDuration {
		if err := f.fetchRate(); err != nil {
			return err
		}
		f.rateLastUpdated = now
	}
	return nil
}

func (f *FtxApi) Rate(trading string, settlement string) (float64, error) {
	f.m.Lock()
	defer f.m.Unlock()
	if err := f.refreshRate(); err != nil {
		return 0, err
	}
	rate, ok := f.rateMap[trading][settlement]
	if !ok {
		return 0, errors.Wrapf(models.ErrMarketNotFound, "no rate for %s/%s", trading, settlement)
	}
	return rate, nil
}

func (f *FtxApi) Volume(trading string, settlement string) (float64, error) {
	f.m.Lock()
	defer f.m.Unlock()
	if err := f.refreshRate(); err != nil {
		return 0, err
	}
	volume, ok := f.volumeMap[trading][settlement]
	if !ok {
		return 0, errors.Wrapf(models.ErrMarketNotFound, "no volume for %s/%s", trading, settlement)
	}
	return volume, nil
}

func (f *FtxApi) CurrencyPairs() ([]models.CurrencyPair, error) {
	json, err := f.fetchMarkets()
	if err != nil {
		return nil, err
	}
	markets, err := json.Path("result").Children()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse json")
	}
	pairs := make([]models.CurrencyPair, 0, len(markets))
	for _, v := range markets {
		typ, ok := v.Path("type").Data().(string)
		if !ok || typ != "spot" {
			continue
		}
		trading, ok := v.Path("baseCurrency").Data().(string)
		if !ok {
			continue
		}
		settlement, ok := v.Path("quoteCurrency").Data().(string)
		if !ok {
			continue
		}
		pairs = append(pairs, models.CurrencyPair{
			Trading:    trading,
			Settlement: settlement,
		})
	}
	return pairs, nil
}

func (f *FtxApi) Board(trading string, settlement string) (board *models.Board, err error) {
	c, found := f.boardCache.Get(trading + "_" + settlement)
	if found {
		return c.(*models.Board), nil
	}
	url := f.publicApiUrl("markets/" + trading + "/" + settlement + "/orderbook?depth=100")
	resp, err := f.HttpClient.Get(url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch %s", url)
	}
	defer resp.Body.Close()

	byteArray, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch %s", url)
	}
	value := gjson.ParseBytes(byteArray)
	if !value.Get("success").Bool() {
		return nil, errors.Wrap(models.ErrRemote, value.Get("error").String())
	}
	bidsArray := value.Get("result.bids").Array()
	asksArray := value.Get("result.asks").Array()

	bids := make([]models.BoardOrder, 0)
	asks := make([]models.BoardOrder, 0)
	for _, v := range bidsArray {
		bids = append(bids, models.BoardOrder{
			Price:  v.Array()[0].Float(),
			Amount: v.Array()[1].Float(),
			Type:   models.Bid,
		})
	}
	for _, v := range asksArray {
		asks = append(asks, models.BoardOrder{
			Price:  v.Array()[0].Float(),
			Amount: v.Array()[1].Float(),
			Type:   models.Ask,
		})
	}
	board = &models.Board{
		Bids: bids,
		Asks: asks,
	}
	f.boardCache.Set(trading+"_"+settlement, board, cache.DefaultExpiration)
	return board, nil
}
