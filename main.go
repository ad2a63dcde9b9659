package main

import (
	"flag"
	"fmt"

	"github.com/erkanugur/AlgoTrading/api/private"
	"github.com/erkanugur/AlgoTrading/api/public"
	"github.com/erkanugur/AlgoTrading/config"
	"github.com/erkanugur/AlgoTrading/models"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to config file")
	flag.Parse()

	pub, err := public.NewClient("ftx")
	if err != nil {
		panic(err)
	}
	board, err := pub.Board("BTC", "USDT")
	if err != nil {
		fmt.Println(err)
	} else {
		fmt.Printf("BTC/USDT best bid %v best ask %v\n", board.BestBidPrice(), board.BestAskPrice())
	}

	conf, err := config.Load(*configPath)
	if err != nil {
		fmt.Println(err)
		return
	}
	cli, err := private.NewClient(conf.Exchange, conf.APIKey, conf.SecretKey)
	if err != nil {
		panic(err)
	}
	fill, err := cli.SimulateMarketPrice(models.Buy, "BTC", "USDT", 10)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("buying 10 BTC would cost %v %s at %v\n", fill.Total, fill.Currency, fill.Price)
}
