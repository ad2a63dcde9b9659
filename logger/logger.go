package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	once  sync.Once
	sugar *zap.SugaredLogger
)

func Get() *zap.SugaredLogger {
	once.Do(func() {
		lg, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		sugar = lg.Sugar()
	})
	return sugar
}
