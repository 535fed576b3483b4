package main

import (
	"fmt"

	"github.com/ozretail/checkout-gateway/internal/app"
	"github.com/ozretail/checkout-gateway/internal/config"
	"github.com/ozretail/checkout-gateway/internal/logger"
)

func main() {
	// загрузка конфига
	config := config.NewConfig()
	// инициализация логгера
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()
	// запуск шлюза
	app.Run(config)
}
