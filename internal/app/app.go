package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ozretail/checkout-gateway/internal/client"
	"github.com/ozretail/checkout-gateway/internal/config"
	"github.com/ozretail/checkout-gateway/internal/logger"
	"github.com/ozretail/checkout-gateway/internal/network/router"
	"github.com/ozretail/checkout-gateway/internal/services"
)

func Run(config config.Config) {

	location, err := time.LoadLocation(config.Display.Timezone)
	if err != nil {
		logger.Panic("unknown display timezone:", config.Display.Timezone, err.Error())
	}

	api := client.NewClient(config.Checkout.CheckoutAddr, &http.Client{Timeout: config.Checkout.Timeout})
	checkout := services.NewCheckout(api, location)

	router := router.NewRouter(config, checkout)

	server := &http.Server{
		Addr:    config.Server.ListenAddr,
		Handler: router.HandleRouter(),
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(
			"Starting server config:", config,
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("error listen server", err.Error())
		}
	}()

	<-stop
	logger.Info("Shutdown server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutdown server", err.Error())
	}
	logger.Info("Server stopped")
}
