package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ozretail/checkout-gateway/internal/helpers"
	"github.com/ozretail/checkout-gateway/internal/logger"
	"github.com/ozretail/checkout-gateway/internal/services"
	"go.uber.org/zap"
)

// GetCheckoutOrderHandler — декорированный заказ оформления для покупателя
func GetCheckoutOrderHandler(c services.CheckoutService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		decorated, err := c.GetOrder(r.Context())
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMalformedResult), errors.Is(err, services.ErrInvalidWindowTime):
				logger.Error("Malformed checkout response for user:", username, zap.Error(err))
				http.Error(w, "Bad Gateway", http.StatusBadGateway)
			default:
				logger.Error("Failed to get checkout order:", zap.Error(err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(decorated)
		if err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}
