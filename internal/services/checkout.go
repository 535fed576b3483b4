package services

import (
	"context"
	"time"

	"github.com/ozretail/checkout-gateway/internal/client"
	"github.com/ozretail/checkout-gateway/internal/logger"
	"github.com/ozretail/checkout-gateway/internal/models"
	"go.uber.org/zap"
)

type CheckoutService interface {
	GetOrder(ctx context.Context) (*models.DecoratedResponse, error)
}

// Checkout связывает callout к API оформления заказа и декоратор ответа.
// Это асинхронная граница конвейера: контекст протягивается в callout,
// сама декорация синхронна.
type Checkout struct {
	Client    client.CheckoutAPI
	Decorator *Decorator
}

// Создание сервиса
func NewCheckout(api client.CheckoutAPI, location *time.Location) CheckoutService {
	return &Checkout{Client: api, Decorator: NewDecorator(location)}
}

// GetOrder запрашивает сырой ответ оформления заказа и декорирует его.
// Ошибки callout и декорации не гасятся, а отдаются вызывающему.
func (s *Checkout) GetOrder(ctx context.Context) (*models.DecoratedResponse, error) {
	raw, err := s.Client.GetCheckout(ctx)
	if err != nil {
		logger.Error("Failed to call checkout API:", zap.Error(err))
		return nil, err
	}

	decorated, err := s.Decorator.Decorate(raw)
	if err != nil {
		logger.Error("Failed to decorate checkout response:", zap.Error(err))
		return nil, err
	}

	return decorated, nil
}
