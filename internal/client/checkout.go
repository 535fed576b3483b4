package client

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ozretail/checkout-gateway/internal/models"
)

// CheckoutAPI - контракт callout к бэкенду оформления заказа. Возвращает
// сырой ответ вместе с HTTP-статусом: неуспешный статус - это данные, а не
// ошибка, решение о нём принимает декоратор.
type CheckoutAPI interface {
	GetCheckout(ctx context.Context) (*models.RawResponse, error)
}

var (
	ErrServiceUnavailable = errors.New("checkout service unavailable")
)

// RateLimitError - ответ 429 с интервалом повтора из Retry-After.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded"
}

func NewRateLimitError(headers http.Header) *RateLimitError {
	return &RateLimitError{RetryAfter: ParseRetryAfter(headers)}
}

// ParseRetryAfter разбирает заголовок Retry-After: секунды либо дата.
// Без заголовка или при мусоре ждём минуту.
func ParseRetryAfter(headers http.Header) time.Duration {
	retryAfter := headers.Get("Retry-After")
	if retryAfter == "" {
		return time.Minute
	}

	if seconds, err := strconv.Atoi(retryAfter); err == nil {
		return time.Duration(seconds) * time.Second
	}

	if t, err := http.ParseTime(retryAfter); err == nil {
		return time.Until(t)
	}

	return time.Minute
}
