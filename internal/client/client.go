package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ozretail/checkout-gateway/internal/logger"
	"github.com/ozretail/checkout-gateway/internal/models"
	"github.com/sethvargo/go-retry"
	"github.com/sony/gobreaker"
)

const checkoutPath = "/apis/v2/Checkout"

// Параметры повторов на сетевых сбоях и 5xx
const (
	retryBaseDelay  = 500 * time.Millisecond
	retryMaxAttemps = 3
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client - callout к API оформления заказа: ограничитель частоты,
// размыкатель и повторы с экспоненциальной паузой живут здесь, выше по
// конвейеру повторов нет.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	limiter    *RateLimiter
	breaker    *gobreaker.CircuitBreaker
}

func NewClient(baseURL string, httpClient HTTPClient) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		limiter:    NewRateLimiter(),
		breaker:    initCircuitBreaker(),
	}
}

func initCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "checkout-api",
		Timeout: 30 * time.Second, // через 30 сек пробуем подключиться снова
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit breaker state changed:", name, from.String(), to.String())
		},
	})
}

// GetCheckout выполняет GET к бэкенду и возвращает статус с телом как
// есть. Ответ 429 блокирует ограничитель на время из Retry-After.
func (c *Client) GetCheckout(ctx context.Context) (*models.RawResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	value, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetch(ctx)
	})
	if err != nil {
		var rateLimitErr *RateLimitError
		if errors.As(err, &rateLimitErr) {
			logger.Warn("Too many requests to checkout API")
			c.limiter.BlockFor(rateLimitErr.RetryAfter)
		}
		return nil, err
	}

	return value.(*models.RawResponse), nil
}

// fetch делает запрос с повторами. Ответ 5xx повторяется; если попытки
// исчерпаны, последний ответ всё равно отдаётся наверх - декоратор
// пропустит его насквозь как неуспешный.
func (c *Client) fetch(ctx context.Context) (*models.RawResponse, error) {
	var response *models.RawResponse

	backoff := retry.WithMaxRetries(retryMaxAttemps, retry.NewExponential(retryBaseDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		response = nil

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+checkoutPath, nil)
		if err != nil {
			return err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests {
			return NewRateLimitError(resp.Header)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return retry.RetryableError(err)
		}

		response = &models.RawResponse{HTTPStatusCode: resp.StatusCode}
		// тело страницы ошибки может не быть JSON, такое не передаём дальше
		if json.Valid(body) {
			response.Result = body
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			return retry.RetryableError(fmt.Errorf("%w: status %d", ErrServiceUnavailable, resp.StatusCode))
		}
		return nil
	})

	if err != nil {
		// последний неуспешный ответ важнее ошибки повторов
		if response != nil && response.HTTPStatusCode >= http.StatusInternalServerError {
			return response, nil
		}
		return nil, err
	}

	return response, nil
}
