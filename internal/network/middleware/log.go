package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/ozretail/checkout-gateway/internal/logger"
)

type (
	// берём структуру для хранения сведений об ответе
	ResponseData struct {
		status int
		size   int
	}

	// добавляем реализацию http.ResponseWriter
	LoggingResponseWriter struct {
		http.ResponseWriter // встраиваем оригинальный http.ResponseWriter
		responseData        *ResponseData
	}
)

func (r *LoggingResponseWriter) Write(b []byte) (int, error) {
	// записываем ответ, используя оригинальный http.ResponseWriter
	size, err := r.ResponseWriter.Write(b)
	r.responseData.size += size // захватываем размер
	return size, err
}

func (r *LoggingResponseWriter) WriteHeader(statusCode int) {
	// записываем код статуса, используя оригинальный http.ResponseWriter
	r.ResponseWriter.WriteHeader(statusCode)
	r.responseData.status = statusCode // захватываем код статуса
}

// LogHandle — middleware-логер для входящих HTTP-запросов. Каждому
// запросу присваивается корреляционный идентификатор.
func LogHandle(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		start := time.Now()
		requestID := uuid.NewString()

		responseData := &ResponseData{
			status: 0,
			size:   0,
		}
		lw := LoggingResponseWriter{
			ResponseWriter: w, // встраиваем оригинальный http.ResponseWriter
			responseData:   responseData,
		}
		lw.Header().Set("X-Request-Id", requestID)

		h.ServeHTTP(&lw, r)

		duration := time.Since(start)

		logger.Info("got incoming HTTP request",
			"request_id", requestID,
			"uri", r.RequestURI,
			"method", r.Method,
			"status", responseData.status,
			"duration", duration,
			"size", responseData.size,
		)
	})
}
