package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gwr-marine/ops-analytics/pkg/apiErrors"
	"github.com/gwr-marine/ops-analytics/pkg/log"
	"github.com/gwr-marine/ops-analytics/pkg/utils"
)

// RequestIDHeader devolve ao cliente o ID curto usado nos logs
const RequestIDHeader = "X-Request-ID"

// slowRequestThreshold acima disso a requisição é registrada como lenta
const slowRequestThreshold = 500 * time.Millisecond

// LoggingMiddleware identifica a requisição (correlation id interno e X-Request-ID
// devolvido ao cliente) e registra uma linha ao final com status e duração.
// Em desenvolvimento o pacote log descarta os campos de detalhe.
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, _ := log.WithCorrelationID(r.Context())

			requestID := requestIDFrom(r)
			ctx = log.WithRequestID(ctx, requestID)
			w.Header().Set(RequestIDHeader, requestID)
			r = r.WithContext(ctx)

			logger := log.ForContext(ctx).WithFields(log.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
			})
			logger.WithFields(log.Fields{
				"query":       r.URL.RawQuery,
				"remote_addr": r.RemoteAddr,
				"user_agent":  r.UserAgent(),
			}).Debug("Requisição recebida")

			rec := &statusRecorder{ResponseWriter: w}
			start := time.Now()

			next.ServeHTTP(rec, r)

			elapsed := time.Since(start)
			status := rec.Status()

			logger = logger.WithFields(log.Fields{
				"status_code": status,
				"duration_ms": elapsed.Milliseconds(),
			})
			message := fmt.Sprintf("%d em %s", status, formatDuration(elapsed))

			switch completionLevel(status, elapsed) {
			case logrus.ErrorLevel:
				logger.Error("Requisição falhou: " + message)
			case logrus.WarnLevel:
				if status < http.StatusBadRequest {
					logger.Warn("Requisição lenta: " + message)
				} else {
					logger.Warn("Requisição recusada: " + message)
				}
			default:
				logger.Info("Requisição concluída: " + message)
			}
		})
	}
}

func requestIDFrom(r *http.Request) string {
	if id := r.Header.Get(RequestIDHeader); id != "" {
		return id
	}
	id, err := utils.GenerateID()
	if err != nil {
		return ""
	}
	return id
}

// completionLevel: 5xx é erro; 4xx ou lentidão é aviso
func completionLevel(status int, elapsed time.Duration) logrus.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return logrus.ErrorLevel
	case status >= http.StatusBadRequest, elapsed > slowRequestThreshold:
		return logrus.WarnLevel
	default:
		return logrus.InfoLevel
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// statusRecorder guarda o status enviado; handlers que só chamam Write respondem 200
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.status == 0 {
		s.status = code
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	return s.ResponseWriter.Write(b)
}

func (s *statusRecorder) Status() int {
	if s.status == 0 {
		return http.StatusOK
	}
	return s.status
}

// LogPanicMiddleware transforma um panic em 500 com o corpo de erro padrão
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}

				stack := debug.Stack()
				log.ForContext(r.Context()).WithFields(log.Fields{
					"error":       fmt.Sprint(recovered),
					"method":      r.Method,
					"path":        r.URL.Path,
					"stack_trace": string(stack),
				}).Error("Panic ao processar requisição")

				// stack_trace é descartado do log em desenvolvimento
				if log.IsDevelopment() {
					fmt.Fprintf(os.Stderr, "\n=== STACK TRACE ===\n%s\n", stack)
				}

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
