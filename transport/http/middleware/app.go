package middleware

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
	"siesta/config"
	"siesta/infras/otel"
	"siesta/shared/constant"
	"siesta/shared/failure"
	"siesta/transport/http/response"

	"github.com/go-chi/chi/v5/middleware"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	Identity(next http.Handler) http.Handler
	APIKey(next http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
}

func NewAppMiddleware(otel otel.Otel, config *config.Config) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
	}
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		spanName := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

		ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       r.URL.Path,
			"http.method":     r.Method,
			"http.user_agent": r.UserAgent(),
			"http.host":       r.Host,
			"http.source":     r.RemoteAddr,
		})

		wrapped := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(wrapped, r.WithContext(ctx))

		scope.SetAttributes(map[string]any{
			"http.status_code": wrapped.Status(),
		})
	})
}

// Identity stamps the terminal's operator identity into the request context.
// The terminal runs single-operator; identity comes from configuration, not
// per-request credentials.
func (a *appMiddleware) Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), constant.ContextKeyWorkerID, a.config.App.WorkerID)
		ctx = context.WithValue(ctx, constant.ContextKeyAdminID, a.config.App.AdminID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// APIKey rejects requests without the shared terminal key. A blank configured
// key disables the check.
func (a *appMiddleware) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expected := a.config.App.APIKey
		if expected == constant.Empty {
			next.ServeHTTP(w, r)

			return
		}

		provided := r.Header.Get(constant.RequestHeaderAPIKey)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
			response.WithError(w, failure.Unauthorized("invalid API key"))

			return
		}

		next.ServeHTTP(w, r)
	})
}
