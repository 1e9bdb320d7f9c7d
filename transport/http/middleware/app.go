package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"staybook/config"
	"staybook/infras/otel"
	"staybook/shared/constant"
	"staybook/shared/failure"
	"staybook/transport/http/response"
	"time"

	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	RequestID(next http.Handler) http.Handler
	Logger(next http.Handler) http.Handler
	Recover(next http.Handler) http.Handler
	Tracing(next http.Handler) http.Handler
	CORS() func(http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
}

func NewAppMiddleware(ot otel.Otel, config *config.Config) AppMiddleware {
	return &appMiddleware{
		otel:   ot,
		config: config,
	}
}

// RequestID attaches a unique id to each request and echoes it back.
func (a *appMiddleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requestID := request.Header.Get(constant.RequestHeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		writer.Header().Set(constant.RequestHeaderRequestID, requestID)
		request.Header.Set(constant.RequestHeaderRequestID, requestID)

		next.ServeHTTP(writer, request)
	})
}

// Logger logs each request with its outcome.
func (a *appMiddleware) Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		start := time.Now()

		wrapped := &responseWriter{
			ResponseWriter: writer,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapped, request)

		log.Info().
			Str("method", request.Method).
			Str("path", request.URL.Path).
			Str("query", request.URL.RawQuery).
			Int("status", wrapped.statusCode).
			Dur("duration", time.Since(start)).
			Str("ip", clientIP(request)).
			Str("user_agent", request.UserAgent()).
			Msg("HTTP Request")
	})
}

// Recover converts panics into 500 responses instead of killing the process.
func (a *appMiddleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Interface("error", rec).
					Str("stack", string(debug.Stack())).
					Str("method", request.Method).
					Str("path", request.URL.Path).
					Msg("Panic recovered")

				response.WithError(writer, failure.InternalError(fmt.Errorf("internal server error")))
			}
		}()

		next.ServeHTTP(writer, request)
	})
}

// Tracing opens a span per request.
func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		spanName := fmt.Sprintf("%s %s", request.Method, request.URL.Path)

		ctx, scope := a.otel.NewScope(request.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
			"http.user_agent": request.Header.Get(constant.RequestHeaderUserAgent),
			"http.host":       request.Host,
			"http.source":     clientIP(request),
		})

		wrapped := &responseWriter{
			ResponseWriter: writer,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapped, request.WithContext(ctx))

		scope.SetAttribute("http.status_code", wrapped.statusCode)
	})
}

// CORS returns the configured CORS handler, or a pass-through when disabled.
func (a *appMiddleware) CORS() func(http.Handler) http.Handler {
	if !a.config.App.CORS.Enable {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   a.config.App.CORS.AllowedOrigins,
		AllowedMethods:   a.config.App.CORS.AllowedMethods,
		AllowedHeaders:   a.config.App.CORS.AllowedHeaders,
		AllowCredentials: a.config.App.CORS.AllowCredentials,
		MaxAge:           a.config.App.CORS.MaxAgeSeconds,
	})
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func clientIP(request *http.Request) string {
	if xff := request.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		for i := 0; i < len(xff); i++ {
			if xff[i] == ',' {
				return xff[:i]
			}
		}

		return xff
	}

	if xri := request.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return xri
	}

	return request.RemoteAddr
}
