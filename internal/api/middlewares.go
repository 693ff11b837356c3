package api

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/andeanbank/microservices/credit/internal/entity"
	"github.com/andeanbank/microservices/credit/pkg/logger"
)

var skipLogging = map[string]struct{}{
	"/api/health": {},
}

type Middleware struct{}

func NewMiddleware() *Middleware {
	return &Middleware{}
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.Must(uuid.NewV4()).String()
		}

		ctx = logger.WithRequestID(ctx, requestID)
		w.Header().Set("X-Request-Id", requestID)

		if _, ok := skipLogging[r.URL.Path]; !ok {
			reqBody, err := io.ReadAll(r.Body)
			if err != nil {
				SendJSONErr(ctx, w, http.StatusInternalServerError, err, "INTERNAL_ERROR", "read request body")
				return
			}

			r.Body.Close()
			r.Body = io.NopCloser(bytes.NewBuffer(reqBody))

			var headers strings.Builder

			for k, v := range r.Header {
				if k == "Authorization" || k == "Cookie" {
					continue
				}

				headers.WriteString(fmt.Sprintf("%s: %s,\n", k, v))
			}

			slog.InfoContext(ctx, "incoming request",
				"request", fmt.Sprintf("%s %s\n%s", r.Method, r.URL.Redacted(), reqBody),
				"headers", headers.String(),
			)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			err := recover()
			if err != nil {
				slog.ErrorContext(ctx, "recovered from panic", "error", err, "stack", string(debug.Stack()))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Origin, Accept, User-Agent, Cache-Control")

		if r.Method == http.MethodOptions {
			return
		}

		next.ServeHTTP(w, r)
	})
}

// AuthHeaders moves the identity resolved by the API gateway from headers
// into the request context. Requests without X-Customer-Id are rejected,
// the gateway never forwards anonymous traffic here.
func (m *Middleware) AuthHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		auth := entity.AuthHeaders{
			CustomerID: r.Header.Get("X-Customer-Id"),
			UserRole:   r.Header.Get("X-User-Role"),
			UserID:     r.Header.Get("X-User-Id"),
		}

		if auth.CustomerID == "" && !auth.IsAdmin() {
			SendJSONErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthenticated,
				"UNAUTHENTICATED", "identity headers are missing")
			return
		}

		ctx = entity.CtxWithAuth(ctx, auth)
		ctx = logger.WithCustomerID(ctx, auth.CustomerID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin guards destructive administrative routes.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		auth, err := entity.AuthFromCtx(ctx)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusUnauthorized, err, "UNAUTHENTICATED", "identity headers are missing")
			return
		}

		if !auth.IsAdmin() {
			SendJSONErr(ctx, w, http.StatusForbidden, entity.ErrForbidden, "FORBIDDEN", "not enough permissions")
			return
		}

		next.ServeHTTP(w, r)
	})
}
