package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	id "riskdesk/pkg/domain"
	dErrors "riskdesk/pkg/domain-errors"
	"riskdesk/pkg/platform/httputil"
	"riskdesk/pkg/requestcontext"
)

// CustomerResolver validates a bearer token and returns the customer it was
// issued for.
type CustomerResolver interface {
	Validate(tokenString string) (id.CustomerID, error)
}

// RequireAuth resolves the calling customer from the Authorization header and
// injects it into the request context. Requests without a valid bearer token
// are rejected before reaching handlers.
func RequireAuth(resolver CustomerResolver, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			const bearerPrefix = "Bearer "
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), bearerPrefix)
			if !ok || token == "" {
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "bearer token required"))
				return
			}

			customerID, err := resolver.Validate(token)
			if err != nil {
				logger.WarnContext(ctx, "auth rejected",
					"request_id", requestcontext.RequestID(ctx),
					"error", err,
				)
				httputil.WriteError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(requestcontext.WithCustomerID(ctx, customerID)))
		})
	}
}

// HeaderAuth resolves the customer from the X-Customer-ID header. Demo and
// local development only; pairs with config.AuthDisabled.
func HeaderAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		customerID, err := id.ParseCustomerID(r.Header.Get("X-Customer-ID"))
		if err != nil {
			httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "X-Customer-ID header required"))
			return
		}
		next.ServeHTTP(w, r.WithContext(requestcontext.WithCustomerID(ctx, customerID)))
	})
}
