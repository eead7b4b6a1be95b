package middleware

import (
	"net/http"
	"strings"

	"github.com/ramosvitor/tibiaset-backend/api/responses"
	"github.com/ramosvitor/tibiaset-backend/internal/accounts"
	pkgAuth "github.com/ramosvitor/tibiaset-backend/pkg/auth"
	"github.com/ramosvitor/tibiaset-backend/pkg/config"
	pkgerrors "github.com/ramosvitor/tibiaset-backend/pkg/errors"
	"github.com/ramosvitor/tibiaset-backend/pkg/logger"
)

// Auth validates a bearer token, re-resolves the caller's account row, and
// seeds the request context with the identity.
func Auth(cfg config.JWTConfig, svc accounts.Service, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			subject, err := pkgAuth.ParseAccessToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "could not validate credentials"))
				return
			}

			identity, err := svc.ResolveIdentity(r.Context(), subject)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}

			ctx := WithIdentity(r.Context(), *identity)
			if logg != nil {
				ctx = logg.WithUserEmail(ctx, identity.Email)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
