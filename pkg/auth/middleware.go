package auth

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/bankapi/pkg/utils"
	"go.uber.org/zap"
)

//go:generate mockgen -source=middleware.go -destination=mock_middleware.go -package=auth

type ContextKey string

const UserIDKey ContextKey = "userID"

// SubjectResolver maps a token subject (email) to an existing user ID.
type SubjectResolver interface {
	ResolveSubject(ctx context.Context, email string) (int, error)
}

// AuthMiddleware authenticates the session cookie. Every failure answers the
// same 401 so callers can't tell an expired token from an unknown user.
func AuthMiddleware(tokens JWTServiceInterface, resolver SubjectResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := tokens.ValidateToken(cookie.Value)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			userID, err := resolver.ResolveSubject(r.Context(), claims.Subject)
			if err != nil {
				zap.L().Debug("session subject rejected", zap.Error(err))
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
