package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"mynotes-backend/infrastructure/config"
	"mynotes-backend/pkg/auth"

	"go.uber.org/zap"
)

// identityHeader carries the authorizer-verified user id when running
// behind API Gateway. The Lambda entrypoint sets it from the request
// context claims before proxying; clients cannot reach the function
// directly, so the header is trustworthy there.
const identityHeader = "X-User-ID"

// Authenticate attaches the verified user identity to the request
// context, or rejects with 401 before any business logic runs.
//
// In Lambda the gateway authorizer has already verified the token and the
// identity arrives as a header. Locally a HS256 JWT is verified here.
func Authenticate(cfg *config.Config, logger *zap.Logger) func(next http.Handler) http.Handler {
	if cfg.IsLambda {
		return authenticateFromGateway(logger)
	}
	return authenticateLocal(cfg, logger)
}

func authenticateFromGateway(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := r.Header.Get(identityHeader)
			if userID == "" {
				logger.Warn("Request without authorizer identity",
					zap.String("path", r.URL.Path),
				)
				respondUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
		})
	}
}

func authenticateLocal(cfg *config.Config, logger *zap.Logger) func(next http.Handler) http.Handler {
	validator, err := auth.NewJWTValidator(cfg.JWTSecret, cfg.JWTIssuer)
	if err != nil {
		logger.Error("JWT validator unavailable, rejecting all requests", zap.Error(err))
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				respondUnauthorized(w)
			})
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondUnauthorized(w)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				respondUnauthorized(w)
				return
			}

			userID, err := validator.Validate(parts[1])
			if err != nil {
				logger.Warn("Token validation failed", zap.Error(err))
				respondUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
		})
	}
}

func respondUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   true,
		"type":    "UNAUTHORIZED",
		"message": "unauthorized",
	})
}
