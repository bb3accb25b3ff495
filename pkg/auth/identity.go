// Package auth carries the verified user identity from the request
// boundary to the application layer. The core never parses raw claim
// structures; by the time a handler runs, identity is a plain string on
// the context or the request was already rejected.
package auth

import (
	"context"

	apperrors "mynotes-backend/pkg/errors"
)

type contextKey struct{}

var userIDKey contextKey

// WithUserID returns a context carrying the verified user identifier.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the verified user identifier, or an
// Unauthorized error if none was attached.
func UserIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", apperrors.NewUnauthorizedError("no verified identity")
	}
	return userID, nil
}
