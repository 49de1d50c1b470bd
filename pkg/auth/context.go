package auth

import (
	"context"
	"errors"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const actorKey contextKey = "actor"

// ErrActorNotFound is returned when no actor exists in the request context.
// Handlers fall back to the request payload's created_by field in that case.
var ErrActorNotFound = errors.New("actor not found in context")

// ActorFromCtx extracts the signed-in user's name from the request context.
// Returns ErrActorNotFound if no actor is set (anonymous request).
func ActorFromCtx(ctx context.Context) (string, error) {
	actor, ok := ctx.Value(actorKey).(string)
	if !ok || actor == "" {
		return "", ErrActorNotFound
	}
	return actor, nil
}

// WithActor returns a new context with the given user name attached.
// Used by the identity middleware after reading the session cookie.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}
