package domain

import "context"

type actorKey struct{}

// WithActor returns a copy of ctx carrying the id of the user on whose behalf
// a request is made.
func WithActor(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, actorKey{}, userID)
}

// ActorFromContext returns the acting user id stored by WithActor, or "" if
// none is set.
func ActorFromContext(ctx context.Context) string {
	id, _ := ctx.Value(actorKey{}).(string)
	return id
}
