// Package authctx carries the authenticated actor through the request
// context, from the auth middleware down to the service layer.
package authctx

import (
	"context"

	"github.com/brightserv/ops-backend-go/internal/domain/user"
)

type Actor struct {
	UserID     string
	Email      string
	EmployeeID *string
	Role       user.Role
}

type actorKey struct{}

func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func FromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(Actor)
	return actor, ok
}
