package middleware

import (
	"context"
	"errors"

	"github.com/fadilmartias/recruit-admin/internal/model"
	"github.com/fadilmartias/recruit-admin/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	HeaderUserID = "X-User-ID"
	actorKey     = "actor"
)

// UserFinder is the slice of the user repository Actor needs.
type UserFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// Actor resolves the X-User-ID header to a console user and keeps it in the
// request locals. It attributes work to a user; it does not authenticate.
// Requests without the header, or naming an unknown user, carry no actor.
func Actor(users UserFinder, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(HeaderUserID)
		if raw == "" {
			return c.Next()
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid "+HeaderUserID+" header")
		}
		u, err := users.FindByID(c.UserContext(), id)
		switch {
		case errors.Is(err, util.ErrNotFound):
			log.Warn("unknown actor", zap.String("user_id", raw))
		case err != nil:
			return err
		default:
			c.Locals(actorKey, u)
		}
		return c.Next()
	}
}

// CurrentActor returns the user resolved by Actor, if any.
func CurrentActor(c *fiber.Ctx) *model.User {
	u, _ := c.Locals(actorKey).(*model.User)
	return u
}

// ActorID is the id of CurrentActor, or nil.
func ActorID(c *fiber.Ctx) *uuid.UUID {
	if u := CurrentActor(c); u != nil {
		id := u.ID
		return &id
	}
	return nil
}
