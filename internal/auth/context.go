package auth

import (
	"context"

	"github.com/ayursutra/backend/internal/userctx"
	"github.com/google/uuid"
)

func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return userctx.WithUserID(ctx, userID)
}

func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	return userctx.GetUserID(ctx)
}
