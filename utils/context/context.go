package context

import (
	"context"

	"github.com/dikiindrasaputra/omahjajanwatir/constant"
	"github.com/dikiindrasaputra/omahjajanwatir/model"
)

// WithIdentity embeds the authenticated identity into the request context.
func WithIdentity(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, constant.IdentityKey, identity)
}

// GetIdentity returns the authenticated identity, if any.
func GetIdentity(ctx context.Context) (model.Identity, bool) {
	v := ctx.Value(constant.IdentityKey)
	if v == nil {
		return model.Identity{}, false
	}
	id, ok := v.(model.Identity)
	return id, ok
}

// WithSessionID embeds the validated session id into the request context.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, constant.SessionIDKey, sessionID)
}

// GetSessionID returns the validated session id, if any.
func GetSessionID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.SessionIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
