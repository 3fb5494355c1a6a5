package redis

import (
	"context"
	"encoding/json"
	"time"

	redisclient "github.com/dikiindrasaputra/omahjajanwatir/cmd/redis"
	"github.com/dikiindrasaputra/omahjajanwatir/model"
)

// Repository holds the server-side half of the session machinery: session
// id → user id bindings and the per-session flash message queue.
type Repository interface {
	SetSession(ctx context.Context, sessionID string, sess model.SessionData, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*model.SessionData, error)
	DeleteSession(ctx context.Context, sessionID string) error
	PushFlash(ctx context.Context, sessionID string, flash model.Flash) error
	PopFlashes(ctx context.Context, sessionID string) ([]model.Flash, error)
}

type redis struct {
}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// SetSession binds a session id to its session data with TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, sess model.SessionData, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	key := "session:" + sessionID
	return client.Set(ctx, key, raw, ttl).Err()
}

// GetSession retrieves the session data bound to a session id
func (r *redis) GetSession(ctx context.Context, sessionID string) (*model.SessionData, error) {
	client := redisclient.Get()
	if client == nil {
		return nil, nil
	}
	key := "session:" + sessionID
	val, err := client.Get(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	var sess model.SessionData
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// DeleteSession removes a session binding
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	key := "session:" + sessionID
	return client.Del(ctx, key).Err()
}

// PushFlash appends a one-shot message to the session's flash queue
func (r *redis) PushFlash(ctx context.Context, sessionID string, flash model.Flash) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	raw, err := json.Marshal(flash)
	if err != nil {
		return err
	}
	key := "flash:" + sessionID
	if err := client.RPush(ctx, key, raw).Err(); err != nil {
		return err
	}
	return client.Expire(ctx, key, 10*time.Minute).Err()
}

// PopFlashes drains and returns the session's flash queue
func (r *redis) PopFlashes(ctx context.Context, sessionID string) ([]model.Flash, error) {
	client := redisclient.Get()
	if client == nil {
		return nil, nil
	}
	key := "flash:" + sessionID

	raws, err := client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(raws) == 0 {
		return nil, nil
	}
	if err := client.Del(ctx, key).Err(); err != nil {
		return nil, err
	}

	flashes := make([]model.Flash, 0, len(raws))
	for _, raw := range raws {
		var f model.Flash
		if err := json.Unmarshal([]byte(raw), &f); err != nil {
			continue
		}
		flashes = append(flashes, f)
	}
	return flashes, nil
}
