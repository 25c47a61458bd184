package slot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/session/domain"
)

type RedisSlot struct {
	client *redis.Client
}

func NewRedisSlot(client *redis.Client) *RedisSlot {
	return &RedisSlot{client: client}
}

func (r *RedisSlot) Load(ctx context.Context, clientID string) (*domain.User, error) {
	data, err := r.client.Get(ctx, slotKey(clientID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var user domain.User
	if err2 := json.Unmarshal(data, &user); err2 != nil {
		// Unreadable slot counts as no session; the caller starts unauthenticated
		return nil, ErrNoSession
	}

	return &user, nil
}

func (r *RedisSlot) Save(ctx context.Context, clientID string, user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal session failed: %w", err)
	}

	// Sessions have no expiry; logout is the only way out
	if err := r.client.Set(ctx, slotKey(clientID), string(data), 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisSlot) Clear(ctx context.Context, clientID string) error {
	if err := r.client.Del(ctx, slotKey(clientID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func slotKey(clientID string) string {
	return fmt.Sprintf("session:%s", clientID)
}
