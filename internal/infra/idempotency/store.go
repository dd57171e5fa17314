// Package idempotency хранит ID уже обработанных событий платежного шлюза
package idempotency

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "court_booking:webhook_event:"

var (
	// ErrStore возвращается при ошибке обращения к Redis
	ErrStore = errors.New("idempotency: store error")
)

// RedisStore отмечает события в Redis ключами с TTL
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore создает хранилище поверх готового клиента
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// NewRedisClient создает клиента и проверяет соединение
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: ping %s: %w", ErrStore, addr, err)
	}
	return client, nil
}

// Acquire атомарно отмечает событие как обрабатываемое
// Возвращает false, если событие уже было отмечено ранее
func (s *RedisStore) Acquire(ctx context.Context, eventID string) (bool, error) {
	ok, err := s.client.SetNX(ctx, keyPrefix+eventID, time.Now().UTC().Format(time.RFC3339), s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("%w: Acquire - event_id=%s: %w", ErrStore, eventID, err)
	}
	return ok, nil
}

// Release снимает отметку, чтобы повторная доставка события была обработана
func (s *RedisStore) Release(ctx context.Context, eventID string) error {
	if err := s.client.Del(ctx, keyPrefix+eventID).Err(); err != nil {
		return fmt.Errorf("%w: Release - event_id=%s: %w", ErrStore, eventID, err)
	}
	return nil
}

// NopStore пропускает все события (Redis выключен)
type NopStore struct{}

func (NopStore) Acquire(context.Context, string) (bool, error) { return true, nil }

func (NopStore) Release(context.Context, string) error { return nil }
