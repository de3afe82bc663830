package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nafees-s/tiket-api/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisSelectionStore keeps the in-progress seat selection bound to a
// session, mirroring the booking screen's transient state. Selections expire
// on their own; abandoning a screen needs no cleanup call.
type RedisSelectionStore struct {
	redis redis.UniversalClient
}

func NewRedisSelectionStore(client redis.UniversalClient) *RedisSelectionStore {
	return &RedisSelectionStore{
		redis: client,
	}
}

func (s *RedisSelectionStore) Get(ctx context.Context, sessionID string) (*domain.Selection, error) {
	payload, err := s.redis.Get(ctx, selectionKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSelectionNotFound
		}

		return nil, err
	}

	var sel domain.Selection

	err = json.Unmarshal(payload, &sel)
	if err != nil {
		return nil, err
	}

	return &sel, nil
}

func (s *RedisSelectionStore) Put(
	ctx context.Context,
	sessionID string,
	sel domain.Selection,
	ttl time.Duration) error {

	payload, err := json.Marshal(sel)
	if err != nil {
		return err
	}

	return s.redis.Set(ctx, selectionKey(sessionID), payload, ttl).Err()
}

func (s *RedisSelectionStore) Delete(ctx context.Context, sessionID string) error {
	return s.redis.Del(ctx, selectionKey(sessionID)).Err()
}

func selectionKey(sessionID string) string {
	return fmt.Sprintf("selection:%s", sessionID)
}
