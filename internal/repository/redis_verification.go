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

// RedisVerificationStore keeps pending phone verifications in Redis. The
// code expires with its key; a separate per-phone key enforces the resend
// cooldown the countdown timer on the OTP screen used to fake client-side.
type RedisVerificationStore struct {
	redis redis.UniversalClient
}

func NewRedisVerificationStore(client redis.UniversalClient) *RedisVerificationStore {
	return &RedisVerificationStore{
		redis: client,
	}
}

func (s *RedisVerificationStore) Set(
	ctx context.Context,
	v domain.Verification,
	ttl, resendCooldown time.Duration) error {

	ok, err := s.redis.SetNX(ctx, cooldownKey(v.Phone), v.ID, resendCooldown).Result()
	if err != nil {
		return err
	}

	if !ok {
		return domain.ErrVerificationThrottled
	}

	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return s.redis.Set(ctx, verificationKey(v.ID), payload, ttl).Err()
}

func (s *RedisVerificationStore) Get(ctx context.Context, id string) (*domain.Verification, error) {
	payload, err := s.redis.Get(ctx, verificationKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrVerificationExpired
		}

		return nil, err
	}

	var v domain.Verification

	err = json.Unmarshal(payload, &v)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func (s *RedisVerificationStore) Delete(ctx context.Context, id string) error {
	return s.redis.Del(ctx, verificationKey(id)).Err()
}

func verificationKey(id string) string {
	return fmt.Sprintf("otp:%s", id)
}

func cooldownKey(phone string) string {
	return fmt.Sprintf("otp_cooldown:%s", phone)
}
