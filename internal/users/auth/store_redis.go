// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.ngo.dev@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/minhngo/folio/internal/platform/constants"
)

// # Attempt Repository

// RedisAttemptRepository implements AttemptRepository using Redis counters.
type RedisAttemptRepository struct {
	client *redis.Client
}

// NewAttemptRepository creates a new Redis-backed AttemptRepository.
func NewAttemptRepository(client *redis.Client) *RedisAttemptRepository {
	return &RedisAttemptRepository{client: client}
}

/*
Increment bumps the failed-attempt counter and returns the new value.

Description: The TTL window is armed only when the counter is created, so a
burst of failures shares a single expiry.

Parameters:
  - context: context.Context
  - key: string

Returns:
  - int64: Count after increment
  - error: Execution errors
*/
func (repository *RedisAttemptRepository) Increment(context context.Context, key string) (int64, error) {
	redisKey := constants.RedisPrefixLoginAttempts + key

	count, err := repository.client.Incr(context, redisKey).Result()
	if err != nil {
		return 0, fmt.Errorf("redis_attempt_incr_failed: %w", err)
	}

	// Arm the expiry only on the first failure of the window
	if count == 1 {
		if err := repository.client.Expire(context, redisKey, constants.LoginAttemptWindow).Err(); err != nil {
			return count, fmt.Errorf("redis_attempt_expire_failed: %w", err)
		}
	}

	return count, nil
}

/*
Count returns the current failed-attempt count for the given key.

Parameters:
  - context: context.Context
  - key: string

Returns:
  - int64: Current count, 0 when the key is absent
  - error: Retrieval failures
*/
func (repository *RedisAttemptRepository) Count(context context.Context, key string) (int64, error) {
	redisKey := constants.RedisPrefixLoginAttempts + key

	count, err := repository.client.Get(context, redisKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("redis_attempt_get_failed: %w", err)
	}

	return count, nil
}

/*
Reset clears the counter after a successful login.

Parameters:
  - context: context.Context
  - key: string

Returns:
  - error: Deletion failures
*/
func (repository *RedisAttemptRepository) Reset(context context.Context, key string) error {
	redisKey := constants.RedisPrefixLoginAttempts + key

	if err := repository.client.Del(context, redisKey).Err(); err != nil {
		return fmt.Errorf("redis_attempt_reset_failed: %w", err)
	}

	return nil
}
