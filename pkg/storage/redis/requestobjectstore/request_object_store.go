/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package requestobjectstore keeps the published authorization request JWTs
// until the wallet fetches them. Redis TTL bounds the retrieval window.
package requestobjectstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/eudi-wallet/openid4vp-rp/pkg/service/openid4vp"
	"github.com/eudi-wallet/openid4vp-rp/pkg/storage/redis"
)

const keyPrefix = "openid4vp:request_object:"

// Store serves signed request objects by their one-time token.
type Store struct {
	redisClient *redis.Client
	ttl         time.Duration
}

// New creates the store. ttl is the retrieval window for a published request.
func New(redisClient *redis.Client, ttl time.Duration) *Store {
	return &Store{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// Put publishes a signed request object under its token.
func (s *Store) Put(ctx context.Context, token, requestObject string) error {
	if err := s.redisClient.API().Set(ctx, keyPrefix+token, requestObject, s.ttl).Err(); err != nil {
		return fmt.Errorf("publish request object: %w", err)
	}

	return nil
}

// Get returns the request object for a token. A token past its retrieval
// window is indistinguishable from one that never existed.
func (s *Store) Get(ctx context.Context, token string) (string, error) {
	value, err := s.redisClient.API().Get(ctx, keyPrefix+token).Result()

	if errors.Is(err, goredis.Nil) {
		return "", openid4vp.ErrDataNotFound
	}

	if err != nil {
		return "", fmt.Errorf("get request object: %w", err)
	}

	return value, nil
}

// Delete drops the request object once the session no longer needs it.
func (s *Store) Delete(ctx context.Context, token string) error {
	return s.redisClient.API().Del(ctx, keyPrefix+token).Err()
}
