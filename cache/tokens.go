package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wargital/api/config"
)

// Tokens is the refresh-token revocation store. Nil when Redis is not
// configured; callers must treat that as "nothing revoked".
var Tokens *TokenStore

type TokenStore struct {
	client *redis.Client
}

func Init() error {
	if config.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return err
	}

	Tokens = &TokenStore{client: client}
	return nil
}

func tokenKey(token string) string {
	sum := sha1.Sum([]byte(token))
	return "auth:revoked:" + hex.EncodeToString(sum[:])
}

// Revoke marks a refresh token unusable for the remainder of its life.
func (s *TokenStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, tokenKey(token), "1", ttl).Err()
}

func (s *TokenStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	res, err := s.client.Exists(ctx, tokenKey(token)).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}

func Shutdown() error {
	if Tokens == nil {
		return nil
	}
	return Tokens.client.Close()
}
