package utils

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Revoked session key: session:revoked:{jti}
const keySessionRevoked = "session:revoked:"

// TokenStore is the logout denylist. A revoked token id stays listed
// until the token itself would have expired.
type TokenStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type RedisTokenStore struct {
	Client *redis.Client
}

func NewRedisTokenStore(addr string) *RedisTokenStore {
	r := redis.NewClient(&redis.Options{Addr: addr})
	return &RedisTokenStore{Client: r}
}

func (s *RedisTokenStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.Client.Set(ctx, keySessionRevoked+jti, "1", ttl).Err()
}

func (s *RedisTokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.Client.Exists(ctx, keySessionRevoked+jti).Result()
	return n > 0, err
}

func (s *RedisTokenStore) Close() error {
	return s.Client.Close()
}

// MemoryTokenStore keeps the denylist in process memory. Used when no
// Redis address is configured, and by the handler tests.
type MemoryTokenStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{revoked: make(map[string]time.Time)}
}

func (s *MemoryTokenStore) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[jti] = time.Now().Add(ttl)
	return nil
}

func (s *MemoryTokenStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	deadline, ok := s.revoked[jti]
	if !ok {
		return false, nil
	}
	if time.Now().After(deadline) {
		delete(s.revoked, jti)
		return false, nil
	}
	return true, nil
}
