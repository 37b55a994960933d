package theme

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/2beens/befit/internal/screen"

	"github.com/go-redis/redis/v8"
)

const modeKey = "befit::theme::mode"

type MemoryStore struct {
	mu   sync.RWMutex
	mode screen.Mode
}

func NewMemoryStore(initial screen.Mode) *MemoryStore {
	if initial == "" {
		initial = screen.DefaultMode
	}
	return &MemoryStore{mode: initial}
}

func (s *MemoryStore) Mode(_ context.Context) (screen.Mode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode, nil
}

func (s *MemoryStore) SetMode(_ context.Context, mode screen.Mode) error {
	s.mu.Lock()
	s.mode = mode
	s.mu.Unlock()
	return nil
}

// RedisStore keeps the mode in redis so every service instance agrees on it.
type RedisStore struct {
	redisClient *redis.Client
}

func NewRedisStore(redisClient *redis.Client) *RedisStore {
	return &RedisStore{
		redisClient: redisClient,
	}
}

func (s *RedisStore) Mode(ctx context.Context) (screen.Mode, error) {
	val, err := s.redisClient.Get(ctx, modeKey).Result()
	if errors.Is(err, redis.Nil) {
		return screen.DefaultMode, nil
	}
	if err != nil {
		return "", fmt.Errorf("get theme mode: %w", err)
	}

	mode, err := screen.ParseMode(val)
	if err != nil {
		// a garbage value must not break every screen
		return screen.DefaultMode, nil
	}
	return mode, nil
}

func (s *RedisStore) SetMode(ctx context.Context, mode screen.Mode) error {
	if err := s.redisClient.Set(ctx, modeKey, string(mode), 0).Err(); err != nil {
		return fmt.Errorf("set theme mode: %w", err)
	}
	return nil
}
