package services

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/Shaon99/ota-backend/internal/infrastructure/config"
)

// InterfaceRedisService is the cache store consumed by the response-cache
// middleware and the health endpoint.
type InterfaceRedisService interface {
	SetRaw(key string, value []byte, expiration time.Duration) error
	GetRaw(key string) ([]byte, error)
	Ping() error
}

// RedisService handles Redis operations
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) *RedisService {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})

	return &RedisService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// SetRaw stores raw bytes under key with an expiration
func (s *RedisService) SetRaw(key string, value []byte, expiration time.Duration) error {
	return s.Client.Set(s.Ctx, key, value, expiration).Err()
}

// GetRaw fetches raw bytes by key; returns redis.Nil on a cache miss
func (s *RedisService) GetRaw(key string) ([]byte, error) {
	return s.Client.Get(s.Ctx, key).Bytes()
}

// Ping checks Redis connectivity
func (s *RedisService) Ping() error {
	ctx, cancel := context.WithTimeout(s.Ctx, 2*time.Second)
	defer cancel()
	return s.Client.Ping(ctx).Err()
}
