package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/GSSolutions-CPT/GSS-OS/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
)

// InterfaceRedisService defines the Redis cache/lock interface
type InterfaceRedisService interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	Delete(key string) error
	AcquireLock(key string, ttl time.Duration) (bool, error)
	ReleaseLock(key string) error
	Ping() error
}

// RedisService handles Redis operations
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})

	return &RedisService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// Set sets a key-value pair in Redis with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// Get gets a value from Redis by key
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(val), dest)
}

// Delete deletes a key from Redis
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// AcquireLock takes a leased lock via SETNX. Returns false when another
// holder already owns the lease.
func (s *RedisService) AcquireLock(key string, ttl time.Duration) (bool, error) {
	return s.Client.SetNX(s.Ctx, key, time.Now().UTC().Format(time.RFC3339), ttl).Result()
}

// ReleaseLock releases a lock taken with AcquireLock
func (s *RedisService) ReleaseLock(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// Ping verifies the Redis connection
func (s *RedisService) Ping() error {
	ctx, cancel := context.WithTimeout(s.Ctx, 5*time.Second)
	defer cancel()
	return s.Client.Ping(ctx).Err()
}
