package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisHistory implements History on a capped Redis list, so evaluation
// outcomes survive process restarts and can be shared across replicas.
type RedisHistory struct {
	client   *redis.Client
	key      string
	capacity int
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Addr     string // Redis server address (e.g., "localhost:6379")
	Password string // Redis password (if any)
	DB       int    // Redis database number
	Key      string // List key holding the history
	Capacity int    // Maximum retained entries
}

// NewRedisHistory creates a Redis-backed history.
func NewRedisHistory(config *RedisConfig) *RedisHistory {
	if config == nil {
		config = &RedisConfig{}
	}
	if config.Addr == "" {
		config.Addr = "localhost:6379"
	}
	if config.Key == "" {
		config.Key = "priorauth:eval:history"
	}
	if config.Capacity <= 0 {
		config.Capacity = DefaultCapacity
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	return &RedisHistory{
		client:   client,
		key:      config.Key,
		capacity: config.Capacity,
	}
}

func (h *RedisHistory) Append(ctx context.Context, entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal history entry: %w", err)
	}

	pipe := h.client.TxPipeline()
	pipe.LPush(ctx, h.key, data)
	pipe.LTrim(ctx, h.key, 0, int64(h.capacity-1))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store history entry in Redis: %w", err)
	}
	return nil
}

func (h *RedisHistory) Recent(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 || n > h.capacity {
		n = h.capacity
	}
	raw, err := h.client.LRange(ctx, h.key, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read history from Redis: %w", err)
	}

	entries := make([]Entry, 0, len(raw))
	for _, item := range raw {
		var entry Entry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal history entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (h *RedisHistory) Len(ctx context.Context) (int, error) {
	count, err := h.client.LLen(ctx, h.key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count history entries in Redis: %w", err)
	}
	return int(count), nil
}

// Close releases the underlying Redis connection.
func (h *RedisHistory) Close() error {
	return h.client.Close()
}
