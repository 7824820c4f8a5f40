// Package redis wraps the go-redis client used by the rate limiter.
package redis

import (
	"context"
	"fmt"
	"sync"
	"time"

	"paylink/pkg/logger"

	redis "github.com/redis/go-redis/v9"
)

const (
	// DefaultPoolSize is the connection pool size.
	DefaultPoolSize = 100
	// DefaultTimeout bounds individual operations.
	DefaultTimeout = 5 * time.Second
	// DefaultMinIdleConns keeps warm connections around.
	DefaultMinIdleConns = 10
	// DefaultMaxRetries is the per-command retry budget.
	DefaultMaxRetries = 3
	// DefaultIdleTimeout closes idle connections.
	DefaultIdleTimeout = 5 * time.Minute
)

// RedisClient wraps a go-redis client with a base context.
type RedisClient struct {
	Client  *redis.Client
	Context context.Context
}

// RedisConfig carries connection settings.
type RedisConfig struct {
	Address      string
	Username     string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	Timeout      time.Duration
}

var (
	once sync.Once

	// Redis is the shared client, set up by ConnectRedis.
	Redis *RedisClient
)

// ConnectRedis initializes the shared client once.
func ConnectRedis(address, username, password string, db int) {
	once.Do(func() {
		Redis = NewClient(RedisConfig{
			Address:      address,
			Username:     username,
			Password:     password,
			DB:           db,
			PoolSize:     DefaultPoolSize,
			MinIdleConns: DefaultMinIdleConns,
			Timeout:      DefaultTimeout,
		})
	})
}

// NewClient builds a client and verifies connectivity.
func NewClient(config RedisConfig) *RedisClient {
	rds := &RedisClient{
		Context: context.Background(),
	}

	rds.Client = redis.NewClient(&redis.Options{
		Addr:         config.Address,
		Username:     config.Username,
		Password:     config.Password,
		DB:           config.DB,
		PoolSize:     config.PoolSize,
		MinIdleConns: config.MinIdleConns,

		PoolTimeout:     config.Timeout,
		ConnMaxIdleTime: DefaultIdleTimeout,
		ConnMaxLifetime: 24 * time.Hour,

		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,

		MaxRetries:      DefaultMaxRetries,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
	})

	if err := rds.Ping(); err != nil {
		panic(fmt.Sprintf("redis connection failed: %v", err))
	}

	return rds
}

// Ping verifies the connection.
func (rds *RedisClient) Ping() error {
	ctx, cancel := context.WithTimeout(rds.Context, DefaultTimeout)
	defer cancel()

	_, err := rds.Client.Ping(ctx).Result()
	return err
}

// Set stores a key with an expiration.
func (rds *RedisClient) Set(key string, value interface{}, expiration time.Duration) bool {
	ctx, cancel := context.WithTimeout(rds.Context, DefaultTimeout)
	defer cancel()

	if err := rds.Client.Set(ctx, key, value, expiration).Err(); err != nil {
		logger.ErrorString("Redis", "Set", err.Error())
		return false
	}
	return true
}

// Get fetches a key, empty string when missing.
func (rds *RedisClient) Get(key string) string {
	ctx, cancel := context.WithTimeout(rds.Context, DefaultTimeout)
	defer cancel()

	result, err := rds.Client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			logger.ErrorString("Redis", "Get", err.Error())
		}
		return ""
	}
	return result
}

// Has reports whether a key exists.
func (rds *RedisClient) Has(key string) bool {
	ctx, cancel := context.WithTimeout(rds.Context, DefaultTimeout)
	defer cancel()

	n, err := rds.Client.Exists(ctx, key).Result()
	if err != nil {
		logger.ErrorString("Redis", "Has", err.Error())
		return false
	}
	return n > 0
}

// Del removes keys.
func (rds *RedisClient) Del(keys ...string) bool {
	ctx, cancel := context.WithTimeout(rds.Context, DefaultTimeout)
	defer cancel()

	if err := rds.Client.Del(ctx, keys...).Err(); err != nil {
		logger.ErrorString("Redis", "Del", err.Error())
		return false
	}
	return true
}
