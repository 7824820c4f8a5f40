package bootstrap

import (
	"fmt"

	"paylink/pkg/config"
	"paylink/pkg/redis"
)

// SetupRedis initializes the Redis connection backing the rate limiter.
func SetupRedis() {
	redis.ConnectRedis(
		fmt.Sprintf("%v:%v", config.GetString("redis.host"), config.GetString("redis.port")),
		config.GetString("redis.username"),
		config.GetString("redis.password"),
		config.GetInt("redis.database"),
	)
}
