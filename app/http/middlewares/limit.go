package middlewares

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"paylink/pkg/app"
	"paylink/pkg/limiter"
	"paylink/pkg/logger"
	"paylink/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"golang.org/x/time/rate"
)

const (
	// DefaultBurst is the in-memory limiter's burst allowance.
	DefaultBurst = 100
	// DefaultTimeout bounds the wait for a token.
	DefaultTimeout = 50 * time.Millisecond
)

var (
	limiters    sync.Map
	lastCleanup sync.Map
)

// RateLimitConfig configures one limiter instance.
type RateLimitConfig struct {
	Limit   string
	Burst   int
	Timeout time.Duration
}

// LimitIP limits requests per client IP.
//
// Accepted limit formats:
// - 5 reqs/second:   "5-S"
// - 10 reqs/minute:  "10-M"
// - 1000 reqs/hour:  "1000-H"
// - 2000 reqs/day:   "2000-D"
func LimitIP(limit string) gin.HandlerFunc {
	if app.IsTesting() {
		limit = "1000000-H"
	}

	config := RateLimitConfig{
		Limit:   limit,
		Burst:   DefaultBurst,
		Timeout: DefaultTimeout,
	}

	return createLimiterHandler(func(c *gin.Context) string {
		return limiter.GetKeyIP(c)
	}, config)
}

// LimitPerRoute limits requests per IP + route.
func LimitPerRoute(limit string) gin.HandlerFunc {
	if app.IsTesting() {
		limit = "1000000-H"
	}

	config := RateLimitConfig{
		Limit:   limit,
		Burst:   DefaultBurst,
		Timeout: DefaultTimeout,
	}

	return createLimiterHandler(func(c *gin.Context) string {
		return limiter.GetKeyRouteWithIP(c)
	}, config)
}

// LimitRouteShared limits per IP + route against the redis-backed store, so
// the count is shared across replicas. Used on webhook routes where the
// gateway retries against whichever instance answers.
func LimitRouteShared(limit string) gin.HandlerFunc {
	if app.IsTesting() {
		limit = "1000000-H"
	}

	// CheckRate expects the "5/S" style format
	formatted := strings.ReplaceAll(limit, "-", "/")

	return func(c *gin.Context) {
		key := limiter.GetKeyRouteWithIP(c)

		rate, err := limiter.CheckRate(c, key, formatted)
		if err != nil {
			logger.ErrorString("Limiter", "CheckRate", err.Error())
			// degrade gracefully, let the request through
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", cast.ToString(rate.Limit))
		c.Header("X-RateLimit-Remaining", cast.ToString(rate.Remaining))
		c.Header("X-RateLimit-Reset", cast.ToString(rate.Reset))

		if rate.Reached {
			abortTooManyRequests(c)
			return
		}

		c.Next()
	}
}

func abortTooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Response{
		Status:  response.Error,
		Message: "too many requests, please retry later",
		Error:   "Too Many Requests",
	})
}

func createLimiterHandler(keyFunc func(*gin.Context) string, config RateLimitConfig) gin.HandlerFunc {
	go cleanupLimiters()

	return func(c *gin.Context) {
		key := keyFunc(c)

		lim, err := getLimiter(key, config)
		if err != nil {
			logger.ErrorString("Limiter", "Create", err.Error())
			// degrade gracefully, let the request through
			c.Next()
			return
		}

		if !lim.Allow() {
			abortTooManyRequests(c)
			return
		}

		setRateLimitHeaders(c, lim)

		c.Next()
	}
}

func getLimiter(key string, config RateLimitConfig) (*rate.Limiter, error) {
	if lim, exists := limiters.Load(key); exists {
		return lim.(*rate.Limiter), nil
	}

	r, err := limiter.ParseLimit(config.Limit)
	if err != nil {
		return nil, err
	}

	lim := rate.NewLimiter(rate.Limit(r.Rate), config.Burst)

	actual, _ := limiters.LoadOrStore(key, lim)
	return actual.(*rate.Limiter), nil
}

func setRateLimitHeaders(c *gin.Context, lim *rate.Limiter) {
	c.Header("X-RateLimit-Limit", cast.ToString(float64(lim.Limit())))
	c.Header("X-RateLimit-Remaining", cast.ToString(lim.Tokens()))
	c.Header("X-RateLimit-Reset", cast.ToString(time.Now().Add(time.Second).Unix()))
}

func cleanupLimiters() {
	ticker := time.NewTicker(1 * time.Hour)
	for range ticker.C {
		now := time.Now()
		limiters.Range(func(key, value interface{}) bool {
			lastAccess, _ := lastCleanup.Load(key)
			if lastAccess == nil {
				lastCleanup.Store(key, now)
				return true
			}

			if now.Sub(lastAccess.(time.Time)) > 24*time.Hour {
				limiters.Delete(key)
				lastCleanup.Delete(key)
			}
			return true
		})
	}
}
