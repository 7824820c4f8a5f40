package routes

import (
	"paylink/app/http/controllers/api/v1/payments"
	"paylink/app/http/middlewares"
	"paylink/pkg/paylink"

	"github.com/gin-gonic/gin"
)

// Route rate limits.
const (
	// global per-IP cap
	GlobalRateLimit = "30000-H"
	// link creation cap
	CreateLinkLimit = "500-H"
	// webhook deliveries arrive in bursts when the gateway retries
	WebhookLimit = "6000-H"
	// read endpoints
	QueryLimit = "300-M"
)

// RegisterAPIRoutes registers all API routes.
func RegisterAPIRoutes(r *gin.Engine, service *paylink.Service) {
	v1 := r.Group("/v1")

	v1.Use(
		middlewares.Recovery(),
		middlewares.SecurityHeaders(),
		middlewares.LimitIP(GlobalRateLimit),
		middlewares.Cors(),
	)

	pc := payments.NewPaymentsController(service)

	links := v1.Group("/payment-links")
	{
		// POST /v1/payment-links
		links.POST("",
			middlewares.LimitPerRoute(CreateLinkLimit),
			pc.Store,
		)

		// GET /v1/payment-links/:link_id
		links.GET("/:link_id",
			middlewares.LimitPerRoute(QueryLimit),
			pc.Show,
		)

		// POST /v1/payment-links/:link_id/process
		links.POST("/:link_id/process",
			middlewares.LimitPerRoute(CreateLinkLimit),
			pc.Process,
		)

		// GET /v1/payment-links/:link_id/status polls the gateway directly
		links.GET("/:link_id/status",
			middlewares.LimitPerRoute(QueryLimit),
			pc.PollStatus,
		)
	}

	pay := v1.Group("/payments")
	{
		// POST /v1/payments/webhook receives the gateway's asynchronous notification.
		// The shared limiter keeps the count consistent across replicas.
		pay.POST("/webhook",
			middlewares.LimitRouteShared(WebhookLimit),
			pc.Webhook,
		)

		// POST /v1/payments/callback is the legacy callback path
		pay.POST("/callback",
			middlewares.LimitRouteShared(WebhookLimit),
			pc.Callback,
		)

		// GET /v1/payments/stats
		pay.GET("/stats",
			middlewares.LimitPerRoute(QueryLimit),
			pc.Stats,
		)
	}
}
