package bootstrap

import (
	"net/http"
	"strings"

	"paylink/app/http/middlewares"
	"paylink/pkg/paylink"
	"paylink/routes"

	"github.com/gin-gonic/gin"
)

// SetupRoute configures the router: global middlewares, the API routes, and
// the 404 handler.
func SetupRoute(router *gin.Engine, service *paylink.Service) {
	registerGlobalMiddleWare(router)

	routes.RegisterAPIRoutes(router, service)

	setup404Handler(router)
}

func registerGlobalMiddleWare(router *gin.Engine) {
	router.Use(
		middlewares.Logger(),
		middlewares.Recovery(),
	)
}

// setup404Handler answers unknown routes with HTML or JSON depending on the
// Accept header.
func setup404Handler(router *gin.Engine) {
	router.NoRoute(func(c *gin.Context) {
		acceptString := c.Request.Header.Get("Accept")

		if strings.Contains(acceptString, "text/html") {
			c.String(http.StatusNotFound, "404 Not Found")
		} else {
			c.JSON(http.StatusNotFound, gin.H{
				"error_code":    404,
				"error_message": "route not defined, check the url and request method",
			})
		}
	})
}
