// router/router.go

package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stockroom-app/api/controller"
	"github.com/stockroom-app/api/middleware"
)

func SetupRouter(
	controllers *controller.Controllers,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(rateLimitRequests, rateLimitDuration))

	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware())

	controllers.Access.RegisterRoutes(api)
	controllers.Permission.RegisterRoutes(api)
	controllers.Inventory.RegisterRoutes(api)

	return router
}
