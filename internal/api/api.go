package api

import (
	"context"
	"net/http"

	analyticsHandler "redeem-server/internal/analytics/handler"
	authHandler "redeem-server/internal/auth/handler"
	lanesHandler "redeem-server/internal/lanes/handler"
	merchHandler "redeem-server/internal/merch/handler"
	"redeem-server/internal/observability"
	usersHandler "redeem-server/internal/users/handler"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether the service can reach its database.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type API struct {
	router           *gin.RouterGroup
	health           HealthChecker
	authHandler      authHandler.Handler
	merchHandler     merchHandler.Handler
	laneHandler      lanesHandler.Handler
	analyticsHandler analyticsHandler.Handler
	userHandler      usersHandler.Handler
	rateLimit        gin.HandlerFunc
}

func New(
	router *gin.RouterGroup,
	health HealthChecker,
	authHandler authHandler.Handler,
	merchHandler merchHandler.Handler,
	laneHandler lanesHandler.Handler,
	analyticsHandler analyticsHandler.Handler,
	userHandler usersHandler.Handler,
	rateLimit gin.HandlerFunc,
) API {
	if rateLimit == nil {
		rateLimit = func(c *gin.Context) { c.Next() }
	}
	return API{
		router:           router,
		health:           health,
		authHandler:      authHandler,
		merchHandler:     merchHandler,
		laneHandler:      laneHandler,
		analyticsHandler: analyticsHandler,
		userHandler:      userHandler,
		rateLimit:        rateLimit,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	a.router.GET("/metrics", observability.MetricsHandler())

	apiGroup := a.router.Group("/api")
	{
		merchGroup := apiGroup.Group("/merch")
		merchGroup.GET("/catalog", a.merchHandler.HandleListCatalog)

		signedIn := merchGroup.Group("", a.authHandler.HandleJWTMiddleware, a.rateLimit)
		signedIn.POST("/quote", a.merchHandler.HandleQuote)
		signedIn.POST("/redeem", a.merchHandler.HandleRedeem)
	}
	userGroup := apiGroup.Group("/user", a.authHandler.HandleJWTMiddleware)
	{
		userGroup.GET("/profile", a.userHandler.HandleGetProfile)
		userGroup.GET("/orders", a.userHandler.HandleListOrders)
	}
	adminGroup := apiGroup.Group("/admin", a.authHandler.HandleJWTMiddleware, a.authHandler.HandleRequireAdmin)
	{
		adminGroup.GET("/metrics", a.analyticsHandler.HandleGetMetrics)
		adminGroup.GET("/lanes/impact", a.laneHandler.HandleListByImpact)
		adminGroup.GET("/lanes/:lane_id", a.laneHandler.HandleGetLane)
		adminGroup.POST("/lanes/:lane_id/state", a.laneHandler.HandleTransitionState)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		if err := a.health.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "database unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
