package router

import (
	"smartMenu/internal/middleware"
	"smartMenu/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetRecommendationRoutes(api *echo.Group, handler *rest.BanditHandler) {
	reco := api.Group("/recommendations")
	reco.GET("", handler.Recommend)
	reco.POST("/click", handler.Click)
	reco.GET("/ranked", handler.RecommendRanked)
	reco.POST("/ranked/click", handler.RankedClick)
}

func SetTenantRoutes(api *echo.Group, handler *rest.TenantHandler) {
	admin := api.Group("", middleware.AuthMiddleware(), middleware.AdminOnly())
	admin.POST("/tenants", handler.CreateTenant)
	admin.POST("/arms", handler.CreateArm)
	admin.GET("/tenants/:id/arms", handler.ListArms)
}

func SetMetricsRoute(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
