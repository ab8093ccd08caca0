// Package api 定义HTTP服务的接口注册，聚合各业务路由组.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/csvault/pkg/internal/router"
)

// RegisterRoutes 将全部业务路由注册到传入的 gin 引擎.
func RegisterRoutes(e *gin.Engine) *gin.Engine {
	router.RegisterRootRoute(e)

	v1 := e.Group("/api/v1")
	{
		router.RegisterDatasetsRoutes(v1)
		router.RegisterStatsRoutes(v1)
		router.RegisterHealthCheckRoute(v1)
	}

	return e
}
