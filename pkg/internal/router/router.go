// Package router 管理路由配置，用于设置HTTP服务的路由规则.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/csvault/pkg/configs"
)

// RegisterRootRoute 注册根路径横幅，便于探活与识别服务.
func RegisterRootRoute(e *gin.Engine) {
	e.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "CSV Dataset API",
			"version": configs.AppVersion,
		})
	})
}
