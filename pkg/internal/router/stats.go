package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/csvault/pkg/internal/handle"
)

// RegisterStatsRoutes 注册统计相关路由.
func RegisterStatsRoutes(g *gin.RouterGroup) {
	// 统计路由
	statsRoutes := g.Group("/stats")
	{
		// 数据集统计汇总
		statsRoutes.GET("/datasets", handle.GetDatasetsStats)
		// 列类型分布
		statsRoutes.GET("/datasets/types", handle.GetDatasetsStatsByType)
		// 按文件大小分桶
		statsRoutes.GET("/datasets/sizes", handle.GetDatasetsStatsSizeBuckets)
		// 创建趋势
		statsRoutes.GET("/datasets/trend", handle.GetDatasetsStatsTrend)
		// 仪表盘聚合
		statsRoutes.GET("/dashboard", handle.GetStatsDashboard)
	}
}
