package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/csvault/pkg/internal/handle"
)

// RegisterDatasetsRoutes 注册数据集操作相关路由.
func RegisterDatasetsRoutes(g *gin.RouterGroup) {
	// 数据集操作路由
	datasetsRoutes := g.Group("/datasets")
	{
		// 上传数据集
		datasetsRoutes.POST("", handle.CreateDataset)
		// 列出数据集
		datasetsRoutes.GET("", handle.ListDatasets)
		// 搜索（预留）
		datasetsRoutes.POST("/search", handle.DefaultHandler)

		// 单个数据集操作
		singleGroup := datasetsRoutes.Group("/:id")
		{
			// 获取元数据
			singleGroup.GET("", handle.GetDataset)
			// 删除数据集
			singleGroup.DELETE("", handle.DeleteDataset)
			// 导出 Excel 工作簿
			singleGroup.GET("/excel", handle.ExportDatasetExcel)
			// 导出图表 PDF
			singleGroup.GET("/plot", handle.ExportDatasetPlot)
		}
	}
}
