package handle

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/csvault/pkg/internal/service"
	"github.com/yeisme/csvault/pkg/log"
)

const defaultTrendDays = 14

// doStats 是一个通用封装：
//  1. 创建 StatsService
//  2. 统一错误处理与 JSON 输出
//
// 回调 fn 中负责具体业务逻辑与返回数据（可返回任意 JSON-able 结构）。
func doStats(c *gin.Context, errLogMsg string, fn func(svc *service.StatsService) (any, error)) {
	l := log.Logger()

	svc := service.NewStatsService(c.Request.Context())

	data, err := fn(svc)
	if err != nil {
		if errLogMsg == "" {
			errLogMsg = "stats handle failed"
		}

		l.Error().Err(err).Msg(errLogMsg)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, data)
}

// GetDatasetsStats 汇总数据集统计。
//
//	@Summary	数据集统计汇总
//	@Tags		统计
//	@Produce	json
//	@Success	200	{object}	types.StatsSummary
//	@Failure	500	{object}	map[string]string
//	@Router		/api/v1/stats/datasets [get]
func GetDatasetsStats(c *gin.Context) {
	doStats(c, "datasets summary failed", func(svc *service.StatsService) (any, error) {
		return svc.Summary(c.Request.Context())
	})
}

// GetDatasetsStatsByType 按列类型聚合。
//
//	@Summary	列类型分布
//	@Tags		统计
//	@Produce	json
//	@Success	200	{array}		types.StatsColumnTypeItem
//	@Failure	500	{object}	map[string]string
//	@Router		/api/v1/stats/datasets/types [get]
func GetDatasetsStatsByType(c *gin.Context) {
	doStats(c, "columns by type failed", func(svc *service.StatsService) (any, error) {
		return svc.ColumnsByType(c.Request.Context())
	})
}

// GetDatasetsStatsSizeBuckets 按大小分桶。
//
//	@Summary	数据集大小分桶
//	@Tags		统计
//	@Produce	json
//	@Success	200	{array}		types.StatsSizeBucket
//	@Failure	500	{object}	map[string]string
//	@Router		/api/v1/stats/datasets/sizes [get]
func GetDatasetsStatsSizeBuckets(c *gin.Context) {
	doStats(c, "size buckets failed", func(svc *service.StatsService) (any, error) {
		return svc.SizeBuckets(c.Request.Context())
	})
}

// GetDatasetsStatsTrend 最近 N 天的上传趋势。
//
//	@Summary	上传趋势
//	@Tags		统计
//	@Produce	json
//	@Param		days	query		int	false	"天数（默认14，上限60）"
//	@Success	200		{array}		types.StatsTrendPoint
//	@Failure	500		{object}	map[string]string
//	@Router		/api/v1/stats/datasets/trend [get]
func GetDatasetsStatsTrend(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(defaultTrendDays)))

	doStats(c, "upload trend failed", func(svc *service.StatsService) (any, error) {
		return svc.UploadTrend(c.Request.Context(), days)
	})
}

// GetStatsDashboard 聚合仪表盘数据。
//
//	@Summary	统计仪表盘
//	@Tags		统计
//	@Produce	json
//	@Success	200	{object}	map[string]any
//	@Failure	500	{object}	map[string]string
//	@Router		/api/v1/stats/dashboard [get]
func GetStatsDashboard(c *gin.Context) {
	doStats(c, "dashboard failed", func(svc *service.StatsService) (any, error) {
		return svc.Dashboard(c.Request.Context())
	})
}
