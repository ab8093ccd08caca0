// Package handle 提供请求处理器的实现，用于处理HTTP请求.
package handle

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/csvault/pkg/internal/service"
	"github.com/yeisme/csvault/pkg/log"
	"github.com/yeisme/csvault/pkg/rule"
)

func DefaultHandler(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{"message": "Not Implemented"})
}

// checkDatasetID 校验路径参数中的数据集 id；格式非法的 id 等同于不存在.
func checkDatasetID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if err := rule.ValidateVar(id, "dataset_id"); err != nil {
		log.Logger().Warn().Err(err).Str("id", id).Msg("invalid dataset id")
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("dataset %s not found", id)})

		return "", false
	}

	return id, true
}

// respondError 将服务层错误映射为 HTTP 状态码：格式与解析问题归为调用方
// 错误，未知数据集归为 404，其余一律视为服务器内部错误.
func respondError(c *gin.Context, err error) {
	l := log.Logger()

	var (
		invalidFormat *service.InvalidFormatError
		parseErr      *service.ParseError
		notFound      *service.NotFoundError
	)

	switch {
	case errors.As(err, &invalidFormat), errors.As(err, &parseErr):
		l.Warn().Err(err).Msg("rejected dataset request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &notFound):
		l.Warn().Err(err).Msg("dataset not found")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		l.Error().Err(err).Msg("dataset request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
