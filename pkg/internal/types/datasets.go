// Package types 定义 API 的请求与响应载荷.
package types

import "github.com/yeisme/csvault/pkg/internal/model"

// CreateDatasetResponse 上传成功响应.
type CreateDatasetResponse struct {
	ID      string        `json:"id"`
	Message string        `json:"message"`
	Dataset model.Dataset `json:"dataset"`
}

// ListDatasetsResponse 数据集列表响应.
type ListDatasetsResponse struct {
	Datasets []model.Dataset `json:"datasets"`
	Total    int             `json:"total"`
}

// DeleteDatasetResponse 删除成功响应.
type DeleteDatasetResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
