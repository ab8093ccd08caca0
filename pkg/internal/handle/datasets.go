package handle

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/csvault/pkg/configs"
	"github.com/yeisme/csvault/pkg/internal/service"
	"github.com/yeisme/csvault/pkg/internal/types"
	"github.com/yeisme/csvault/pkg/log"
)

// CreateDataset 处理数据集上传.
//
//	@Summary		上传CSV数据集
//	@Description	上传单个CSV文件，严格解析并推断列类型，成功后返回数据集元数据
//	@Tags			数据集
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file						true	"上传的CSV文件"
//	@Success		200		{object}	types.CreateDatasetResponse	"创建成功响应"
//	@Failure		400		{object}	map[string]string			"格式或解析错误"
//	@Failure		500		{object}	map[string]string			"服务器内部错误"
//	@Router			/api/v1/datasets [post]
func CreateDataset(c *gin.Context) {
	l := log.Logger()

	file, err := c.FormFile("file")
	if err != nil {
		l.Warn().Err(err).Msg("failed to get uploaded file")
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file was uploaded"})

		return
	}

	maxBytes := configs.GetConfig().Vault.GetMaxUploadBytes()
	if file.Size > maxBytes {
		l.Warn().Int64("size", file.Size).Str("filename", file.Filename).Msg("upload exceeds size limit")
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("file exceeds %d byte limit", maxBytes)})

		return
	}

	src, err := file.Open()
	if err != nil {
		l.Error().Err(err).Msg("failed to open uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process file"})

		return
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		l.Error().Err(err).Msg("failed to read uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process file"})

		return
	}

	svc := service.NewDatasetService(c.Request.Context())

	created, err := svc.CreateDataset(c.Request.Context(), file.Filename, content)
	if err != nil {
		respondError(c, err)

		return
	}

	l.Info().
		Str("id", created.ID).
		Str("filename", created.Filename).
		Int("rows", created.RowCount).
		Msg("dataset created")

	c.JSON(http.StatusOK, types.CreateDatasetResponse{
		ID:      created.ID,
		Message: "Dataset create with success",
		Dataset: *created,
	})
}

// ListDatasets 列出全部数据集.
//
//	@Summary		列出数据集
//	@Description	返回全部数据集的元数据，按创建顺序排列
//	@Tags			数据集
//	@Produce		json
//	@Success		200	{object}	types.ListDatasetsResponse	"数据集列表"
//	@Failure		500	{object}	map[string]string			"服务器内部错误"
//	@Router			/api/v1/datasets [get]
func ListDatasets(c *gin.Context) {
	svc := service.NewDatasetService(c.Request.Context())

	datasets, err := svc.ListDatasets(c.Request.Context())
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, types.ListDatasetsResponse{
		Datasets: datasets,
		Total:    len(datasets),
	})
}

// GetDataset 获取单个数据集的元数据.
//
//	@Summary		获取数据集
//	@Description	按 id 返回单个数据集的元数据
//	@Tags			数据集
//	@Produce		json
//	@Param			id	path		string				true	"数据集ID"
//	@Success		200	{object}	model.Dataset		"数据集元数据"
//	@Failure		404	{object}	map[string]string	"数据集不存在"
//	@Failure		500	{object}	map[string]string	"服务器内部错误"
//	@Router			/api/v1/datasets/{id} [get]
func GetDataset(c *gin.Context) {
	id, ok := checkDatasetID(c)
	if !ok {
		return
	}

	svc := service.NewDatasetService(c.Request.Context())

	meta, err := svc.GetDataset(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, meta)
}

// DeleteDataset 删除数据集及其派生内容.
//
//	@Summary		删除数据集
//	@Description	删除数据集的内容与元数据，删除后 id 立即不可见
//	@Tags			数据集
//	@Produce		json
//	@Param			id	path		string						true	"数据集ID"
//	@Success		200	{object}	types.DeleteDatasetResponse	"删除成功响应"
//	@Failure		404	{object}	map[string]string			"数据集不存在"
//	@Failure		500	{object}	map[string]string			"服务器内部错误"
//	@Router			/api/v1/datasets/{id} [delete]
func DeleteDataset(c *gin.Context) {
	l := log.Logger()

	id, ok := checkDatasetID(c)
	if !ok {
		return
	}

	svc := service.NewDatasetService(c.Request.Context())

	if err := svc.DeleteDataset(c.Request.Context(), id); err != nil {
		respondError(c, err)

		return
	}

	l.Info().Str("id", id).Msg("dataset deleted")

	c.JSON(http.StatusOK, types.DeleteDatasetResponse{
		ID:      id,
		Message: "Dataset deleted with success",
	})
}
