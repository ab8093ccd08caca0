package handle

import (
	"bytes"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/csvault/pkg/internal/service"
	"github.com/yeisme/csvault/pkg/log"
)

const (
	excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType   = "application/pdf"
)

// ExportDatasetExcel 将数据集导出为 Excel 工作簿.
//
//	@Summary		导出Excel
//	@Description	按 id 将数据集内容导出为 xlsx 工作簿下载
//	@Tags			导出
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Param			id	path		string	true	"数据集ID"
//	@Success		200	{file}		file	"xlsx 工作簿"
//	@Failure		404	{object}	map[string]string	"数据集不存在"
//	@Failure		500	{object}	map[string]string	"服务器内部错误"
//	@Router			/api/v1/datasets/{id}/excel [get]
func ExportDatasetExcel(c *gin.Context) {
	l := log.Logger()

	id, ok := checkDatasetID(c)
	if !ok {
		return
	}

	svc := service.NewDatasetService(c.Request.Context())

	var buf bytes.Buffer

	meta, err := svc.ExportExcel(c.Request.Context(), id, &buf)
	if err != nil {
		respondError(c, err)

		return
	}

	l.Info().Str("id", id).Int("bytes", buf.Len()).Msg("excel export generated")

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportName(meta.Filename, ".xlsx")))
	c.Data(http.StatusOK, excelContentType, buf.Bytes())
}

// ExportDatasetPlot 将数据集的数值列导出为 PDF 图表.
//
//	@Summary		导出图表PDF
//	@Description	按 id 将数据集的每个数值列渲染为一页折线图，合成单个 PDF 下载
//	@Tags			导出
//	@Produce		application/pdf
//	@Param			id	path		string	true	"数据集ID"
//	@Success		200	{file}		file	"PDF 图表文档"
//	@Failure		404	{object}	map[string]string	"数据集不存在"
//	@Failure		500	{object}	map[string]string	"服务器内部错误"
//	@Router			/api/v1/datasets/{id}/plot [get]
func ExportDatasetPlot(c *gin.Context) {
	l := log.Logger()

	id, ok := checkDatasetID(c)
	if !ok {
		return
	}

	svc := service.NewDatasetService(c.Request.Context())

	var buf bytes.Buffer

	meta, err := svc.ExportPlot(c.Request.Context(), id, &buf)
	if err != nil {
		respondError(c, err)

		return
	}

	l.Info().Str("id", id).Int("bytes", buf.Len()).Msg("plot export generated")

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportName(meta.Filename, "_plots.pdf")))
	c.Data(http.StatusOK, pdfContentType, buf.Bytes())
}

// exportName 由原始文件名派生下载文件名.
func exportName(filename, suffix string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	if base == "" {
		base = "dataset"
	}

	return base + suffix
}
