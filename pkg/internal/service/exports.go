package service

import (
	"context"
	"errors"
	"io"

	"github.com/yeisme/csvault/pkg/internal/model"
	"github.com/yeisme/csvault/pkg/internal/storage/vault"
	"github.com/yeisme/csvault/pkg/internal/tabular"
	"github.com/yeisme/csvault/pkg/metrics"
)

// ExportExcel 将数据集导出为 xlsx 工作簿并写入 w，返回其元数据.
func (ds *DatasetService) ExportExcel(ctx context.Context, id string, w io.Writer) (*model.Dataset, error) {
	meta, frame, err := ds.frame(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := tabular.WriteExcel(frame, w); err != nil {
		return nil, err
	}

	metrics.ExportsTotal.WithLabelValues("excel").Inc()

	return meta, nil
}

// ExportPlot 将数据集的数值列渲染为 PDF 图表并写入 w，返回其元数据.
// 没有数值列的数据集导出占位页，而不是报错.
func (ds *DatasetService) ExportPlot(ctx context.Context, id string, w io.Writer) (*model.Dataset, error) {
	meta, frame, err := ds.frame(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := tabular.RenderPlots(frame, meta.Filename, w); err != nil {
		return nil, err
	}

	metrics.ExportsTotal.WithLabelValues("plot").Inc()

	return meta, nil
}

// frame 读取数据集内容并重新解析. 内容在创建时已通过严格解析，此处
// 失败说明存储中的文件被外部改动.
func (ds *DatasetService) frame(ctx context.Context, id string) (*model.Dataset, *tabular.Frame, error) {
	meta, content, err := ds.store.Content(ctx, id)
	if err != nil {
		if errors.Is(err, vault.ErrNotExist) {
			return nil, nil, ErrNotFound("dataset %s not found", id)
		}

		return nil, nil, err
	}

	frame, err := tabular.Parse(content)
	if err != nil {
		return nil, nil, ErrParse("corrupted file: %v", err)
	}

	return meta, frame, nil
}
