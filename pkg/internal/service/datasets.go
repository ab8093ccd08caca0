package service

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/yeisme/csvault/pkg/configs"
	"github.com/yeisme/csvault/pkg/internal/model"
	"github.com/yeisme/csvault/pkg/internal/storage/vault"
	"github.com/yeisme/csvault/pkg/internal/tabular"
	"github.com/yeisme/csvault/pkg/metrics"
)

// CreateDataset 摄取一份上传的 CSV 文件：校验扩展名、严格解析并推断
// 列类型，然后持久化内容与元数据. 任一步失败都不会留下半创建的数据集.
func (ds *DatasetService) CreateDataset(ctx context.Context, filename string, content []byte) (*model.Dataset, error) {
	if filename == "" {
		return nil, ErrInvalidFormat("No file was uploaded")
	}

	if !allowedExtension(filename) {
		return nil, ErrInvalidFormat("Only csv files are accepted")
	}

	frame, err := tabular.Parse(content)
	if err != nil {
		return nil, ErrParse("corrupted file: %v", err)
	}

	meta := model.Dataset{
		Filename:    filepath.Base(filename),
		FileSize:    int64(len(content)),
		RowCount:    frame.RowCount(),
		ColumnNames: frame.Header,
		ColumnTypes: frame.Types,
	}

	created, err := ds.store.Create(ctx, meta, content)
	if err != nil {
		return nil, err
	}

	metrics.DatasetsCreated.Inc()
	metrics.UploadBytes.Add(float64(len(content)))

	return created, nil
}

// ListDatasets 列出全部数据集元数据，按创建顺序排列.
func (ds *DatasetService) ListDatasets(ctx context.Context) ([]model.Dataset, error) {
	return ds.store.List(ctx)
}

// GetDataset 按 id 读取数据集元数据.
func (ds *DatasetService) GetDataset(ctx context.Context, id string) (*model.Dataset, error) {
	meta, err := ds.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, vault.ErrNotExist) {
			return nil, ErrNotFound("dataset %s not found", id)
		}

		return nil, err
	}

	return meta, nil
}

// DeleteDataset 删除数据集的内容与元数据，删除后 id 立即不可见.
func (ds *DatasetService) DeleteDataset(ctx context.Context, id string) error {
	if err := ds.store.Delete(ctx, id); err != nil {
		if errors.Is(err, vault.ErrNotExist) {
			return ErrNotFound("dataset %s not found", id)
		}

		return err
	}

	metrics.DatasetsDeleted.Inc()

	return nil
}

// allowedExtension 按配置的扩展名白名单校验文件名，不区分大小写.
func allowedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return false
	}

	for _, allowed := range configs.GetConfig().Vault.AllowedExts {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}

	return false
}
