package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"time"
)

const apiPrefix = "/api/v1"

// Dataset 服务端返回的数据集元数据.
type Dataset struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	StoragePath string    `json:"storage_path"`
	FileSize    int64     `json:"file_size"`
	RowCount    int       `json:"row_count"`
	ColumnNames []string  `json:"column_names"`
	ColumnTypes []string  `json:"column_types"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListResponse 数据集列表响应.
type ListResponse struct {
	Datasets []Dataset `json:"datasets"`
	Total    int       `json:"total"`
}

// CreateResponse 上传成功响应.
type CreateResponse struct {
	ID      string  `json:"id"`
	Message string  `json:"message"`
	Dataset Dataset `json:"dataset"`
}

// DeleteResponse 删除成功响应.
type DeleteResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// ListDatasets 列出全部数据集.
func (c *Client) ListDatasets(ctx context.Context) ([]Dataset, error) {
	var out ListResponse
	if err := c.getJSON(ctx, http.MethodGet, apiPrefix+"/datasets", &out); err != nil {
		return nil, err
	}

	return out.Datasets, nil
}

// UploadDataset 以 multipart 表单上传一个 CSV 数据集.
func (c *Client) UploadDataset(ctx context.Context, filename string, content io.Reader) (*CreateResponse, error) {
	var buf bytes.Buffer

	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, fmt.Errorf("build multipart form: %w", err)
	}

	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("read upload content: %w", err)
	}

	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("build multipart form: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, apiPrefix+"/datasets", &buf, mw.FormDataContentType())
	if err != nil {
		return nil, err
	}

	var out CreateResponse
	if err := decodeJSON(resp, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// GetDataset 获取单个数据集的元数据.
func (c *Client) GetDataset(ctx context.Context, id string) (*Dataset, error) {
	var out Dataset
	if err := c.getJSON(ctx, http.MethodGet, datasetPath(id), &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// DeleteDataset 删除数据集.
func (c *Client) DeleteDataset(ctx context.Context, id string) (*DeleteResponse, error) {
	var out DeleteResponse
	if err := c.getJSON(ctx, http.MethodDelete, datasetPath(id), &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ExportExcel 下载数据集的 Excel 导出并写入 w，返回写入的字节数.
func (c *Client) ExportExcel(ctx context.Context, id string, w io.Writer) (int64, error) {
	return c.download(ctx, datasetPath(id)+"/excel", w)
}

// ExportPlot 下载数据集数值列的 PDF 图表并写入 w，返回写入的字节数.
func (c *Client) ExportPlot(ctx context.Context, id string, w io.Writer) (int64, error) {
	return c.download(ctx, datasetPath(id)+"/plot", w)
}

// download 下载二进制导出产物到 w.
func (c *Client) download(ctx context.Context, path string, w io.Writer) (int64, error) {
	resp, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, fmt.Errorf("read response: %w", err)
	}

	return n, nil
}

func datasetPath(id string) string {
	return apiPrefix + "/datasets/" + url.PathEscape(id)
}
