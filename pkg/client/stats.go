package client

import (
	"context"
	"net/http"
)

// StatsSummary 数据集总体统计.
type StatsSummary struct {
	TotalDatasets int   `json:"total_datasets"`
	TotalRows     int   `json:"total_rows"`
	TotalColumns  int   `json:"total_columns"`
	TotalSize     int64 `json:"total_size"`
	EmptyDatasets int   `json:"empty_datasets"`
}

// Stats 获取数据集总体统计.
func (c *Client) Stats(ctx context.Context) (*StatsSummary, error) {
	var out StatsSummary
	if err := c.getJSON(ctx, http.MethodGet, apiPrefix+"/stats/datasets", &out); err != nil {
		return nil, err
	}

	return &out, nil
}
