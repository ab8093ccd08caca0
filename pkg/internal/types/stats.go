package types

// StatsSummary 数据集总体统计.
type StatsSummary struct {
	TotalDatasets int   `json:"total_datasets"`
	TotalRows     int   `json:"total_rows"`
	TotalColumns  int   `json:"total_columns"`
	TotalSize     int64 `json:"total_size"`
	EmptyDatasets int   `json:"empty_datasets"`
}

// StatsColumnTypeItem 按列类型聚合.
type StatsColumnTypeItem struct {
	Type     string `json:"type"`
	Columns  int    `json:"columns"`
	Datasets int    `json:"datasets"`
}

// StatsSizeBucket 单个大小分桶.
type StatsSizeBucket struct {
	Name  string `json:"name"`
	Min   int64  `json:"min"`
	Max   int64  `json:"max"`
	Count int    `json:"count"`
	Size  int64  `json:"size"`
}

// StatsTrendPoint 趋势点（按日）.
type StatsTrendPoint struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
	Size  int64  `json:"size"`
}
