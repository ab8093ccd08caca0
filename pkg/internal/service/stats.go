package service

import (
	"context"
	"sort"
	"time"

	"github.com/yeisme/csvault/pkg/internal/tabular"
	"github.com/yeisme/csvault/pkg/internal/types"
)

// StatsService 提供统计计算（基于存储库元数据的全量扫描）。
type StatsService struct{ *DatasetService }

func NewStatsService(c context.Context) *StatsService { return &StatsService{NewDatasetService(c)} }

const (
	hoursPerDay      = 24
	defaultTrendDays = 14
	maxTrendDays     = 60
	oneMB            = 1 << 20
	tenMB            = 10 << 20
	hundredMB        = 100 << 20
)

// Summary 汇总数据集数量、行数、列数与占用字节.
func (s *StatsService) Summary(ctx context.Context) (types.StatsSummary, error) {
	datasets, err := s.store.List(ctx)
	if err != nil {
		return types.StatsSummary{}, err
	}

	out := types.StatsSummary{TotalDatasets: len(datasets)}

	for _, d := range datasets {
		out.TotalRows += d.RowCount
		out.TotalColumns += len(d.ColumnNames)
		out.TotalSize += d.FileSize

		if d.RowCount == 0 {
			out.EmptyDatasets++
		}
	}

	return out, nil
}

// ColumnsByType 按列类型聚合：每种类型的列总数与含该类型的数据集数.
func (s *StatsService) ColumnsByType(ctx context.Context) ([]types.StatsColumnTypeItem, error) {
	datasets, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	columns := make(map[string]int)
	holders := make(map[string]int)

	for _, d := range datasets {
		seen := make(map[string]bool)

		for _, t := range d.ColumnTypes {
			columns[t]++
			seen[t] = true
		}

		for t := range seen {
			holders[t]++
		}
	}

	out := make([]types.StatsColumnTypeItem, 0, len(columns))
	for t, n := range columns {
		out = append(out, types.StatsColumnTypeItem{Type: t, Columns: n, Datasets: holders[t]})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })

	return out, nil
}

// SizeBuckets 按内容大小分桶（可根据需要调整分桶）。
func (s *StatsService) SizeBuckets(ctx context.Context) ([]types.StatsSizeBucket, error) {
	datasets, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	buckets := []types.StatsSizeBucket{
		{Name: "0-1MB", Min: 0, Max: oneMB},
		{Name: "1-10MB", Min: oneMB, Max: tenMB},
		{Name: "10-100MB", Min: tenMB, Max: hundredMB},
		{Name: ">=100MB", Min: hundredMB, Max: -1},
	}

	for _, d := range datasets {
		for i := range buckets {
			if d.FileSize < buckets[i].Min {
				continue
			}

			if buckets[i].Max > 0 && d.FileSize >= buckets[i].Max {
				continue
			}

			buckets[i].Count++
			buckets[i].Size += d.FileSize

			break
		}
	}

	return buckets, nil
}

// UploadTrend 按天统计最近 N 天的上传数量与大小，缺失的日期补零.
func (s *StatsService) UploadTrend(ctx context.Context, days int) ([]types.StatsTrendPoint, error) {
	if days <= 0 || days > maxTrendDays {
		days = defaultTrendDays
	}

	datasets, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now().UTC().AddDate(0, 0, -days+1).Truncate(hoursPerDay * time.Hour)

	data := make(map[string]struct {
		C int
		S int64
	})

	for _, d := range datasets {
		if d.CreatedAt.Before(start) {
			continue
		}

		key := d.CreatedAt.UTC().Format("2006-01-02")
		v := data[key]
		v.C++
		v.S += d.FileSize
		data[key] = v
	}

	out := make([]types.StatsTrendPoint, 0, days)

	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i).Format("2006-01-02")
		if v, ok := data[day]; ok {
			out = append(out, types.StatsTrendPoint{Date: day, Count: v.C, Size: v.S})
		} else {
			out = append(out, types.StatsTrendPoint{Date: day})
		}
	}

	return out, nil
}

// NumericDatasets 统计至少含一个数值列的数据集数，用于仪表盘.
func (s *StatsService) NumericDatasets(ctx context.Context) (int, error) {
	datasets, err := s.store.List(ctx)
	if err != nil {
		return 0, err
	}

	n := 0

	for _, d := range datasets {
		for _, t := range d.ColumnTypes {
			if tabular.IsNumeric(t) {
				n++

				break
			}
		}
	}

	return n, nil
}

// Dashboard 聚合各项统计，供单个端点一次返回.
func (s *StatsService) Dashboard(ctx context.Context) (map[string]any, error) {
	summary, err := s.Summary(ctx)
	if err != nil {
		return nil, err
	}

	buckets, _ := s.SizeBuckets(ctx)
	columnTypes, _ := s.ColumnsByType(ctx)
	trend, _ := s.UploadTrend(ctx, defaultTrendDays)
	numeric, _ := s.NumericDatasets(ctx)

	return map[string]any{
		"summary":          summary,
		"size_buckets":     buckets,
		"column_types":     columnTypes,
		"trend":            trend,
		"numeric_datasets": numeric,
	}, nil
}
