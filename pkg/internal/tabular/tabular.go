// Package tabular 解析 CSV 数据集并推断列类型，同时提供 Excel 与 PDF
// 图表两种导出格式.
//
// 解析是严格的：行字段数不一致、引号错误或空内容都视为坏数据并返回
// 错误，由上层归类为解析失败. 列类型从数据行推断，词汇表为
// string、int、float、bool，仅有表头的文件是合法的空数据集.
package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Frame 一份已解析的数据集：表头、数据行与逐列类型.
// Header 保留上传文件中的原始列名，包括重复名.
type Frame struct {
	Header  []string
	Records [][]string
	Types   []string
}

// Parse 严格解析 CSV 内容. 首行为表头，其余为数据行；任何行的字段数
// 与表头不一致、引号损坏或内容为空均返回错误.
func Parse(content []byte) (*Frame, error) {
	content = bytes.TrimPrefix(content, []byte("\ufeff"))

	r := csv.NewReader(bytes.NewReader(content))

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("empty csv: missing header row")
	}

	f := &Frame{
		Header:  records[0],
		Records: records[1:],
	}

	types, err := inferTypes(len(f.Header), f.Records)
	if err != nil {
		return nil, err
	}

	f.Types = types

	return f, nil
}

// RowCount 返回数据行数，不含表头.
func (f *Frame) RowCount() int {
	return len(f.Records)
}

// NumericColumns 返回数值列（int 或 float）的下标.
func (f *Frame) NumericColumns() []int {
	var cols []int

	for i, t := range f.Types {
		if IsNumeric(t) {
			cols = append(cols, i)
		}
	}

	return cols
}

// IsNumeric 判断列类型是否为数值.
func IsNumeric(typeName string) bool {
	return typeName == string(series.Int) || typeName == string(series.Float)
}

// inferTypes 推断列类型. 没有数据行时全部视为 string；列名用合成名
// 替换后交给 dataframe 检测，避免重复表头干扰推断.
func inferTypes(width int, records [][]string) ([]string, error) {
	types := make([]string, width)

	if len(records) == 0 {
		for i := range types {
			types[i] = string(series.String)
		}

		return types, nil
	}

	synthetic := make([]string, width)
	for i := range synthetic {
		synthetic[i] = fmt.Sprintf("c%d", i)
	}

	matrix := make([][]string, 0, len(records)+1)
	matrix = append(matrix, synthetic)
	matrix = append(matrix, records...)

	df := dataframe.LoadRecords(matrix,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("detect column types: %w", df.Err)
	}

	for i, t := range df.Types() {
		types[i] = string(t)
	}

	return types, nil
}
