package tabular

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/go-gota/gota/series"
)

const excelSheet = "Sheet1"

// WriteExcel 将数据集写为单工作表的 xlsx 文档. 数值列与布尔列按推断
// 类型写入类型化单元格，无法转换的值退回原始字符串.
func WriteExcel(f *Frame, w io.Writer) error {
	file := excelize.NewFile()
	defer func() {
		_ = file.Close()
	}()

	for col, name := range f.Header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("header cell %d: %w", col, err)
		}

		if err := file.SetCellValue(excelSheet, cell, name); err != nil {
			return fmt.Errorf("set header cell %s: %w", cell, err)
		}
	}

	for row, record := range f.Records {
		for col, raw := range record {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return fmt.Errorf("data cell %d,%d: %w", row, col, err)
			}

			if err := file.SetCellValue(excelSheet, cell, cellValue(f.Types[col], raw)); err != nil {
				return fmt.Errorf("set data cell %s: %w", cell, err)
			}
		}
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	return nil
}

// cellValue 按列类型转换单元格值.
func cellValue(typeName, raw string) any {
	switch typeName {
	case string(series.Int):
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return v
		}
	case string(series.Float):
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v
		}
	case string(series.Bool):
		if v, err := strconv.ParseBool(raw); err == nil {
			return v
		}
	}

	return raw
}
