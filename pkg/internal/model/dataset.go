// Package model 定义持久化的数据模型.
package model

import (
	"fmt"
	"time"

	"github.com/yeisme/csvault/pkg/rule"
)

// Dataset 数据集元数据，以 sidecar JSON 记录形式持久化在存储库中.
// 除 id 外所有派生字段（row_count、column_names、column_types）都在上传时
// 从内容一次性计算，之后不可单独修改.
type Dataset struct {
	// 创建时分配的 UUIDv4，唯一且删除后不复用
	ID string `json:"id" rule:"required,uuid4"`
	// 原始上传文件名
	Filename string `json:"filename" rule:"required"`
	// 内容文件相对存储库根目录的路径
	StoragePath string `json:"storage_path" rule:"required"`
	// 上传内容大小（字节）
	FileSize int64 `json:"file_size" rule:"min=0"`
	// 数据行数，不含表头
	RowCount int `json:"row_count" rule:"min=0"`
	// 表头列名，保持上传内容中的原始顺序
	ColumnNames []string `json:"column_names"`
	// 上传时推断的列类型，与 column_names 一一对应
	ColumnTypes []string `json:"column_types"`
	// 创建时间（UTC），仅在创建时设置
	CreatedAt time.Time `json:"created_at"`
}

// Validate 校验 sidecar 记录的结构完整性，读取损坏的记录时尽早失败.
func (d *Dataset) Validate() error {
	if len(d.ColumnNames) != len(d.ColumnTypes) {
		return fmt.Errorf("column names (%d) and types (%d) mismatch",
			len(d.ColumnNames), len(d.ColumnTypes))
	}

	return rule.ValidateStruct(d)
}
