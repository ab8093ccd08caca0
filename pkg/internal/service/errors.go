package service

import "fmt"

// InvalidFormatError 表示上传不是可接受的 CSV 文件.
type InvalidFormatError struct {
	Message string
}

func (e *InvalidFormatError) Error() string {
	return e.Message
}

// ErrInvalidFormat 构造 InvalidFormatError.
func ErrInvalidFormat(format string, args ...any) *InvalidFormatError {
	return &InvalidFormatError{Message: fmt.Sprintf(format, args...)}
}

// ParseError 表示内容声明为 CSV 但无法按数据集解析.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

// ErrParse 构造 ParseError.
func ErrParse(format string, args ...any) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError 表示请求的数据集不存在.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ErrNotFound 构造 NotFoundError.
func ErrNotFound(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}
