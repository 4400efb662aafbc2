package processor

import (
	"errors"
	"fmt"
)

// 定义基础错误类型
var (
	// ErrInsufficientText 输入文本为空或低于最小长度阈值，不返回部分结果
	ErrInsufficientText = errors.New("简历文本过短，无法分析")
	// ErrExtractionFailed 文档文本提取协作方失败
	ErrExtractionFailed = errors.New("提取简历文本失败")
	// ErrAnnotationFailed NLP注释协作方失败
	ErrAnnotationFailed = errors.New("文本注释失败")
	// ErrUnsupportedFormat 上传文件扩展名不在支持列表内
	ErrUnsupportedFormat = errors.New("不支持的文件格式")
)

// AnalyzeError 包含详细错误信息的自定义错误
type AnalyzeError struct {
	RequestUUID string
	Op          string
	BaseErr     error
	Detail      string
}

func (e *AnalyzeError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (操作:%s, UUID:%s): %s", e.BaseErr, e.Op, e.RequestUUID, e.Detail)
	}
	return fmt.Sprintf("%s (操作:%s, UUID:%s)", e.BaseErr, e.Op, e.RequestUUID)
}

func (e *AnalyzeError) Unwrap() error {
	return e.BaseErr
}

// Is 实现 errors.Is 接口以支持错误比较
func (e *AnalyzeError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// 错误构造函数
func NewInsufficientTextError(uuid, detail string) error {
	return &AnalyzeError{
		RequestUUID: uuid,
		Op:          "validate",
		BaseErr:     ErrInsufficientText,
		Detail:      detail,
	}
}

func NewExtractionError(uuid, detail string) error {
	return &AnalyzeError{
		RequestUUID: uuid,
		Op:          "extract",
		BaseErr:     ErrExtractionFailed,
		Detail:      detail,
	}
}

func NewAnnotationError(uuid, detail string) error {
	return &AnalyzeError{
		RequestUUID: uuid,
		Op:          "annotate",
		BaseErr:     ErrAnnotationFailed,
		Detail:      detail,
	}
}

func NewUnsupportedFormatError(uuid, detail string) error {
	return &AnalyzeError{
		RequestUUID: uuid,
		Op:          "extract",
		BaseErr:     ErrUnsupportedFormat,
		Detail:      detail,
	}
}
