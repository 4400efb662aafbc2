package processor

import (
	"context"
	"io"

	"resume-insight-go/internal/types"
)

// TextExtractor 文档文本提取协作方接口
// 管线只接收拉平后的文本，不接收结构化布局
type TextExtractor interface {
	// ExtractFromFile 从文件提取文本和元数据
	ExtractFromFile(ctx context.Context, filePath string) (string, map[string]interface{}, error)

	// ExtractFromReader 从io.Reader提取文本和元数据
	ExtractFromReader(ctx context.Context, reader io.Reader, uri string) (string, map[string]interface{}, error)
}

// Annotator NLP注释协作方接口，产出句子边界和命名实体span
// 管线将其视为黑盒，只消费span输出
type Annotator interface {
	Annotate(ctx context.Context, text string) ([]types.Sentence, []types.Entity, error)
}
