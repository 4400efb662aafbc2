package parser

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	einoParser "github.com/cloudwego/eino/components/document/parser"
)

// EinoPDFTextExtractor 使用 Eino PDF Parser 提取文本
type EinoPDFTextExtractor struct {
	parser *pdf.PDFParser
	logger *log.Logger
}

// EinoPDFOption PDF提取器的配置选项
type EinoPDFOption func(*EinoPDFTextExtractor)

// WithEinoLogger 配置自定义日志记录器
func WithEinoLogger(logger *log.Logger) EinoPDFOption {
	return func(e *EinoPDFTextExtractor) {
		e.logger = logger
	}
}

// NewEinoPDFTextExtractor 初始化 Eino PDF 文本提取器
// 不按页分割，整个文档的文本作为单个字符串返回
func NewEinoPDFTextExtractor(ctx context.Context, options ...EinoPDFOption) (*EinoPDFTextExtractor, error) {
	p, err := pdf.NewPDFParser(ctx, &pdf.Config{
		ToPages: false,
	})
	if err != nil {
		return nil, fmt.Errorf("创建Eino PDF解析器失败: %w", err)
	}

	extractor := &EinoPDFTextExtractor{
		parser: p,
		logger: log.New(os.Stderr, "[PDF解析器] ", log.LstdFlags),
	}
	for _, option := range options {
		option(extractor)
	}
	return extractor, nil
}

// ExtractFromFile 从PDF文件提取文本和元数据
func (e *EinoPDFTextExtractor) ExtractFromFile(ctx context.Context, filePath string) (string, map[string]interface{}, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", nil, fmt.Errorf("打开PDF文件失败 %s: %w", filePath, err)
	}
	defer file.Close()

	return e.ExtractFromReader(ctx, file, filePath)
}

// ExtractFromReader 从io.Reader提取完整纯文本和解析器元数据
func (e *EinoPDFTextExtractor) ExtractFromReader(ctx context.Context, reader io.Reader, uri string) (string, map[string]interface{}, error) {
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	extraMeta := map[string]interface{}{
		"source_uri":      uri,
		"extraction_time": time.Now().Format(time.RFC3339),
	}

	docs, err := e.parser.Parse(ctx, reader,
		einoParser.WithURI(uri),
		einoParser.WithExtraMeta(extraMeta),
	)

	duration := time.Since(startTime)
	if err != nil {
		e.logger.Printf("PDF提取失败: %s (用时 %.2f秒)", err, duration.Seconds())
		return "", extraMeta, fmt.Errorf("eino PDF解析失败 (URI %s): %w", uri, err)
	}
	if len(docs) == 0 {
		return "", extraMeta, fmt.Errorf("eino PDF解析无结果 (URI %s)", uri)
	}

	// 合并所有文档的内容（以防返回了多个）
	var fullContent string
	for i, doc := range docs {
		fullContent += doc.Content
		if i < len(docs)-1 {
			fullContent += "\n\n"
		}
	}

	metadata := map[string]interface{}{}
	if docs[0].MetaData != nil {
		metadata = docs[0].MetaData
	}
	for k, v := range extraMeta {
		metadata[k] = v
	}
	metadata["processing_duration_ms"] = duration.Milliseconds()
	metadata["text_length"] = len(fullContent)

	e.logger.Printf("PDF提取完成: %d 个字符 (用时 %.2f秒)", len(fullContent), duration.Seconds())
	return fullContent, metadata, nil
}
