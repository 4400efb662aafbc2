package parser

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

// TikaTextExtractor 基于Apache Tika服务器的文本提取器
// Tika自行做格式嗅探，PDF之外的格式（如DOCX）也走这条路
type TikaTextExtractor struct {
	// Tika服务器地址，例如 http://localhost:9998
	ServerURL string
	// HTTP客户端，可配置超时
	Client *http.Client
	logger *log.Logger
}

// TikaOption 定义配置选项函数
type TikaOption func(*TikaTextExtractor)

// WithTikaTimeout 配置HTTP客户端超时时间
func WithTikaTimeout(timeout time.Duration) TikaOption {
	return func(e *TikaTextExtractor) {
		e.Client.Timeout = timeout
	}
}

// WithTikaLogger 配置自定义日志记录器
func WithTikaLogger(logger *log.Logger) TikaOption {
	return func(e *TikaTextExtractor) {
		e.logger = logger
	}
}

// NewTikaTextExtractor 创建Tika文本提取器
func NewTikaTextExtractor(serverURL string, options ...TikaOption) *TikaTextExtractor {
	extractor := &TikaTextExtractor{
		ServerURL: serverURL,
		Client:    &http.Client{Timeout: 30 * time.Second},
		logger:    log.New(os.Stderr, "[Tika提取器] ", log.LstdFlags),
	}
	for _, option := range options {
		option(extractor)
	}
	return extractor
}

// ExtractFromFile 从文件提取文本和元数据
func (e *TikaTextExtractor) ExtractFromFile(ctx context.Context, filePath string) (string, map[string]interface{}, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", nil, fmt.Errorf("打开文件失败 %s: %w", filePath, err)
	}
	defer file.Close()

	return e.ExtractFromReader(ctx, file, filePath)
}

// ExtractFromReader 把内容推给Tika服务器，以纯文本模式取回
func (e *TikaTextExtractor) ExtractFromReader(ctx context.Context, reader io.Reader, uri string) (string, map[string]interface{}, error) {
	startTime := time.Now()

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", nil, fmt.Errorf("读取文档内容失败: %w", err)
	}

	metadata := map[string]interface{}{
		"source_uri":      uri,
		"extraction_time": time.Now().Format(time.RFC3339),
	}

	url := fmt.Sprintf("%s/tika", e.ServerURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		return "", metadata, fmt.Errorf("创建HTTP请求失败: %w", err)
	}
	req.Header.Set("Accept", "text/plain")
	if uri != "" {
		req.Header.Set("X-Tika-Resource-Name", uri)
	}

	resp, err := e.Client.Do(req)
	if err != nil {
		return "", metadata, fmt.Errorf("请求Tika服务器失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", metadata, fmt.Errorf("Tika服务器返回状态 %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", metadata, fmt.Errorf("读取Tika响应失败: %w", err)
	}

	duration := time.Since(startTime)
	metadata["processing_duration_ms"] = duration.Milliseconds()
	metadata["text_length"] = len(body)

	e.logger.Printf("Tika提取完成: %d 个字符 (用时 %.2f秒)", len(body), duration.Seconds())
	return string(body), metadata, nil
}
