package handler

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofrs/uuid/v5"

	"resume-insight-go/internal/logger"
	"resume-insight-go/internal/processor"
	"resume-insight-go/internal/types"
)

// ResumeHandler 简历分析处理器，协调文本提取与分析管线
type ResumeHandler struct {
	engine        *processor.Engine
	extractor     processor.TextExtractor
	supportedExts map[string]bool
}

// Option 处理器配置选项
type Option func(*ResumeHandler)

// WithSupportedExtensions 限定上传允许的文件扩展名（含点号）。
// 提取协作方只认PDF时应收窄为 ".pdf"。
func WithSupportedExtensions(exts ...string) Option {
	return func(h *ResumeHandler) {
		h.supportedExts = make(map[string]bool, len(exts))
		for _, ext := range exts {
			h.supportedExts[strings.ToLower(ext)] = true
		}
	}
}

// NewResumeHandler 创建一个新的简历分析处理器，默认接受PDF和DOCX
func NewResumeHandler(engine *processor.Engine, extractor processor.TextExtractor, opts ...Option) *ResumeHandler {
	h := &ResumeHandler{
		engine:        engine,
		extractor:     extractor,
		supportedExts: map[string]bool{".pdf": true, ".docx": true},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// AnalyzeResponse 分析响应
type AnalyzeResponse struct {
	SubmissionUUID string              `json:"submission_uuid"`
	Resume         *types.ParsedResume `json:"resume"`
}

// HandleResumeUpload 处理简历文件上传：提取文本后运行分析管线
func (h *ResumeHandler) HandleResumeUpload(ctx context.Context, reader io.Reader, filename string) (*AnalyzeResponse, error) {
	submissionUUID := newSubmissionUUID()

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".pdf" // 默认当作PDF
	}
	if !h.supportedExts[ext] {
		logger.Warn().
			Str("submission_uuid", submissionUUID).
			Str("filename", filename).
			Str("ext", ext).
			Msg("拒绝不支持的文件格式")
		return nil, processor.NewUnsupportedFormatError(submissionUUID, ext)
	}

	text, _, err := h.extractor.ExtractFromReader(ctx, reader, filename)
	if err != nil {
		logger.Error().
			Err(err).
			Str("submission_uuid", submissionUUID).
			Str("filename", filename).
			Msg("文档文本提取失败")
		return nil, processor.NewExtractionError(submissionUUID, err.Error())
	}

	resume, err := h.engine.Analyze(ctx, text)
	if err != nil {
		return nil, withSubmissionUUID(err, submissionUUID)
	}

	logger.Info().
		Str("submission_uuid", submissionUUID).
		Str("ext", ext).
		Float64("overall_score", resume.Score.Overall).
		Msg("简历上传分析完成")

	return &AnalyzeResponse{
		SubmissionUUID: submissionUUID,
		Resume:         resume,
	}, nil
}

// HandleAnalyzeText 处理已提取文本的直接分析请求
func (h *ResumeHandler) HandleAnalyzeText(ctx context.Context, rawText string) (*AnalyzeResponse, error) {
	submissionUUID := newSubmissionUUID()

	resume, err := h.engine.Analyze(ctx, rawText)
	if err != nil {
		return nil, withSubmissionUUID(err, submissionUUID)
	}

	return &AnalyzeResponse{
		SubmissionUUID: submissionUUID,
		Resume:         resume,
	}, nil
}

// HandleJobMatch 简历与岗位描述的匹配请求
func (h *ResumeHandler) HandleJobMatch(ctx context.Context, resumeText, jobDescription string) (*types.JobMatchResult, error) {
	return h.engine.MatchJob(ctx, resumeText, jobDescription)
}

// newSubmissionUUID 生成提交标识，UUIDv7失败时回退到v4
func newSubmissionUUID() string {
	if v7, err := uuid.NewV7(); err == nil {
		return v7.String()
	}
	return uuid.Must(uuid.NewV4()).String()
}

// withSubmissionUUID 把提交标识补进分析错误，方便日志关联
func withSubmissionUUID(err error, submissionUUID string) error {
	var analyzeErr *processor.AnalyzeError
	if errors.As(err, &analyzeErr) && analyzeErr.RequestUUID == "" {
		analyzeErr.RequestUUID = submissionUUID
	}
	return err
}
