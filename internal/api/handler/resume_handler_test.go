package handler

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-insight-go/internal/processor"
	"resume-insight-go/internal/types"
)

// 测试用文本提取协作方模拟器
type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) ExtractFromFile(ctx context.Context, filePath string) (string, map[string]interface{}, error) {
	return s.text, nil, s.err
}

func (s *stubExtractor) ExtractFromReader(ctx context.Context, reader io.Reader, uri string) (string, map[string]interface{}, error) {
	return s.text, nil, s.err
}

type stubAnnotator struct{}

func (s *stubAnnotator) Annotate(ctx context.Context, text string) ([]types.Sentence, []types.Entity, error) {
	return nil, nil, nil
}

const handlerSampleResume = `Jane Doe
jane.doe@gmail.com | 555-123-4567

Software engineer with 5 years of experience building web applications.

Skills
Python, React, Docker, PostgreSQL, AWS`

func newTestHandler(extractor processor.TextExtractor) *ResumeHandler {
	engine := processor.NewEngine(nil, &stubAnnotator{})
	return NewResumeHandler(engine, extractor)
}

// TestHandleResumeUpload 上传流程：提取文本后分析并附带提交标识
func TestHandleResumeUpload(t *testing.T) {
	h := newTestHandler(&stubExtractor{text: handlerSampleResume})

	resp, err := h.HandleResumeUpload(context.Background(), strings.NewReader("pdf bytes"), "resume.pdf")
	require.NoError(t, err)
	require.NotNil(t, resp.Resume)
	assert.NotEmpty(t, resp.SubmissionUUID)
	assert.Equal(t, "jane.doe@gmail.com", resp.Resume.Contact.Email)
	assert.Equal(t, 5, resp.Resume.Experience.Years)
}

// TestHandleResumeUploadExtractionError 提取失败映射为上游提取错误
func TestHandleResumeUploadExtractionError(t *testing.T) {
	h := newTestHandler(&stubExtractor{err: errors.New("损坏的PDF")})

	resp, err := h.HandleResumeUpload(context.Background(), strings.NewReader("junk"), "bad.pdf")
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.True(t, errors.Is(err, processor.ErrExtractionFailed))
}

// TestHandleResumeUploadUnsupportedFormat 不在支持列表内的扩展名直接拒绝，不触发提取
func TestHandleResumeUploadUnsupportedFormat(t *testing.T) {
	h := newTestHandler(&stubExtractor{text: handlerSampleResume})

	resp, err := h.HandleResumeUpload(context.Background(), strings.NewReader("bytes"), "resume.exe")
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.True(t, errors.Is(err, processor.ErrUnsupportedFormat))

	var analyzeErr *processor.AnalyzeError
	require.True(t, errors.As(err, &analyzeErr))
	assert.NotEmpty(t, analyzeErr.RequestUUID)

	// 默认列表接受DOCX，无扩展名时按PDF处理
	_, err = h.HandleResumeUpload(context.Background(), strings.NewReader("bytes"), "resume.docx")
	assert.NoError(t, err)
	_, err = h.HandleResumeUpload(context.Background(), strings.NewReader("bytes"), "resume")
	assert.NoError(t, err)
}

// TestHandleResumeUploadNarrowedExtensions 收窄为仅PDF时DOCX也被拒绝
func TestHandleResumeUploadNarrowedExtensions(t *testing.T) {
	engine := processor.NewEngine(nil, &stubAnnotator{})
	h := NewResumeHandler(engine, &stubExtractor{text: handlerSampleResume},
		WithSupportedExtensions(".pdf"))

	_, err := h.HandleResumeUpload(context.Background(), strings.NewReader("bytes"), "resume.docx")
	require.Error(t, err)
	assert.True(t, errors.Is(err, processor.ErrUnsupportedFormat))

	_, err = h.HandleResumeUpload(context.Background(), strings.NewReader("bytes"), "resume.PDF")
	assert.NoError(t, err, "扩展名匹配应忽略大小写")
}

// TestHandleAnalyzeText 文本直接分析，短文本错误带上提交标识
func TestHandleAnalyzeText(t *testing.T) {
	h := newTestHandler(&stubExtractor{})

	resp, err := h.HandleAnalyzeText(context.Background(), handlerSampleResume)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.SubmissionUUID)

	_, err = h.HandleAnalyzeText(context.Background(), "too short")
	require.Error(t, err)
	assert.True(t, errors.Is(err, processor.ErrInsufficientText))

	var analyzeErr *processor.AnalyzeError
	require.True(t, errors.As(err, &analyzeErr))
	assert.NotEmpty(t, analyzeErr.RequestUUID, "错误应带上提交标识便于日志关联")
}

// TestHandleJobMatch 匹配请求直通引擎
func TestHandleJobMatch(t *testing.T) {
	h := newTestHandler(&stubExtractor{})

	result, err := h.HandleJobMatch(context.Background(),
		"Python and Django daily", "Need Python and Kubernetes")
	require.NoError(t, err)
	assert.Equal(t, 50, result.MatchPercentage)
}
