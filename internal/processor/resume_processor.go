package processor // 简历分析管线的组合与编排

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"resume-insight-go/internal/config"
	"resume-insight-go/internal/constants"
	"resume-insight-go/internal/logger"
	"resume-insight-go/internal/parser"
	"resume-insight-go/internal/tracing"
	"resume-insight-go/internal/types"
)

var tracer = otel.Tracer("resume-insight-go/processor")

// Engine 简历分析引擎
// 管线严格从左到右组合各分析阶段，无反馈回路；
// 引擎自身无跨请求可变状态，可被多个请求并发使用。
type Engine struct {
	annotator     Annotator
	weights       config.ScoreWeights
	minTextLength int
	now           func() time.Time // 开放日期区间（present）的解析基准，测试中注入
}

// EngineOption 引擎配置选项
type EngineOption func(*Engine)

// WithNow 注入当前时间来源，保证经历区间解析在测试中可复现
func WithNow(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// WithMinTextLength 覆盖最小文本长度阈值
func WithMinTextLength(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.minTextLength = n
		}
	}
}

// NewEngine 创建分析引擎
func NewEngine(cfg *config.Config, annotator Annotator, options ...EngineOption) *Engine {
	weights := config.DefaultScoreWeights()
	minLen := constants.MinResumeTextLength
	if cfg != nil {
		if !cfg.Analyzer.Weights.IsZero() {
			weights = cfg.Analyzer.Weights
		}
		if cfg.Analyzer.MinTextLength > 0 {
			minLen = cfg.Analyzer.MinTextLength
		}
	}

	engine := &Engine{
		annotator:     annotator,
		weights:       weights,
		minTextLength: minLen,
		now:           time.Now,
	}
	for _, option := range options {
		option(engine)
	}
	return engine
}

// Analyze 对原始简历文本运行完整分析管线
// 文本过短返回ErrInsufficientText；单个分析器无发现不是错误，
// 对应字段为空值，管线继续运行。
func (e *Engine) Analyze(ctx context.Context, rawText string) (*types.ParsedResume, error) {
	ctx, span := tracer.Start(ctx, "Engine.Analyze")
	defer span.End()

	// 1. 规范化与长度校验
	normalized := parser.NormalizeText(rawText)
	span.SetAttributes(
		attribute.Int("resume.text_length", len(normalized)),
		attribute.String("resume.preview", tracing.SafeAttributeValue("resume_text", normalized, tracing.MaxResumeLength)),
	)
	if len(normalized) < e.minTextLength {
		err := NewInsufficientTextError("", fmt.Sprintf("文本长度 %d，低于阈值 %d", len(normalized), e.minTextLength))
		tracing.RecordError(span, err, tracing.ErrorTypeValidation)
		return nil, err
	}

	// 2. NLP注释协作方
	doc, err := e.buildDocument(ctx, normalized)
	if err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeAnnotation)
		return nil, err
	}

	// 3. 各分析阶段，左到右
	resume := &types.ParsedResume{
		Contact:    parser.ExtractContact(doc),
		Experience: parser.AnalyzeExperience(doc, e.now()),
		Education:  parser.AnalyzeEducation(doc),
		Projects:   parser.ExtractProjects(doc),
		Skills:     parser.AnalyzeSkills(doc),
		Interests:  parser.AnalyzeInterests(doc),
		Growth:     parser.AnalyzeGrowth(doc),
		Writing:    parser.AnalyzeWriting(doc),
	}
	resume.InferredRole = parser.InferRole(doc, resume.Skills.Technical)
	resume.Location = parser.InferLocation(doc)

	// 4. 纯归约阶段：建议与总分
	resume.Suggestions = parser.GenerateSuggestions(resume)
	resume.Score = parser.AggregateScore(resume, e.weights)

	span.SetAttributes(
		attribute.Float64("resume.overall_score", resume.Score.Overall),
		attribute.Int("resume.technical_skills", len(resume.Skills.Technical)),
		attribute.Int("resume.suggestions", len(resume.Suggestions)),
	)
	logger.Ctx(ctx).Debug().
		Int("text_length", len(normalized)).
		Float64("overall_score", resume.Score.Overall).
		Msg("简历分析完成")

	return resume, nil
}

// MatchJob 简历与岗位描述的技能匹配
// 两段文本都只做非空校验，不受最小长度阈值约束
func (e *Engine) MatchJob(ctx context.Context, resumeText, jobDescriptionText string) (*types.JobMatchResult, error) {
	_, span := tracer.Start(ctx, "Engine.MatchJob")
	defer span.End()

	resumeText = parser.NormalizeText(resumeText)
	jobDescriptionText = parser.NormalizeText(jobDescriptionText)
	if resumeText == "" || jobDescriptionText == "" {
		err := NewInsufficientTextError("", "简历或岗位描述为空")
		tracing.RecordError(span, err, tracing.ErrorTypeValidation)
		return nil, err
	}

	result := parser.MatchJobDescription(resumeText, jobDescriptionText)
	span.SetAttributes(
		attribute.Int("match.percentage", result.MatchPercentage),
		attribute.Int("match.job_skills", len(result.JobSkills)),
	)
	return &result, nil
}

// buildDocument 组装RawDocument：注释、分段，产出后在请求内不可变
func (e *Engine) buildDocument(ctx context.Context, normalized string) (*types.RawDocument, error) {
	ctx, span := tracer.Start(ctx, "Engine.buildDocument")
	defer span.End()

	doc := &types.RawDocument{Text: normalized}
	if e.annotator != nil {
		sentences, entities, err := e.annotator.Annotate(ctx, normalized)
		if err != nil {
			// 协作方失败按上游失败上报，不在残缺文本上继续跑管线
			return nil, NewAnnotationError("", err.Error())
		}
		doc.Sentences = sentences
		doc.Entities = entities
	}
	doc.Sections = parser.SegmentSections(normalized)

	span.SetAttributes(
		attribute.Int("doc.sentences", len(doc.Sentences)),
		attribute.Int("doc.entities", len(doc.Entities)),
		attribute.Int("doc.sections", len(doc.Sections)),
	)
	return doc, nil
}
