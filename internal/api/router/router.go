package router

import (
	"context"
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/google/uuid"

	"resume-insight-go/internal/api/handler"
	"resume-insight-go/internal/processor"
)

// AnalyzeTextRequest 原始文本分析请求体
type AnalyzeTextRequest struct {
	Text string `json:"text"`
}

// JobMatchRequest 岗位匹配请求体
type JobMatchRequest struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
}

// RegisterRoutes 注册 API 路由
func RegisterRoutes(h *server.Hertz, resumeHandler *handler.ResumeHandler) {
	api := h.Group("/api/v1", requestID())

	api.POST("/resume/upload", func(c context.Context, ctx *app.RequestContext) {
		// 获取上传的文件
		fileHeader, err := ctx.FormFile("file")
		if err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "文件未找到"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "打开文件失败"})
			return
		}
		defer file.Close()

		resp, err := resumeHandler.HandleResumeUpload(c, file, fileHeader.Filename)
		if err != nil {
			writeAnalyzeError(ctx, err)
			return
		}
		ctx.JSON(consts.StatusOK, resp)
	})

	api.POST("/resume/analyze", func(c context.Context, ctx *app.RequestContext) {
		var req AnalyzeTextRequest
		if err := ctx.BindJSON(&req); err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "请求体解析失败"})
			return
		}

		resp, err := resumeHandler.HandleAnalyzeText(c, req.Text)
		if err != nil {
			writeAnalyzeError(ctx, err)
			return
		}
		ctx.JSON(consts.StatusOK, resp)
	})

	api.POST("/resume/match", func(c context.Context, ctx *app.RequestContext) {
		var req JobMatchRequest
		if err := ctx.BindJSON(&req); err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "请求体解析失败"})
			return
		}

		result, err := resumeHandler.HandleJobMatch(c, req.ResumeText, req.JobDescription)
		if err != nil {
			writeAnalyzeError(ctx, err)
			return
		}
		ctx.JSON(consts.StatusOK, result)
	})

	// 添加健康检查
	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})
}

// requestID 为每个请求注入X-Request-ID
func requestID() app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		id := string(ctx.GetHeader("X-Request-ID"))
		if id == "" {
			id = uuid.New().String()
		}
		ctx.Set("request_id", id)
		ctx.Header("X-Request-ID", id)
		ctx.Next(c)
	}
}

// writeAnalyzeError 按错误类型映射HTTP状态码
func writeAnalyzeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, processor.ErrInsufficientText):
		ctx.JSON(consts.StatusUnprocessableEntity, utils.H{"error": err.Error()})
	case errors.Is(err, processor.ErrUnsupportedFormat),
		errors.Is(err, processor.ErrExtractionFailed):
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": err.Error()})
	default:
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
	}
}
