package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	"github.com/spf13/pflag"

	"resume-insight-go/internal/api/handler"
	"resume-insight-go/internal/api/router"
	"resume-insight-go/internal/config"
	appCoreLogger "resume-insight-go/internal/logger"
	"resume-insight-go/internal/nlp"
	"resume-insight-go/internal/parser"
	"resume-insight-go/internal/processor"
)

var (
	version     = "1.0.0"             //nolint:gochecknoglobals
	serviceName = "resume-insight-go" //nolint:gochecknoglobals
)

func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "internal/config/config.yaml", "Path to config file")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		glog.Fatalf("加载配置失败: %v", err)
	}

	initLogger(cfg)
	glog.Info("配置加载成功")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 文本提取协作方：配置了Tika服务器时用Tika（支持DOCX等格式），否则用Eino PDF解析器
	var extractor processor.TextExtractor
	var handlerOpts []handler.Option
	if cfg.Tika.Type == "tika" && cfg.Tika.ServerURL != "" {
		extractor = parser.NewTikaTextExtractor(cfg.Tika.ServerURL,
			parser.WithTikaTimeout(time.Duration(cfg.Tika.TimeoutSeconds)*time.Second),
			parser.WithTikaLogger(log.New(os.Stderr, "[TikaMain] ", log.LstdFlags)),
		)
		glog.Info("使用Tika文本提取器")
	} else {
		einoExtractor, err := parser.NewEinoPDFTextExtractor(ctx,
			parser.WithEinoLogger(log.New(os.Stderr, "[EinoPDFMain] ", log.LstdFlags)))
		if err != nil {
			glog.Fatalf("创建Eino PDF提取器失败: %v", err)
		}
		extractor = einoExtractor
		// Eino解析器只认PDF，上传入口相应收窄
		handlerOpts = append(handlerOpts, handler.WithSupportedExtensions(".pdf"))
		glog.Info("使用Eino PDF提取器")
	}

	// NLP注释协作方与分析引擎
	annotator := nlp.NewProseAnnotator()
	engine := processor.NewEngine(cfg, annotator)
	glog.Info("简历分析引擎初始化成功")

	resumeHandler := handler.NewResumeHandler(engine, extractor, handlerOpts...)

	h := server.New(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
	)
	h.Use(func(c context.Context, ctx *app.RequestContext) {
		// 把日志记录器放进请求上下文，下游各层用 logger.Ctx 取出
		c = appCoreLogger.WithContext(c)
		glog.CtxInfof(c, "Request: %s %s", string(ctx.Method()), string(ctx.Path()))
		ctx.Next(c)
		glog.CtxInfof(c, "Response: status %d", ctx.Response.StatusCode())
	})

	router.RegisterRoutes(h, resumeHandler)
	glog.Info("HTTP路由注册成功")

	glog.Infof("HTTP 服务器启动中，监听地址: %s", cfg.Server.Address)
	go func() {
		if err := h.Run(); err != nil {
			glog.Fatalf("启动HTTP服务器失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	glog.Info("接收到终止信号，正在优雅退出...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := h.Shutdown(shutdownCtx); err != nil {
		glog.Fatalf("服务器关闭失败: %v", err)
	}
	glog.Info("优雅退出完成")
}

// initLogger 初始化zerolog并把hertz框架日志接到同一个输出
func initLogger(cfg *config.Config) {
	appCoreLogger.Init(appCoreLogger.Config{
		Level:        cfg.Logger.Level,
		Format:       cfg.Logger.Format,
		TimeFormat:   cfg.Logger.TimeFormat,
		ReportCaller: cfg.Logger.ReportCaller,
	})
	appCoreLogger.Logger = appCoreLogger.Logger.With().
		Str("app", serviceName).
		Str("version", version).
		Logger()

	glog.SetLogger(hertzadapter.From(appCoreLogger.Logger))
}
