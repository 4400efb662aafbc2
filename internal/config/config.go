package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config 应用程序配置
type Config struct {
	// 服务器配置
	Server ServerConfig `yaml:"server"`

	// Tika文本提取服务配置
	Tika TikaConfig `yaml:"tika"`

	// 分析管线配置
	Analyzer AnalyzerConfig `yaml:"analyzer"`

	// 日志配置
	Logger LoggerConfig `yaml:"logger"`
}

// ServerConfig 定义服务器配置
type ServerConfig struct {
	Address string `yaml:"address"` // 例如 ":8080" or "0.0.0.0:8080"
}

// TikaConfig Tika文本提取服务配置
// Type 为 "tika" 且 ServerURL 非空时使用Tika提取非PDF格式，否则仅支持PDF
type TikaConfig struct {
	Type           string `yaml:"type"`
	ServerURL      string `yaml:"server_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// AnalyzerConfig 分析管线配置
type AnalyzerConfig struct {
	// 规范化后允许分析的最小文本长度，0表示使用内置默认值
	MinTextLength int `yaml:"min_text_length"`

	// ATS总分的分项权重，留空使用内置默认权重
	Weights ScoreWeights `yaml:"weights"`
}

// ScoreWeights ATS总分权重向量，六项之和应为1.0
type ScoreWeights struct {
	Contact    float64 `yaml:"contact"`
	Skills     float64 `yaml:"skills"`
	Experience float64 `yaml:"experience"`
	Education  float64 `yaml:"education"`
	Projects   float64 `yaml:"projects"`
	Writing    float64 `yaml:"writing"`
}

// IsZero 判断权重是否全部未配置
func (w ScoreWeights) IsZero() bool {
	return w.Contact == 0 && w.Skills == 0 && w.Experience == 0 &&
		w.Education == 0 && w.Projects == 0 && w.Writing == 0
}

// DefaultScoreWeights 内置默认权重
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		Contact:    0.15,
		Skills:     0.25,
		Experience: 0.25,
		Education:  0.15,
		Projects:   0.10,
		Writing:    0.10,
	}
}

// LoggerConfig 日志配置
type LoggerConfig struct {
	Level        string `yaml:"level"`
	Format       string `yaml:"format"`
	TimeFormat   string `yaml:"time_format"`
	ReportCaller bool   `yaml:"report_caller"`
}

// LoadConfig 加载配置文件，configPath为空时在默认位置查找
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		// 尝试在常见位置查找配置文件
		searchPaths := []string{
			"config.yaml",
			"./config.yaml",
			"../config.yaml",
			"internal/config/config.yaml",
		}

		execPath, err := os.Executable()
		if err == nil {
			execDir := filepath.Dir(execPath)
			searchPaths = append(searchPaths, filepath.Join(execDir, "config.yaml"))
		}

		for _, path := range searchPaths {
			if _, err := os.Stat(path); err == nil {
				configPath = path
				break
			}
		}

		if configPath == "" {
			return nil, fmt.Errorf("在默认位置未找到配置文件")
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults 填充未配置项的默认值
func (c *Config) applyDefaults() {
	if c.Server.Address == "" {
		c.Server.Address = ":8080"
	}
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
	if c.Logger.Format == "" {
		c.Logger.Format = "json"
	}
	if c.Analyzer.Weights.IsZero() {
		c.Analyzer.Weights = DefaultScoreWeights()
	}
	if c.Tika.TimeoutSeconds <= 0 {
		c.Tika.TimeoutSeconds = 30
	}
}
