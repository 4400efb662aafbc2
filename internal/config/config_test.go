package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfigAppliesWeights 验证配置文件中的权重能被正确加载
func TestLoadConfigAppliesWeights(t *testing.T) {
	yamlContent := `
server:
  address: ":9090"
logger:
  level: "debug"
  format: "pretty"
analyzer:
  min_text_length: 80
  weights:
    contact: 0.10
    skills: 0.30
    experience: 0.25
    education: 0.15
    projects: 0.10
    writing: 0.10
`
	tmpDir, err := os.MkdirTemp("", "config-test")
	require.NoError(t, err, "无法创建临时目录")
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "config.yaml")
	err = os.WriteFile(configPath, []byte(yamlContent), 0644)
	require.NoError(t, err, "无法写入临时配置文件")

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err, "加载配置不应返回错误")
	require.NotNil(t, cfg)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, 80, cfg.Analyzer.MinTextLength)
	assert.InDelta(t, 0.30, cfg.Analyzer.Weights.Skills, 1e-9)
}

// TestLoadConfigDefaults 验证缺省项会被默认值填充
func TestLoadConfigDefaults(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "config-test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "config.yaml")
	err = os.WriteFile(configPath, []byte("server: {}\n"), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address, "缺省地址应为:8080")
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, DefaultScoreWeights(), cfg.Analyzer.Weights, "未配置权重时应使用默认权重")
	assert.Equal(t, 30, cfg.Tika.TimeoutSeconds)
}

// TestLoadConfigMissingFile 验证配置文件不存在时返回错误
func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(os.TempDir(), "definitely-not-here.yaml"))
	assert.Error(t, err)
}

// TestDefaultScoreWeightsSumToOne 默认权重之和应为1.0
func TestDefaultScoreWeightsSumToOne(t *testing.T) {
	w := DefaultScoreWeights()
	sum := w.Contact + w.Skills + w.Experience + w.Education + w.Projects + w.Writing
	assert.InDelta(t, 1.0, sum, 1e-9)
}
