package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-insight-go/internal/constants"
	"resume-insight-go/internal/types"
)

var fixedNow = time.Date(2023, time.July, 15, 0, 0, 0, 0, time.UTC)

// TestExtractYearsExplicit 显式年限表述优先，多个时取最大值
func TestExtractYearsExplicit(t *testing.T) {
	assert.Equal(t, 5, extractYears("Software engineer with 5 years of experience", fixedNow))
	assert.Equal(t, 8, extractYears("experience spanning 8 years", fixedNow))
	assert.Equal(t, 10, extractYears("over 10 years building systems, including 3 years of experience with Golang", fixedNow))
	assert.Equal(t, 0, extractYears("fresh graduate", fixedNow))
}

// TestExtractYearsFromDateRanges 无显式年限时累加日期区间
func TestExtractYearsFromDateRanges(t *testing.T) {
	text := "Acme Corp, January 2015 - January 2018\nBeta Inc, February 2018 - present"
	// 36个月 + 2018年2月至2021年2月的36个月 = 72个月
	now := time.Date(2021, time.February, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 6, extractYears(text, now))
}

// TestExtractYearsSkipsUnparsableRanges 无法解析的区间静默跳过
func TestExtractYearsSkipsUnparsableRanges(t *testing.T) {
	text := "Acme, 2015 - 2018\nBeta, Mar 2019 - Mar 2020"
	// 纯年份区间不认月份名格式，只有第二段的12个月计入
	assert.Equal(t, 1, extractYears(text, fixedNow))
}

// TestExtractPositions 三路信号取并集，去重后资深职位排前
func TestExtractPositions(t *testing.T) {
	text := `Senior Software Engineer at Acme Corp
Later took a backend developer role.
- Backend Developer, Beta Inc`

	positions := extractPositions(text)
	require.NotEmpty(t, positions)
	assert.Equal(t, "senior software engineer", positions[0], "资深职位应排最前")
	assert.Contains(t, positions, "backend developer")
	assert.LessOrEqual(t, len(positions), constants.MaxPositions)

	// 全小写去重
	for i, p := range positions {
		for j, q := range positions {
			if i != j {
				assert.NotEqual(t, p, q, "职位列表不应有重复")
			}
		}
	}
}

// TestExtractPositionsFiltersBoilerplate 模板噪声词不算职位
func TestExtractPositionsFiltersBoilerplate(t *testing.T) {
	positions := extractPositions("Resume of a Reference Manager")
	for _, p := range positions {
		assert.NotContains(t, p, "resume")
		assert.NotContains(t, p, "reference")
	}
}

// TestAnalyzeExperience 组合入口
func TestAnalyzeExperience(t *testing.T) {
	doc := &types.RawDocument{Text: "Software engineer with 5 years of experience shipping web apps."}
	profile := AnalyzeExperience(doc, fixedNow)
	assert.Equal(t, 5, profile.Years)
	assert.Contains(t, profile.Positions, "software engineer")
}
