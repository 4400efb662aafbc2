package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-insight-go/internal/constants"
	"resume-insight-go/internal/types"
)

// TestGenerateSuggestionsWeakResume 多条规则命中时高严重度排前并截断
func TestGenerateSuggestionsWeakResume(t *testing.T) {
	resume := &types.ParsedResume{
		Writing: types.WritingQualityReport{
			WeakPhrasesFound: 3,
			FirstWeakPhrase:  "responsible for",
			QuantifiedFound:  0,
		},
		Skills: types.SkillProfile{
			Technical: []types.Skill{{Name: "python", Confidence: 0.8}},
		},
	}

	suggestions := GenerateSuggestions(resume)
	require.Len(t, suggestions, constants.MaxSuggestions)

	// 弱表述、技能不足、项目缺失三条高严重度在前
	for i := 0; i < 3; i++ {
		assert.Equal(t, types.SeverityHigh, suggestions[i].Severity, "第%d条应为高严重度", i)
	}
	assert.Equal(t, types.SeverityMedium, suggestions[3].Severity)
	assert.Contains(t, suggestions[0].Message, `"responsible for"`, "建议应引用首个命中的弱表述")
}

// TestGenerateSuggestionsStrongResume 规则都不命中时补足通用建议
func TestGenerateSuggestionsStrongResume(t *testing.T) {
	resume := &types.ParsedResume{
		Writing: types.WritingQualityReport{QuantifiedFound: 4},
		Skills: types.SkillProfile{
			Technical: []types.Skill{
				{Name: "python"}, {Name: "react"}, {Name: "docker"},
				{Name: "kubernetes"}, {Name: "postgresql"}, {Name: "aws"},
			},
			Soft: []types.Skill{{Name: "leadership"}, {Name: "communication"}},
		},
		Projects:  []types.Project{{Title: "P", Description: "d", ComplexityScore: 7.5}},
		Education: []types.EducationEntry{{Text: "BSc", QualityScore: 8}},
	}

	suggestions := GenerateSuggestions(resume)
	require.Len(t, suggestions, constants.MinSuggestions, "不足下限时应补通用建议")
	for _, s := range suggestions {
		assert.Equal(t, "general", s.Category)
		assert.Equal(t, types.SeverityLow, s.Severity)
	}
}

// TestGenerateSuggestionsSeverityScaling 弱表述少时降级为中严重度
func TestGenerateSuggestionsSeverityScaling(t *testing.T) {
	resume := &types.ParsedResume{
		Writing: types.WritingQualityReport{
			WeakPhrasesFound: 1,
			FirstWeakPhrase:  "worked on",
			QuantifiedFound:  3,
		},
		Skills: types.SkillProfile{
			Technical: []types.Skill{
				{Name: "python"}, {Name: "react"}, {Name: "docker"},
				{Name: "kubernetes"}, {Name: "postgresql"},
			},
			Soft: []types.Skill{{Name: "leadership"}, {Name: "teamwork"}},
		},
		Projects:  []types.Project{{Title: "P", Description: "d", ComplexityScore: 7}},
		Education: []types.EducationEntry{{Text: "BSc", QualityScore: 8}},
	}

	suggestions := GenerateSuggestions(resume)
	require.NotEmpty(t, suggestions)
	assert.Equal(t, types.SeverityMedium, suggestions[0].Severity)
	assert.Equal(t, "writing", suggestions[0].Category)
}
