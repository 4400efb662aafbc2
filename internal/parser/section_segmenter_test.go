package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-insight-go/internal/types"
)

// TestNormalizeText 规范化应统一换行、去行尾空白并压缩空行
func TestNormalizeText(t *testing.T) {
	raw := "Line one  \r\n\r\n\r\nLine two\t\r\n"
	normalized := NormalizeText(raw)
	assert.Equal(t, "Line one\n\nLine two", normalized)
}

// TestNormalizeTextIdempotent 已规范化文本再次规范化应是无操作
func TestNormalizeTextIdempotent(t *testing.T) {
	raw := "Name\r\n\r\n\r\nSkills:  \npython   \n\n\n\nDone"
	once := NormalizeText(raw)
	twice := NormalizeText(once)
	assert.Equal(t, once, twice, "规范化必须幂等")
}

// TestSegmentSectionsFirstMatchWins 每类标题只认第一次出现
func TestSegmentSectionsFirstMatchWins(t *testing.T) {
	text := NormalizeText(`John Doe

Skills
Python and Golang

Experience
Acme Corp, five great years

Skills
this repeated header is body text`)

	sections := SegmentSections(text)
	require.Len(t, sections, 2, "重复的Skills标题不应开启新章节")
	assert.Equal(t, types.SectionSkills, sections[0].Label)
	assert.Equal(t, types.SectionExperience, sections[1].Label)

	doc := &types.RawDocument{Text: text, Sections: sections}
	skillsText, ok := doc.SectionText(types.SectionSkills)
	require.True(t, ok)
	assert.Contains(t, strings.ToLower(skillsText), "python")
	assert.NotContains(t, strings.ToLower(skillsText), "acme", "技能章节应终止于下一个标题")

	expText, ok := doc.SectionText(types.SectionExperience)
	require.True(t, ok)
	assert.Contains(t, expText, "Acme Corp")
	assert.Contains(t, expText, "repeated header is body text", "重复标题应归入上一章节正文")
}

// TestSegmentSectionsHeaderRules 标题必须从行首开始匹配词表短语
func TestSegmentSectionsHeaderRules(t *testing.T) {
	// 行中出现的短语不是标题
	sections := SegmentSections("I listed my skills in the summary above.")
	assert.Empty(t, sections, "句子内出现的短语不应识别为标题")

	// 带冒号和混合大小写仍算标题
	sections = SegmentSections("TECHNICAL SKILLS:\npython")
	require.Len(t, sections, 1)
	assert.Equal(t, types.SectionSkills, sections[0].Label)

	// 末尾标题的章节开放到文档末尾
	text := "intro\n\nEducation\nState University"
	sections = SegmentSections(text)
	require.Len(t, sections, 1)
	assert.Equal(t, -1, sections[0].End)
	doc := &types.RawDocument{Text: text, Sections: sections}
	eduText, ok := doc.SectionText(types.SectionEducation)
	require.True(t, ok)
	assert.Equal(t, "State University", strings.TrimSpace(eduText))
}

// TestSegmentSectionsInlineHeader 标题同行紧跟冒号和正文时，正文从冒号后开始
func TestSegmentSectionsInlineHeader(t *testing.T) {
	text := NormalizeText("Skills: Python, Java\n\nExperience\nAcme Corp")
	sections := SegmentSections(text)
	require.Len(t, sections, 2)
	assert.Equal(t, types.SectionSkills, sections[0].Label)

	doc := &types.RawDocument{Text: text, Sections: sections}
	skillsText, ok := doc.SectionText(types.SectionSkills)
	require.True(t, ok)
	assert.Equal(t, "Python, Java", strings.TrimSpace(skillsText), "行内正文应在冒号之后、下一标题之前")

	// 短语后没有紧随的冒号时整行只是普通句子
	assert.Empty(t, SegmentSections("skills grew rapidly during this role"))
}

// TestSegmentSectionsNoHeaders 无标题文档返回空列表，调用方回退全文扫描
func TestSegmentSectionsNoHeaders(t *testing.T) {
	sections := SegmentSections("just a paragraph about python and teamwork")
	assert.Empty(t, sections)
}
