package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestContainsTermWholeWord 整词匹配不应命中子串
func TestContainsTermWholeWord(t *testing.T) {
	assert.True(t, containsTerm("experienced in java development", "java"), "整词出现应命中")
	assert.False(t, containsTerm("wrote javascript daily", "java"), "java不应命中javascript")
	assert.True(t, containsTerm("skills: javascript, css", "javascript"), "javascript本身应命中")
	assert.True(t, containsTerm("Proficient in Java", "java"), "匹配应忽略大小写")
}

// TestContainsTermSymbolTerms 含符号的技能词需要显式边界
func TestContainsTermSymbolTerms(t *testing.T) {
	assert.True(t, containsTerm("using c++ and python", "c++"))
	assert.True(t, containsTerm("a c# backend service", "c#"))
	assert.True(t, containsTerm("built the ci/cd pipeline", "ci/cd"))
	assert.False(t, containsTerm("using c++ and python", "c#"), "c++不应被当作c#")
}

// TestCountTermAdjacent 相邻重复出现不应漏计
func TestCountTermAdjacent(t *testing.T) {
	assert.Equal(t, 2, countTerm("python, python and more", "python"))
	assert.Equal(t, 0, countTerm("nothing here", "python"))
	assert.Equal(t, 1, countTerm("python", "python"), "整个文本就是词项时应计1次")
}

// TestCountTermSingleOccurrence 句中单次出现只能计1次，重扫不得重复计入同一出现
func TestCountTermSingleOccurrence(t *testing.T) {
	assert.Equal(t, 1, countTerm("i use python daily", "python"))
	assert.Equal(t, 1, countTerm("experience with terraform modules in daily work", "terraform"))
	assert.Equal(t, 3, countTerm("go, go, go", "go"), "逗号分隔的相邻出现应逐一计入")
	assert.Equal(t, 2, countTerm("go and go", "go"), "文本末尾的出现不应重复计数")
	assert.Equal(t, 2, countTerm("c++ and c++ again", "c++"))
}

// TestMatchTermsOrder 结果应保持词表顺序而非文本顺序
func TestMatchTermsOrder(t *testing.T) {
	found := matchTerms("kubernetes before docker in this text", []string{"docker", "kubernetes"})
	assert.Equal(t, []string{"docker", "kubernetes"}, found)

	assert.Equal(t, "docker", firstTerm("kubernetes then docker", []string{"docker", "kubernetes"}))
	assert.Equal(t, "", firstTerm("no hits at all", []string{"docker"}))
}
