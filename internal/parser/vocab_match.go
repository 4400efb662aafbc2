package parser

import (
	"regexp"
	"strings"
	"sync"
)

// 整词匹配工具。技能词表中存在 "c++"、"c#"、"ci/cd" 这类含符号的词，
// \b 边界对它们不成立，因此用显式的左右非词字符断言。

var (
	termPatternMu    sync.RWMutex
	termPatternCache = map[string]*regexp.Regexp{}
)

// termPattern 返回某个词表项的整词匹配正则，进程内缓存编译结果
func termPattern(term string) *regexp.Regexp {
	termPatternMu.RLock()
	re, ok := termPatternCache[term]
	termPatternMu.RUnlock()
	if ok {
		return re
	}

	escaped := regexp.QuoteMeta(strings.ToLower(term))
	re = regexp.MustCompile(`(?i)(?:^|[^a-z0-9+#])` + escaped + `(?:$|[^a-z0-9+#/])`)

	termPatternMu.Lock()
	termPatternCache[term] = re
	termPatternMu.Unlock()
	return re
}

// containsTerm 判断文本中是否出现整词term
func containsTerm(text, term string) bool {
	return termPattern(term).MatchString(text)
}

// countTerm 统计整词term在文本中的出现次数
func countTerm(text, term string) int {
	// 匹配会吞掉右侧分隔符，重扫时回退一字节，让它充当相邻出现的左边界；
	// 不能从 loc[0]+1 重扫，否则切片开头的 ^ 会把同一次出现再计一遍
	re := termPattern(term)
	count := 0
	offset := 0
	for {
		loc := re.FindStringIndex(text[offset:])
		if loc == nil {
			break
		}
		count++
		end := offset + loc[1]
		// 匹配抵达文本末尾（右边界是 $ 或末字节）时后面不可能再有出现
		if end >= len(text) {
			break
		}
		offset = end - 1
	}
	return count
}

// containsAnyTerm 判断文本是否出现词表中的任意一项
func containsAnyTerm(text string, vocab []string) bool {
	for _, term := range vocab {
		if containsTerm(text, term) {
			return true
		}
	}
	return false
}

// firstTerm 返回文本中出现的第一个词表项（按词表顺序），未命中返回空串
func firstTerm(text string, vocab []string) string {
	for _, term := range vocab {
		if containsTerm(text, term) {
			return term
		}
	}
	return ""
}

// matchTerms 返回文本中出现的全部词表项，保持词表顺序
func matchTerms(text string, vocab []string) []string {
	var found []string
	for _, term := range vocab {
		if containsTerm(text, term) {
			found = append(found, term)
		}
	}
	return found
}
