package tracing

import (
	"strings"
)

const (
	// DefaultMaxLength 默认最大属性长度
	DefaultMaxLength = 200

	// MaxResumeLength 简历内容写入span属性时的最大长度
	MaxResumeLength = 150
)

// maskPIILookup 需要掩码处理的属性名关键字
var maskPIILookup = map[string]bool{
	"email":    true,
	"phone":    true,
	"name":     true,
	"address":  true,
	"password": true,
	"secret":   true,
	"token":    true,
}

// SafeAttributeValue 确保span属性值安全
// 1. 属性名命中敏感关键字时返回掩码值
// 2. 超过maxLength时截断并加省略号
func SafeAttributeValue(name string, value string, maxLength int) string {
	lowerName := strings.ToLower(name)
	for keyword := range maskPIILookup {
		if strings.Contains(lowerName, keyword) {
			return maskValue(value)
		}
	}

	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	if len(value) > maxLength {
		return value[:maxLength] + "..."
	}
	return value
}

// maskValue 保留首尾各一个字符，中间以星号代替
func maskValue(value string) string {
	if len(value) <= 2 {
		return "**"
	}
	return value[:1] + strings.Repeat("*", len(value)-2) + value[len(value)-1:]
}
