package parser

import (
	"regexp"
	"strings"
	"unicode"

	"resume-insight-go/internal/constants"
	"resume-insight-go/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`(?i)[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// 电话格式按优先级排列：带国家码、带括号区号、普通分隔
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\+\d{1,3}[-.\s]?\(?\d{2,4}\)?[-.\s]?\d{3,4}[-.\s]?\d{4}`),
		regexp.MustCompile(`\(\d{3}\)\s?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\d{3}[-.\s]\d{3}[-.\s]\d{4}`),
		regexp.MustCompile(`\d{10,12}`),
	}

	profilePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)linkedin\.com/in/[\w.-]+`),
		regexp.MustCompile(`(?i)github\.com/[\w.-]+`),
	}

	genericTLDPattern = regexp.MustCompile(`(?i)\.(com|org|net|io|dev|me)$`)
)

// ExtractContact 提取姓名、邮箱、电话和个人主页链接
// 四个字段互相独立，缺失不是错误
func ExtractContact(doc *types.RawDocument) types.ContactInfo {
	return types.ContactInfo{
		Name:        extractName(doc),
		Email:       extractEmail(doc.Text),
		Phone:       extractPhone(doc.Text),
		ProfileLink: extractProfileLink(doc.Text),
	}
}

// extractEmail 多个候选时优先常见服务商域名，其次通用顶级域，否则取第一个
func extractEmail(text string) string {
	matches := emailPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return ""
	}

	domainOf := func(email string) string {
		at := strings.LastIndex(email, "@")
		return strings.ToLower(email[at+1:])
	}

	for _, m := range matches {
		for _, d := range constants.CommonEmailDomains {
			if domainOf(m) == d {
				return m
			}
		}
	}
	for _, m := range matches {
		if genericTLDPattern.MatchString(domainOf(m)) {
			return m
		}
	}
	return matches[0]
}

// extractPhone 依次尝试各电话格式，接受剥离非数字字符后至少10位的第一个匹配
func extractPhone(text string) string {
	for _, pattern := range phonePatterns {
		for _, m := range pattern.FindAllString(text, -1) {
			digits := strings.Map(func(r rune) rune {
				if unicode.IsDigit(r) || r == '+' {
					return r
				}
				return -1
			}, m)
			stripped := strings.TrimPrefix(digits, "+")
			if len(stripped) >= 10 {
				return strings.TrimSpace(m)
			}
		}
	}
	return ""
}

func extractProfileLink(text string) string {
	for _, pattern := range profilePatterns {
		if m := pattern.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

// extractName 首选NLP协作方给出的PERSON实体，过滤为1-3个首字母大写的词；
// 回退策略是在前五行里找一个不含简历模板词的短姓名行
func extractName(doc *types.RawDocument) string {
	for _, ent := range doc.Entities {
		if ent.Label != "PERSON" {
			continue
		}
		if isPersonName(ent.Text) {
			return strings.TrimSpace(ent.Text)
		}
	}

	lines := strings.Split(doc.Text, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}
	for _, line := range lines {
		candidate := strings.TrimSpace(line)
		if candidate == "" || len(candidate) > 40 {
			continue
		}
		lower := strings.ToLower(candidate)
		if containsAnyTerm(lower, constants.BoilerplateTerms) {
			continue
		}
		if strings.ContainsAny(candidate, "@0123456789:/") {
			continue
		}
		if isPersonName(candidate) {
			return candidate
		}
	}
	return ""
}

// isPersonName 1到3个词，每个词以大写字母开头且只含字母（允许中间名缩写的点号）
func isPersonName(s string) bool {
	words := strings.Fields(strings.TrimSpace(s))
	if len(words) < 1 || len(words) > 3 {
		return false
	}
	for _, w := range words {
		runes := []rune(strings.TrimSuffix(w, "."))
		if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
			return false
		}
		for _, r := range runes[1:] {
			if !unicode.IsLetter(r) && r != '\'' && r != '-' {
				return false
			}
		}
	}
	return true
}
