package parser

import (
	"regexp"
	"strings"

	"resume-insight-go/internal/constants"
	"resume-insight-go/internal/types"
)

var locationPhrasePattern = regexp.MustCompile(`(?:based in|located in|from) ([A-Z][a-z]+(?: [A-Z][a-z]+)*)`)

// InferRole 从规范职位词表取第一个命中；没有命中但检出了技能时
// 按技能构成推断一个通用角色
func InferRole(doc *types.RawDocument, technical []types.Skill) string {
	if role := firstTerm(strings.ToLower(doc.Text), constants.Roles); role != "" {
		return role
	}
	if len(technical) == 0 {
		return ""
	}

	names := map[string]bool{}
	for _, s := range technical {
		names[s.Name] = true
	}
	switch {
	case names["react"] || names["javascript"]:
		return "frontend developer"
	case names["python"] || names["java"]:
		return "backend developer"
	default:
		return "software engineer"
	}
}

// InferLocation 先用"based in/located in/from"短语匹配，
// 再回退到NLP协作方的第一个GPE实体，都没有时默认Remote
func InferLocation(doc *types.RawDocument) string {
	if m := locationPhrasePattern.FindStringSubmatch(doc.Text); m != nil {
		return m[1]
	}
	for _, ent := range doc.Entities {
		if ent.Label == "GPE" {
			return ent.Text
		}
	}
	return "Remote"
}
