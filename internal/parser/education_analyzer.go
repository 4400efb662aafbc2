package parser

import (
	"regexp"
	"strconv"
	"strings"

	"resume-insight-go/internal/constants"
	"resume-insight-go/internal/types"
)

var (
	gpaPattern         = regexp.MustCompile(`(?i)gpa[:\s]*([0-9]\.[0-9]{1,2})(?:\s*/\s*([0-9](?:\.[0-9]{1,2})?))?`)
	whitespaceCollapse = regexp.MustCompile(`\s+`)
)

// AnalyzeEducation 提取教育经历条目并打质量分
// 有教育章节时扫描其段落，否则回退到全文句子扫描
func AnalyzeEducation(doc *types.RawDocument) []types.EducationEntry {
	var passages []string
	if sectionText, ok := doc.SectionText(types.SectionEducation); ok {
		passages = strings.Split(sectionText, "\n\n")
	} else {
		for _, s := range doc.Sentences {
			passages = append(passages, s.Text)
		}
	}

	seen := map[string]bool{}
	var entries []types.EducationEntry
	for _, passage := range passages {
		cleaned := cleanPassage(passage)
		if cleaned == "" || !qualifiesAsEducation(cleaned) {
			continue
		}
		if seen[cleaned] {
			continue
		}
		seen[cleaned] = true

		entries = append(entries, types.EducationEntry{
			Text:         cleaned,
			QualityScore: educationQualityScore(cleaned),
		})
		if len(entries) == constants.MaxEducationEntries {
			break
		}
	}
	return entries
}

func cleanPassage(passage string) string {
	return strings.TrimSpace(whitespaceCollapse.ReplaceAllString(passage, " "))
}

// qualifiesAsEducation 候选段落必须含教育关键词，并且出现机构名词或学位词，
// 机构/学位二者有其一即可，纯关键词噪声不算
func qualifiesAsEducation(passage string) bool {
	lower := strings.ToLower(passage)
	if !containsAnyTerm(lower, constants.EducationKeywords) {
		return false
	}
	return containsAnyTerm(lower, constants.InstitutionNouns) ||
		containsAnyTerm(lower, constants.DegreeTokens)
}

// educationQualityScore 基准5分，逐项加分后封顶10分
func educationQualityScore(passage string) float64 {
	lower := strings.ToLower(passage)
	score := 5.0

	if containsAnyTerm(lower, constants.PrestigeAdjectives) {
		score += 1
	}
	if containsAnyTerm(lower, constants.PrestigiousInstitutions) {
		score += 2
	}
	if containsAnyTerm(lower, constants.TechnicalFieldKeywords) {
		score += 1
	}
	if containsAnyTerm(lower, constants.AdvancedDegreeKeywords) {
		score += 1.5
	}
	if containsAnyTerm(lower, constants.HonorsPhrases) {
		score += 1
	}
	score += gpaBonus(lower)
	if containsAnyTerm(lower, constants.TechnicalSkills) {
		score += 1
	}

	return clampScore(score, 1, 10)
}

// gpaBonus 解析GPA并按4.0制归一化后分档加分
func gpaBonus(text string) float64 {
	m := gpaPattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	gpa, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	if m[2] != "" {
		denom, err := strconv.ParseFloat(m[2], 64)
		if err == nil && denom > 0 {
			gpa = gpa / denom * 4.0
		}
	}

	switch {
	case gpa >= 3.7:
		return 1.5
	case gpa >= 3.5:
		return 1.0
	case gpa >= 3.0:
		return 0.5
	}
	return 0
}

// clampScore 把分值压到[min,max]区间
func clampScore(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
