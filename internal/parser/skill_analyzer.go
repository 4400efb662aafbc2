package parser

import (
	"sort"
	"strings"

	"resume-insight-go/internal/constants"
	"resume-insight-go/internal/types"
)

// AnalyzeSkills 技术/软技能识别与置信度评估、过时技术标记、均衡度打分
func AnalyzeSkills(doc *types.RawDocument) types.SkillProfile {
	lowerText := strings.ToLower(doc.Text)
	sectionText, hasSkillSection := doc.SectionText(types.SectionSkills)
	lowerSection := strings.ToLower(sectionText)

	technical := map[string]float64{}
	for _, skill := range constants.TechnicalSkills {
		occurrences := countTerm(lowerText, skill)
		if occurrences == 0 {
			continue
		}
		if hasSkillSection && containsTerm(lowerSection, skill) {
			// 技能章节内命中直接给高基准置信度
			technical[skill] = constants.SkillSectionConfidence
			continue
		}
		conf := 0.1*float64(occurrences) + 0.2*float64(contextHits(lowerText, skill, constants.SkillContextPhrases))
		if conf > constants.SkillContextCap {
			conf = constants.SkillContextCap
		}
		technical[skill] = conf
	}

	// 过时技术：没有迁移语境时标记；同时是命中技能的话置信度减半
	var outdated []string
	for _, term := range constants.OutdatedTechnologies {
		if !containsTerm(lowerText, term) {
			continue
		}
		if hasMigrationContext(doc, term) {
			continue
		}
		outdated = append(outdated, term)
		if conf, ok := technical[term]; ok {
			technical[term] = conf / 2
		}
	}

	soft := map[string]float64{}
	for _, skill := range constants.SoftSkills {
		occurrences := countTerm(lowerText, skill)
		if occurrences == 0 {
			continue
		}
		// 软技能没有专属章节信号，给一个小基准再按频次/佐证累加
		conf := 0.2 + 0.1*float64(occurrences) + 0.2*float64(contextHits(lowerText, skill, constants.SoftSkillEvidencePhrases))
		if conf > constants.SkillSectionConfidence {
			conf = constants.SkillSectionConfidence
		}
		soft[skill] = conf
	}

	technicalList := toSkillList(technical, constants.TechnicalSkillThreshold, constants.MaxTechnicalSkills)
	softList := toSkillList(soft, constants.SoftSkillThreshold, constants.MaxSoftSkills)

	return types.SkillProfile{
		Technical:    technicalList,
		Soft:         softList,
		Outdated:     outdated,
		BalanceScore: balanceScore(len(technicalList), len(softList), len(outdated)),
	}
}

// contextHits 统计语境短语命中：短语出现且技能紧随其后50个字符以内
func contextHits(lowerText, skill string, phrases []string) int {
	hits := 0
	for _, phrase := range phrases {
		idx := 0
		for {
			pos := strings.Index(lowerText[idx:], phrase)
			if pos < 0 {
				break
			}
			start := idx + pos + len(phrase)
			end := start + 50
			if end > len(lowerText) {
				end = len(lowerText)
			}
			if containsTerm(lowerText[start:end], skill) {
				hits++
			}
			idx = start
		}
	}
	return hits
}

// hasMigrationContext 过时技术所在句子含迁移语境短语时不再标记
func hasMigrationContext(doc *types.RawDocument, term string) bool {
	for _, s := range doc.Sentences {
		lower := strings.ToLower(s.Text)
		if !containsTerm(lower, term) {
			continue
		}
		for _, phrase := range constants.MigrationContextPhrases {
			if strings.Contains(lower, phrase) {
				return true
			}
		}
	}
	// 没有句子注释时在全文内就近检查
	if len(doc.Sentences) == 0 {
		lower := strings.ToLower(doc.Text)
		for _, phrase := range constants.MigrationContextPhrases {
			if pos := strings.Index(lower, phrase); pos >= 0 {
				windowEnd := pos + len(phrase) + 60
				if windowEnd > len(lower) {
					windowEnd = len(lower)
				}
				if containsTerm(lower[pos:windowEnd], term) {
					return true
				}
			}
		}
	}
	return false
}

// toSkillList 置信度映射经过 阈值过滤 → 降序排序 → 截断 的三段纯变换
func toSkillList(confidences map[string]float64, threshold float64, limit int) []types.Skill {
	var list []types.Skill
	for name, conf := range confidences {
		if conf >= threshold {
			list = append(list, types.Skill{Name: name, Confidence: conf})
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Confidence != list[j].Confidence {
			return list[i].Confidence > list[j].Confidence
		}
		return list[i].Name < list[j].Name // 同分按字母序，保证输出确定
	})
	if len(list) > limit {
		list = list[:limit]
	}
	return list
}

// balanceScore 技术/软技能数量的均衡度，过时技术扣分
func balanceScore(technicalCount, softCount, outdatedCount int) float64 {
	score := 5.0
	switch {
	case technicalCount >= 5:
		score += 2
	case technicalCount >= 3:
		score += 1
	}
	switch {
	case softCount >= 3:
		score += 2
	case softCount >= 1:
		score += 1
	}
	penalty := float64(outdatedCount)
	if penalty > 4 {
		penalty = 4
	}
	score -= penalty

	return clampScore(score, 1, 10)
}
