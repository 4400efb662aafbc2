package parser

import (
	"math"
	"strings"

	"resume-insight-go/internal/constants"
	"resume-insight-go/internal/types"
)

// AnalyzeGrowth 成长潜力打分：各信号按上限累加，最后取整并压到[1,10]
func AnalyzeGrowth(doc *types.RawDocument) types.GrowthProfile {
	lowerText := strings.ToLower(doc.Text)

	score := 0.0
	var areas []string

	// 成长指示词频次，每个指示词最多贡献3分
	for _, indicator := range constants.GrowthIndicators {
		count := countTerm(lowerText, indicator)
		if count == 0 {
			continue
		}
		if count > 3 {
			count = 3
		}
		score += float64(count)
		areas = append(areas, indicator)
	}

	// 学习行为短语
	for _, phrase := range constants.LearningPatterns {
		if strings.Contains(lowerText, phrase) {
			score += 1
			areas = append(areas, "learning")
		}
	}

	// 职业晋升短语，追加固定标签
	for _, phrase := range constants.CareerProgressionPhrases {
		if strings.Contains(lowerText, phrase) {
			score += 1
			areas = append(areas, "career progression")
		}
	}

	// 适应性关键词最多+2
	adaptability := 0.0
	for _, kw := range constants.AdaptabilityKeywords {
		if containsTerm(lowerText, kw) {
			adaptability += 1
		}
	}
	if adaptability > 0 {
		if adaptability > 2 {
			adaptability = 2
		}
		score += adaptability
		areas = append(areas, "adaptability")
	}

	// 任一句子出现未来目标指示词时一次性+1
	for _, s := range doc.Sentences {
		if containsAnyTerm(strings.ToLower(s.Text), constants.FutureGoalIndicators) {
			score += 1
			areas = append(areas, "future-oriented")
			break
		}
	}

	final := int(math.Floor(score))
	if final < 1 {
		final = 1
	}
	if final > 10 {
		final = 10
	}

	return types.GrowthProfile{
		Score: final,
		Areas: orderGrowthAreas(areas),
	}
}

// orderGrowthAreas 去重后把优先词表中的标签排前，截断到上限
func orderGrowthAreas(areas []string) []string {
	seen := map[string]bool{}
	var deduped []string
	for _, a := range areas {
		if seen[a] {
			continue
		}
		seen[a] = true
		deduped = append(deduped, a)
	}

	var priority, rest []string
	for _, a := range deduped {
		isPriority := false
		for _, term := range constants.GrowthPriorityTerms {
			if strings.Contains(a, term) || a == term {
				isPriority = true
				break
			}
		}
		if isPriority {
			priority = append(priority, a)
		} else {
			rest = append(rest, a)
		}
	}

	ordered := append(priority, rest...)
	if len(ordered) > constants.MaxGrowthAreas {
		ordered = ordered[:constants.MaxGrowthAreas]
	}
	return ordered
}
