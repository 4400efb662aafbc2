package parser

import (
	"math"
	"regexp"
	"strings"

	"resume-insight-go/internal/constants"
	"resume-insight-go/internal/types"
)

var (
	// 量化成果："increased X by 40%"、"$2M"、"10k users" 一类表述
	quantifiedPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\d+(?:\.\d+)?\s*(?:%|percent)`),
		regexp.MustCompile(`\$\s*\d[\d,]*(?:\.\d+)?[kKmMbB]?`),
		regexp.MustCompile(`(?i)\d[\d,]*\+?\s*(?:users|customers|clients|requests|downloads|transactions|engineers|people)`),
		regexp.MustCompile(`(?i)(?:increased|reduced|improved|decreased|grew|cut)\s+[^.\n]{0,40}?\d+`),
	}

	// 被动语态近似：助动词后跟by结构
	passiveVoicePattern = regexp.MustCompile(`(?i)\b(?:was|were|is|are|been|being)\b[^.\n]{0,60}\bby\b`)
)

// AnalyzeWriting 写作质量评估：基准7分，确定性加减分项叠加若干启发式修正
func AnalyzeWriting(doc *types.RawDocument) types.WritingQualityReport {
	lowerText := strings.ToLower(doc.Text)
	score := 7.0

	report := types.WritingQualityReport{}

	// 弱表述：每处-0.4
	for _, phrase := range constants.WeakPhrases {
		count := strings.Count(lowerText, phrase)
		if count == 0 {
			continue
		}
		if report.FirstWeakPhrase == "" {
			report.FirstWeakPhrase = phrase
		}
		report.WeakPhrasesFound += count
	}
	score -= 0.4 * float64(report.WeakPhrasesFound)

	// 强动作动词：每处+0.2，贡献封顶+3
	for _, verb := range constants.ActionVerbs {
		report.ActionVerbsFound += countTerm(lowerText, verb)
	}
	verbBonus := 0.2 * float64(report.ActionVerbsFound)
	if verbBonus > 3 {
		verbBonus = 3
	}
	score += verbBonus

	// 量化成果：每处+0.4，贡献封顶+2
	for _, pattern := range quantifiedPatterns {
		report.QuantifiedFound += len(pattern.FindAllString(doc.Text, -1))
	}
	quantifiedBonus := 0.4 * float64(report.QuantifiedFound)
	if quantifiedBonus > 2 {
		quantifiedBonus = 2
	}
	score += quantifiedBonus

	// 空泛流行语：每处-0.4
	for _, buzzword := range constants.GenericBuzzwords {
		count := strings.Count(lowerText, buzzword)
		if count == 0 {
			continue
		}
		if report.FirstGenericPhrase == "" {
			report.FirstGenericPhrase = buzzword
		}
		report.GenericPhrasesFound += count
	}
	score -= 0.4 * float64(report.GenericPhrasesFound)

	score += activePassiveAdjustment(doc)
	score += tenseConsistencyPenalty(lowerText)
	score -= repetitionPenalty(lowerText)

	report.Score = clampScore(math.Round(score*10)/10, 1, 10)
	return report
}

// activePassiveAdjustment 主动/被动句比例的近似修正：(active_ratio - 0.5) * 2
func activePassiveAdjustment(doc *types.RawDocument) float64 {
	active, passive := 0, 0
	for _, s := range doc.Sentences {
		lower := strings.ToLower(s.Text)
		if passiveVoicePattern.MatchString(lower) {
			passive++
			continue
		}
		if containsAnyTerm(lower, constants.ActionVerbs) {
			active++
		}
	}
	total := active + passive
	if total == 0 {
		return 0
	}
	ratio := float64(active) / float64(total)
	return (ratio - 0.5) * 2
}

// tenseConsistencyPenalty 过去式与现在式动词混用严重时-1
// 混用比例严格落在(0.3, 0.7)区间且两边都有足够样本才算
func tenseConsistencyPenalty(lowerText string) float64 {
	past, present := 0, 0
	for _, v := range constants.PastTenseVerbs {
		past += countTerm(lowerText, v)
	}
	for _, v := range constants.PresentTenseVerbs {
		present += countTerm(lowerText, v)
	}
	if past < 2 || present < 2 {
		return 0
	}
	ratio := float64(past) / float64(past+present)
	if ratio > 0.3 && ratio < 0.7 {
		return -1
	}
	return 0
}

// repetitionPenalty 内容词重复超过5次时扣分，封顶-1
func repetitionPenalty(lowerText string) float64 {
	counts := map[string]int{}
	for _, word := range strings.FieldsFunc(lowerText, func(r rune) bool {
		return !('a' <= r && r <= 'z')
	}) {
		if len(word) < 4 {
			continue
		}
		if constants.Stopwords[word] || constants.RepetitionAllowList[word] {
			continue
		}
		counts[word]++
	}

	offenders := 0
	for _, count := range counts {
		if count > 5 {
			offenders++
		}
	}
	penalty := 0.25 * float64(offenders)
	if penalty > 1 {
		penalty = 1
	}
	return penalty
}
