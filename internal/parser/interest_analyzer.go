package parser

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"resume-insight-go/internal/constants"
	"resume-insight-go/internal/types"
)

// 显式热情表述的捕获，如 "passionate about distributed systems"
var passionCapturePattern = regexp.MustCompile(`(?i)(?:passionate about|interested in|love working with|enjoy working (?:on|with)|fascinated by)\s+([^.\n]{1,80})`)

// AnalyzeInterests 基于加权关键词共现推断兴趣倾向
// 原始分经线性重标定映射到1-10分带，取前五名
func AnalyzeInterests(doc *types.RawDocument) []types.InterestEntry {
	lowerText := strings.ToLower(doc.Text)

	var passionCaptures []string
	for _, m := range passionCapturePattern.FindAllStringSubmatch(lowerText, -1) {
		passionCaptures = append(passionCaptures, m[1])
	}

	raw := map[string]int{}
	for _, skill := range constants.TechnicalSkills {
		mentions := countTerm(lowerText, skill)
		if mentions == 0 {
			continue
		}
		score := mentions // 每次普通提及+1

		for _, capture := range passionCaptures {
			if containsTerm(capture, skill) {
				score += 3
			}
		}

		for _, s := range doc.Sentences {
			lowerSentence := strings.ToLower(s.Text)
			if !containsTerm(lowerSentence, skill) {
				continue
			}
			if containsAnyTerm(lowerSentence, constants.PassionIndicators) {
				score += 2
			}
			if containsAnyTerm(lowerSentence, constants.PersonalProjectIndicators) {
				score += 3
			}
			if containsAnyTerm(lowerSentence, constants.OwnershipVerbs) {
				score += 1
			}
		}

		raw[skill] = score
	}
	if len(raw) == 0 {
		return nil
	}

	maxScore := 0
	for _, score := range raw {
		if score > maxScore {
			maxScore = score
		}
	}

	// 最大原始分映射进1-10分带：min(10, max(1, round(5*score/max)+3))
	var entries []types.InterestEntry
	for skill, score := range raw {
		scaled := int(math.Round(5*float64(score)/float64(maxScore))) + 3
		if scaled > 10 {
			scaled = 10
		}
		if scaled < 1 {
			scaled = 1
		}
		entries = append(entries, types.InterestEntry{Skill: skill, Score: scaled})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Skill < entries[j].Skill
	})
	if len(entries) > constants.MaxInterests {
		entries = entries[:constants.MaxInterests]
	}
	return entries
}
