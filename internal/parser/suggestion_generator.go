package parser

import (
	"fmt"

	"resume-insight-go/internal/constants"
	"resume-insight-go/internal/types"
)

// GenerateSuggestions 规则式建议生成
// 每条规则独立评估一个分析器的输出，至多追加一条固定严重度的建议；
// 规则命中少于下限时补充通用建议；高严重度排前，截断到上限。
func GenerateSuggestions(resume *types.ParsedResume) []types.Suggestion {
	var suggestions []types.Suggestion
	add := func(category string, severity types.Severity, message string) {
		suggestions = append(suggestions, types.Suggestion{
			Category: category,
			Severity: severity,
			Message:  message,
		})
	}

	// 弱表述
	if n := resume.Writing.WeakPhrasesFound; n > 0 {
		severity := types.SeverityMedium
		if n >= 3 {
			severity = types.SeverityHigh
		}
		add("writing", severity, fmt.Sprintf(
			"Replace passive phrases like %q with strong action verbs that show ownership.",
			resume.Writing.FirstWeakPhrase))
	}

	// 量化成果不足
	if resume.Writing.QuantifiedFound < 2 {
		add("writing", types.SeverityMedium,
			"Add quantified achievements (percentages, revenue, user counts) to make impact concrete.")
	}

	// 空泛流行语
	if resume.Writing.GenericPhrasesFound > 0 {
		add("writing", types.SeverityLow, fmt.Sprintf(
			"Remove generic buzzwords like %q and describe specific accomplishments instead.",
			resume.Writing.FirstGenericPhrase))
	}

	// 技术技能数量不足
	if len(resume.Skills.Technical) < 5 {
		add("skills", types.SeverityHigh,
			"List more technical skills relevant to your target role; aim for at least five.")
	}

	// 软技能数量不足
	if len(resume.Skills.Soft) < 2 {
		add("skills", types.SeverityMedium,
			"Mention soft skills such as leadership or communication with supporting evidence.")
	}

	// 过时技术
	if len(resume.Skills.Outdated) > 0 {
		add("skills", types.SeverityMedium, fmt.Sprintf(
			"Remove or contextualize outdated technologies like %q unless a role requires them.",
			resume.Skills.Outdated[0]))
	}

	// 项目缺失或偏弱
	if len(resume.Projects) == 0 {
		add("projects", types.SeverityHigh,
			"Add a projects section with concrete descriptions of what you built and its impact.")
	} else if averageComplexity(resume.Projects) < 5 {
		add("projects", types.SeverityLow,
			"Strengthen project descriptions with architecture details, scale, and measurable outcomes.")
	}

	// 教育缺失
	if len(resume.Education) == 0 {
		add("education", types.SeverityMedium,
			"Add an education section with your degree, institution, and graduation date.")
	}

	// 规则命中不足时补充通用建议
	fillers := []types.Suggestion{
		{Category: "general", Severity: types.SeverityLow, Message: "Use consistent formatting: one font, aligned dates, parallel bullet structure."},
		{Category: "general", Severity: types.SeverityLow, Message: "Keep the resume to one or two pages; trim older or less relevant roles."},
		{Category: "general", Severity: types.SeverityLow, Message: "Tailor keywords to each job description to pass automated screening."},
	}
	for _, filler := range fillers {
		if len(suggestions) >= constants.MinSuggestions {
			break
		}
		suggestions = append(suggestions, filler)
	}

	suggestions = orderBySeverity(suggestions)
	if len(suggestions) > constants.MaxSuggestions {
		suggestions = suggestions[:constants.MaxSuggestions]
	}
	return suggestions
}

func averageComplexity(projects []types.Project) float64 {
	if len(projects) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range projects {
		sum += p.ComplexityScore
	}
	return sum / float64(len(projects))
}

// orderBySeverity 稳定排序：high、medium、low
func orderBySeverity(suggestions []types.Suggestion) []types.Suggestion {
	rank := map[types.Severity]int{
		types.SeverityHigh:   0,
		types.SeverityMedium: 1,
		types.SeverityLow:    2,
	}
	ordered := make([]types.Suggestion, 0, len(suggestions))
	for level := 0; level <= 2; level++ {
		for _, s := range suggestions {
			if rank[s.Severity] == level {
				ordered = append(ordered, s)
			}
		}
	}
	return ordered
}
