package parser

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"resume-insight-go/internal/constants"
	"resume-insight-go/internal/types"
)

var quantifiedMetricPattern = regexp.MustCompile(`(?i)\d+(?:\.\d+)?\s*%|\$\s*\d[\d,]*|\d[\d,]*\+?\s*(?:users|customers|clients|requests|downloads|transactions)`)

// ExtractProjects 提取项目条目并按复杂度降序排列
// 有项目章节时按行状态机解析，否则回退到隐式项目块扫描
func ExtractProjects(doc *types.RawDocument) []types.Project {
	var projects []types.Project
	if sectionText, ok := doc.SectionText(types.SectionProjects); ok {
		projects = parseProjectSection(sectionText)
	} else {
		projects = findImplicitProjects(doc.Text)
	}

	var kept []types.Project
	for _, p := range projects {
		if !keepProject(p) {
			continue
		}
		p.ComplexityScore = projectComplexityScore(p)
		kept = append(kept, p)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].ComplexityScore > kept[j].ComplexityScore
	})
	if len(kept) > constants.MaxProjects {
		kept = kept[:constants.MaxProjects]
	}
	return kept
}

// parseProjectSection 行级状态机：
// 空行关闭当前项目；无项目打开时的非要点行开启新标题；
// 其余行（含要点行）追加到打开项目的描述。
func parseProjectSection(sectionText string) []types.Project {
	var projects []types.Project
	var current *types.Project
	var descLines []string

	closeCurrent := func() {
		if current != nil && current.Title != "" && len(descLines) > 0 {
			current.Description = strings.TrimSpace(strings.Join(descLines, " "))
			if current.Description != "" {
				projects = append(projects, *current)
			}
		}
		current = nil
		descLines = nil
	}

	for _, line := range strings.Split(sectionText, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			closeCurrent()
			continue
		}

		bullet := bulletPrefixPattern.MatchString(line)
		if current == nil {
			if bullet {
				continue // 没有标题的要点行无处归属
			}
			current = &types.Project{Title: trimmed}
			continue
		}
		descLines = append(descLines, bulletPrefixPattern.ReplaceAllString(trimmed, ""))
	}
	closeCurrent()

	return projects
}

// findImplicitProjects 无项目章节时的回退：
// 2-10行的段落块，首行为短的大写开头行，块内出现技能词表项时视为隐式项目
func findImplicitProjects(text string) []types.Project {
	var projects []types.Project
	for _, block := range strings.Split(text, "\n\n") {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) < 2 || len(lines) > 10 {
			continue
		}
		title := strings.TrimSpace(lines[0])
		if title == "" || len(title) >= 100 {
			continue
		}
		runes := []rune(title)
		if !unicode.IsUpper(runes[0]) {
			continue
		}
		lower := strings.ToLower(block)
		if !containsAnyTerm(lower, constants.TechnicalSkills) {
			continue
		}

		desc := strings.TrimSpace(strings.Join(lines[1:], " "))
		projects = append(projects, types.Project{Title: title, Description: desc})
	}
	return projects
}

// keepProject 过滤描述过短的、标题是章节模板名或含简历噪声词的项目
func keepProject(p types.Project) bool {
	if len(p.Description) < 20 {
		return false
	}
	titleLower := strings.ToLower(strings.TrimSpace(p.Title))
	if _, _, isHeader := headerLabel(titleLower); isHeader {
		return false
	}
	if containsAnyTerm(titleLower, constants.BoilerplateTerms) {
		return false
	}
	return true
}

// projectComplexityScore 基准5分的加法模型，封顶10分
func projectComplexityScore(p types.Project) float64 {
	text := strings.ToLower(p.Title + " " + p.Description)
	score := 5.0

	// 复杂度指示词每个只计一次
	for _, indicator := range constants.ComplexityIndicators {
		if containsTerm(text, indicator) {
			score += 0.5
		}
	}

	// 技能广度：每个不同技能0.4分，封顶2分
	breadth := 0.4 * float64(len(matchTerms(text, constants.TechnicalSkills)))
	if breadth > 2 {
		breadth = 2
	}
	score += breadth

	// 量化指标：每处0.5分，封顶1分
	quantified := 0.5 * float64(len(quantifiedMetricPattern.FindAllString(text, -1)))
	if quantified > 1 {
		quantified = 1
	}
	score += quantified

	for _, kw := range constants.ChallengeKeywords {
		if containsTerm(text, kw) {
			score += 0.25
		}
	}
	for _, kw := range constants.ScaleKeywords {
		if containsTerm(text, kw) {
			score += 0.5
		}
	}
	if containsAnyTerm(text, constants.LeadershipVerbs) {
		score += 0.5
	}

	return clampScore(score, 1, 10)
}
