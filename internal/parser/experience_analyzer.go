package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"resume-insight-go/internal/constants"
	"resume-insight-go/internal/types"
)

var (
	// 显式年限表述，全文匹配后取最大值
	yearsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d{1,2})\+?\s*years?[^.\n]{0,40}?experience`),
		regexp.MustCompile(`(?i)experience[^.\n]{0,40}?(\d{1,2})\+?\s*years?`),
		regexp.MustCompile(`(?i)over\s+(\d{1,2})\s+years?`),
	}

	monthAlternation = `(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)`

	// "<Month Year> – <Month Year|present>" 日期区间
	dateRangePattern = regexp.MustCompile(`(?i)(` + monthAlternation + `)\.?\s+(\d{4})\s*(?:-|–|—|to|until)\s*(?:(` + monthAlternation + `)\.?\s+(\d{4})|(present|current|now))`)

	// 可选资深限定词 + 首字母大写的职位短语，以已知职位后缀词结尾
	titlePhrasePattern = regexp.MustCompile(`(?:(?:Senior|Junior|Lead|Principal|Staff|Chief|Head|Associate)\s+)?(?:[A-Z][A-Za-z+#]*\s+){0,2}(?:Engineer|Developer|Manager|Analyst|Designer|Architect|Consultant|Scientist|Administrator|Specialist|Director|Intern)\b`)

	bulletPrefixPattern = regexp.MustCompile(`^\s*[-•*]\s*`)
)

// AnalyzeExperience 提取工作年限和职位列表
// now用于解析开放区间（present/current），由调用方注入以保证测试确定性
func AnalyzeExperience(doc *types.RawDocument, now time.Time) types.ExperienceProfile {
	return types.ExperienceProfile{
		Years:     extractYears(doc.Text, now),
		Positions: extractPositions(doc.Text),
	}
}

// extractYears 先尝试显式年限表述取最大值，否则回退到累加日期区间
func extractYears(text string, now time.Time) int {
	maxYears := 0
	found := false
	for _, pattern := range yearsPatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			found = true
			if n > maxYears {
				maxYears = n
			}
		}
	}
	if found {
		return maxYears
	}
	return yearsFromDateRanges(text, now)
}

// yearsFromDateRanges 累加所有可解析的日历区间月数后整除12
// 只认月份名格式，无法解析的区间静默跳过
func yearsFromDateRanges(text string, now time.Time) int {
	totalMonths := 0
	for _, m := range dateRangePattern.FindAllStringSubmatch(text, -1) {
		startMonth, ok := monthNumber(m[1])
		if !ok {
			continue
		}
		startYear, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}

		var endMonth, endYear int
		if m[5] != "" { // 开放区间，结束时间取当前日期
			endMonth = int(now.Month())
			endYear = now.Year()
		} else {
			endMonth, ok = monthNumber(m[3])
			if !ok {
				continue
			}
			endYear, err = strconv.Atoi(m[4])
			if err != nil {
				continue
			}
		}

		months := (endYear-startYear)*12 + (endMonth - startMonth)
		if months > 0 {
			totalMonths += months
		}
	}
	return totalMonths / 12
}

func monthNumber(name string) (int, bool) {
	n, ok := constants.MonthNames[strings.ToLower(strings.TrimSuffix(name, "."))]
	return n, ok
}

// extractPositions 三路信号取并集：职位短语模式、规范职位词表、要点行前缀
// 去重后资深职位排前，截断到上限
func extractPositions(text string) []string {
	var candidates []string

	// (a) 职位短语模式
	for _, m := range titlePhrasePattern.FindAllString(text, -1) {
		candidates = append(candidates, m)
	}

	// (b) 规范职位词表
	candidates = append(candidates, matchTerms(text, constants.Roles)...)

	// (c) 以职位短语开头的要点行
	for _, line := range strings.Split(text, "\n") {
		if !bulletPrefixPattern.MatchString(line) {
			continue
		}
		body := bulletPrefixPattern.ReplaceAllString(line, "")
		head := splitPhraseHead(body)
		if endsWithTitleSuffix(head) {
			candidates = append(candidates, head)
		}
	}

	// 规范化、去模板词、去重
	seen := map[string]bool{}
	var positions []string
	for _, c := range candidates {
		normalized := strings.ToLower(strings.TrimSpace(c))
		if normalized == "" || seen[normalized] {
			continue
		}
		if containsAnyTerm(normalized, constants.BoilerplateTerms) {
			continue
		}
		seen[normalized] = true
		positions = append(positions, normalized)
	}

	// 含资深标记的职位排前，其余保持原有顺序
	var senior, rest []string
	for _, p := range positions {
		if containsAnyTerm(p, constants.SeniorityMarkers) {
			senior = append(senior, p)
		} else {
			rest = append(rest, p)
		}
	}
	positions = append(senior, rest...)

	if len(positions) > constants.MaxPositions {
		positions = positions[:constants.MaxPositions]
	}
	return positions
}

// splitPhraseHead 取行首短语：逗号、竖线、" at "、" - " 之前的部分
func splitPhraseHead(line string) string {
	head := line
	for _, sep := range []string{",", "|", " at ", " - ", " – "} {
		if idx := strings.Index(head, sep); idx >= 0 {
			head = head[:idx]
		}
	}
	return strings.TrimSpace(head)
}

func endsWithTitleSuffix(phrase string) bool {
	words := strings.Fields(strings.ToLower(phrase))
	if len(words) == 0 || len(words) > 4 {
		return false
	}
	last := words[len(words)-1]
	for _, suffix := range constants.JobTitleSuffixes {
		if last == suffix {
			return true
		}
	}
	return false
}
