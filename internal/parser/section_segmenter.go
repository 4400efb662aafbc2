package parser

import (
	"strings"

	"resume-insight-go/internal/constants"
	"resume-insight-go/internal/types"
)

// NormalizeText 规范化原始文本：统一换行符，去掉行尾空白，
// 把连续空行压成单个段落分隔。对已规范化文本再次调用是无操作。
func NormalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	text = strings.Join(lines, "\n")

	// 连续空行压缩为单个段落分隔
	for strings.Contains(text, "\n\n\n") {
		text = strings.ReplaceAll(text, "\n\n\n", "\n\n")
	}

	return strings.TrimSpace(text)
}

// headerLabel 判断一行是否为章节标题，返回标签和正文在行内的起始字节偏移。
// 标题必须从行首开始：整行（去尾冒号）与词表短语相等，或词表短语后紧跟
// 冒号、余下部分是该章节的行内正文（如 "Skills: Python, Java"）。
// 行内偏移为 -1 表示标题独占一行，正文从下一行开始。
// 句子中间出现的短语没有紧随的冒号，不会被识别为标题。
func headerLabel(line string) (types.SectionLabel, int, bool) {
	start := 0
	for start < len(line) && (line[start] == ' ' || line[start] == '\t') {
		start++
	}
	body := strings.TrimRight(strings.ToLower(line[start:]), " \t")
	if body == "" {
		return types.SectionUnknown, -1, false
	}

	for label, phrases := range constants.SectionHeaders {
		for _, phrase := range phrases {
			if !strings.HasPrefix(body, phrase) {
				continue
			}
			rest := body[len(phrase):]
			switch {
			case rest == "" || rest == ":":
				return types.SectionLabel(label), -1, true
			case strings.HasPrefix(rest, ":"):
				return types.SectionLabel(label), start + len(phrase) + 1, true
			}
		}
	}
	return types.SectionUnknown, -1, false
}

// SegmentSections 线性扫描定位章节边界
// 每类标题只取文档中第一次出现（first-match-wins），后续同类标题视为
// 上一个章节的正文；一个章节终止于下一个被识别的任意类标题或文档末尾。
// 未找到任何标题时返回空列表，调用方必须回退到全文扫描。
func SegmentSections(text string) []types.Section {
	var sections []types.Section
	seen := map[types.SectionLabel]bool{}

	offset := 0
	for _, line := range strings.Split(text, "\n") {
		lineStart := offset
		lineEnd := offset + len(line)
		offset = lineEnd + 1 // 跳过换行符

		label, inline, ok := headerLabel(line)
		if !ok {
			continue
		}

		// 重复出现的同类标题不再作为边界，当作上一章节正文
		if !seen[label] {
			if len(sections) > 0 && sections[len(sections)-1].End < 0 {
				sections[len(sections)-1].End = lineStart
			}
			contentStart := lineEnd + 1
			if inline >= 0 {
				// 行内标题：正文从冒号后开始，跳过紧随的空白
				contentStart = lineStart + inline
				for contentStart < lineEnd && (text[contentStart] == ' ' || text[contentStart] == '\t') {
					contentStart++
				}
			}
			if contentStart > len(text) {
				contentStart = len(text)
			}
			sections = append(sections, types.Section{
				Label: label,
				Start: contentStart,
				End:   -1,
			})
			seen[label] = true
		}
	}

	return sections
}
