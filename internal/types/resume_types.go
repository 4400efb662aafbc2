package types

// SectionLabel 表示简历章节类型
type SectionLabel string

const (
	// SectionSkills 技能章节
	SectionSkills SectionLabel = "skills"
	// SectionEducation 教育经历章节
	SectionEducation SectionLabel = "education"
	// SectionExperience 工作经历章节
	SectionExperience SectionLabel = "experience"
	// SectionProjects 项目经历章节
	SectionProjects SectionLabel = "projects"
	// SectionUnknown 未分类内容章节
	SectionUnknown SectionLabel = "unknown"
)

// Section 简历中一段带标签的连续区域
// Start/End 是规范化文本中的字节偏移量，End 为 -1 表示直到文档末尾
type Section struct {
	Label SectionLabel `json:"label"`
	Start int          `json:"start"`
	End   int          `json:"end"`
}

// Sentence 由NLP协作方产出的句子边界
type Sentence struct {
	Text string `json:"text"`
}

// Entity 由NLP协作方产出的命名实体
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"` // 如 PERSON, GPE
}

// RawDocument 规范化文本及其派生注释，单次请求内不可变
type RawDocument struct {
	Text      string
	Sentences []Sentence
	Entities  []Entity
	Sections  []Section
}

// SectionText 返回指定标签章节的文本，未找到时返回空串和false
func (d *RawDocument) SectionText(label SectionLabel) (string, bool) {
	for _, s := range d.Sections {
		if s.Label != label {
			continue
		}
		end := s.End
		if end < 0 || end > len(d.Text) {
			end = len(d.Text)
		}
		if s.Start < 0 || s.Start > end {
			return "", false
		}
		return d.Text[s.Start:end], true
	}
	return "", false
}

// ContactInfo 联系方式，各字段互相独立、均可缺失
type ContactInfo struct {
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	ProfileLink string `json:"profile_link,omitempty"`
}

// ExperienceProfile 工作经历画像
type ExperienceProfile struct {
	Years     int      `json:"years"`               // 工作年限，未检出时为0
	Positions []string `json:"positions,omitempty"` // 去重后的职位列表，资深职位在前
}

// EducationEntry 教育经历条目
type EducationEntry struct {
	Text         string  `json:"text"`
	QualityScore float64 `json:"quality_score"` // [1,10]
}

// Project 项目经历条目
type Project struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	ComplexityScore float64 `json:"complexity_score"` // [1,10]
}

// Skill 带置信度的技能条目
type Skill struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"` // [0,1]，启发式强度而非概率
}

// SkillProfile 技能画像
type SkillProfile struct {
	Technical    []Skill  `json:"technical"`
	Soft         []Skill  `json:"soft"`
	Outdated     []string `json:"outdated,omitempty"`
	BalanceScore float64  `json:"balance_score"` // [1,10]
}

// InterestEntry 兴趣倾向条目
type InterestEntry struct {
	Skill string `json:"skill"`
	Score int    `json:"score"` // [1,10]
}

// GrowthProfile 成长潜力画像
type GrowthProfile struct {
	Score int      `json:"score"` // [1,10]
	Areas []string `json:"areas,omitempty"`
}

// WritingQualityReport 写作质量报告
type WritingQualityReport struct {
	Score               float64 `json:"score"` // [1,10]
	WeakPhrasesFound    int     `json:"weak_phrases_found"`
	ActionVerbsFound    int     `json:"action_verbs_found"`
	QuantifiedFound     int     `json:"quantified_found"`
	GenericPhrasesFound int     `json:"generic_phrases_found"`
	FirstWeakPhrase     string  `json:"first_weak_phrase,omitempty"`
	FirstGenericPhrase  string  `json:"first_generic_phrase,omitempty"`
}

// Severity 建议的严重程度
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Suggestion 改进建议
type Suggestion struct {
	Category string   `json:"category"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// ATSScore 各分项得分与加权总分
type ATSScore struct {
	Contact    float64 `json:"contact"`    // [1,10]
	Skills     float64 `json:"skills"`     // [1,10]
	Experience float64 `json:"experience"` // [1,10]
	Education  float64 `json:"education"`  // [1,10]
	Projects   float64 `json:"projects"`   // [1,10]
	Writing    float64 `json:"writing"`    // [1,10]
	Overall    float64 `json:"overall"`    // [0,10]
}

// ParsedResume 单次分析的聚合结果，构建后不再修改
type ParsedResume struct {
	Contact      ContactInfo          `json:"contact_info"`
	Experience   ExperienceProfile    `json:"experience"`
	Education    []EducationEntry     `json:"education"`
	Projects     []Project            `json:"projects"`
	Skills       SkillProfile         `json:"skills"`
	Interests    []InterestEntry      `json:"interests"`
	Growth       GrowthProfile        `json:"growth"`
	Writing      WritingQualityReport `json:"writing_quality"`
	Suggestions  []Suggestion         `json:"suggestions"`
	Score        ATSScore             `json:"ats_score"`
	InferredRole string               `json:"inferred_role,omitempty"`
	Location     string               `json:"location,omitempty"`
}

// JobMatchResult 简历与岗位描述的技能匹配结果
type JobMatchResult struct {
	MatchPercentage int      `json:"match_percentage"`
	MatchingSkills  []string `json:"matching_skills"`
	MissingSkills   []string `json:"missing_skills"`
	JobSkills       []string `json:"job_skills"`
}
