package constants

const (
	// MinResumeTextLength 规范化后文本的最小长度，低于该值拒绝分析
	MinResumeTextLength = 50

	// 各列表的输出上限，保证输出规模与输入长度无关
	MaxEducationEntries = 3
	MaxProjects         = 3
	MaxTechnicalSkills  = 10
	MaxSoftSkills       = 5
	MaxInterests        = 5
	MaxGrowthAreas      = 3
	MaxPositions        = 3
	MaxSuggestions      = 4
	MinSuggestions      = 3

	// 技能置信度相关阈值
	SkillSectionConfidence  = 0.8 // 技能章节内命中的固定置信度
	SkillContextCap         = 0.7 // 章节外基于频次/语境的置信度上限
	TechnicalSkillThreshold = 0.3
	SoftSkillThreshold      = 0.4
)
