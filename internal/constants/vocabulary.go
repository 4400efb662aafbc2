package constants

// 全局静态词表，进程启动时加载一次，之后只读。
// 所有分析器通过这些词表做整词匹配，任何分析器都不得修改它们。

// TechnicalSkills 技术技能词表
var TechnicalSkills = []string{
	"python", "javascript", "react", "angular", "vue", "node", "express", "django", "flask",
	"html", "css", "typescript", "java", "c++", "c#", "php", "ruby", "swift", "kotlin",
	"golang", "rust", "scala",
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "git", "ci/cd", "devops",
	"terraform", "ansible", "linux",
	"sql", "mongodb", "postgresql", "mysql", "oracle", "nosql", "redis", "firebase",
	"elasticsearch", "kafka", "rabbitmq", "graphql", "grpc", "rest",
	"machine learning", "deep learning", "ai", "data science", "tensorflow", "pytorch",
	"nlp", "computer vision", "data analysis", "pandas", "numpy", "scipy", "matplotlib",
	"spark", "hadoop", "airflow",
	"agile", "scrum", "jira", "confluence", "microservices",
}

// SoftSkills 软技能词表
var SoftSkills = []string{
	"leadership", "communication", "teamwork", "problem solving", "critical thinking",
	"collaboration", "adaptability", "time management", "mentoring", "negotiation",
	"presentation", "decision making", "creativity", "attention to detail",
	"product management", "project management", "stakeholder management",
}

// OutdatedTechnologies 过时技术词表，出现时触发提示并压低置信度
var OutdatedTechnologies = []string{
	"flash", "silverlight", "actionscript", "vbscript", "cobol", "fortran",
	"visual basic 6", "frontpage", "dreamweaver", "jquery", "angularjs",
	"internet explorer", "soap", "svn", "cvs", "perl cgi",
}

// Roles 规范化职位词表
var Roles = []string{
	"software engineer", "frontend developer", "backend developer", "full stack developer",
	"mobile developer", "data scientist", "machine learning engineer", "devops engineer",
	"cloud architect", "system administrator", "database administrator", "qa engineer",
	"product manager", "project manager", "ux designer", "ui designer", "graphic designer",
	"data analyst", "business analyst", "network engineer", "security engineer", "web developer",
	"ios developer", "android developer", "game developer", "embedded systems engineer",
}

// JobTitleSuffixes 职位短语的结尾词，用于职位短语识别
var JobTitleSuffixes = []string{
	"engineer", "developer", "manager", "analyst", "designer", "architect",
	"consultant", "scientist", "administrator", "specialist", "lead", "director", "intern",
}

// SeniorityMarkers 资深职位标记词，含这些词的职位排序靠前
var SeniorityMarkers = []string{
	"senior", "lead", "principal", "head", "chief", "director", "staff",
}

// BoilerplateTerms 简历模板噪声词，出现在标题或职位中时过滤掉
var BoilerplateTerms = []string{
	"resume", "curriculum vitae", "cv", "references", "reference",
}

// SectionHeaders 各章节的标题短语词表，行首匹配
var SectionHeaders = map[string][]string{
	"skills": {
		"skills", "technical skills", "core competencies", "technologies",
		"skill set", "areas of expertise", "tech stack",
	},
	"education": {
		"education", "academic background", "educational background",
		"academics", "qualifications",
	},
	"experience": {
		"experience", "work experience", "professional experience",
		"employment history", "work history", "career history",
	},
	"projects": {
		"projects", "personal projects", "key projects", "selected projects",
		"academic projects", "side projects", "portfolio",
	},
}

// EducationKeywords 教育相关关键词
var EducationKeywords = []string{
	"bachelor", "master", "phd", "doctorate", "b.s.", "m.s.", "b.a.", "m.a.",
	"bsc", "msc", "mba", "degree", "diploma", "university", "college",
	"institute", "school", "graduated", "graduation", "major", "gpa",
}

// InstitutionNouns 教育机构名词
var InstitutionNouns = []string{
	"university", "college", "institute", "school", "academy", "polytechnic",
}

// DegreeTokens 学位名称词
var DegreeTokens = []string{
	"bachelor", "master", "phd", "doctorate", "b.s.", "m.s.", "b.a.", "m.a.",
	"bsc", "msc", "mba", "associate", "diploma",
}

// PrestigeAdjectives 声望修饰词
var PrestigeAdjectives = []string{
	"prestigious", "renowned", "top-ranked", "ivy league", "world-class", "elite",
}

// PrestigiousInstitutions 知名院校词表
var PrestigiousInstitutions = []string{
	"mit", "stanford", "harvard", "berkeley", "carnegie mellon", "caltech",
	"oxford", "cambridge", "princeton", "yale", "eth zurich", "tsinghua",
	"georgia tech", "cornell", "columbia",
}

// TechnicalFieldKeywords 技术专业领域关键词
var TechnicalFieldKeywords = []string{
	"computer science", "software engineering", "electrical engineering",
	"computer engineering", "information technology", "data science",
	"mathematics", "physics", "statistics",
}

// AdvancedDegreeKeywords 高等学位关键词
var AdvancedDegreeKeywords = []string{
	"master", "phd", "doctorate", "mba", "m.s.", "msc", "m.a.",
}

// HonorsPhrases 荣誉与优等表述
var HonorsPhrases = []string{
	"summa cum laude", "magna cum laude", "cum laude", "with honors",
	"with distinction", "first class", "dean's list", "valedictorian",
}

// ComplexityIndicators 项目复杂度指示词
var ComplexityIndicators = []string{
	"architecture", "scalable", "distributed", "microservices", "real-time",
	"high availability", "concurrent", "optimization", "integration",
	"end-to-end", "full stack", "pipeline", "infrastructure",
}

// ChallengeKeywords 攻坚类表述
var ChallengeKeywords = []string{
	"challenge", "challenging", "complex", "difficult", "bottleneck",
	"legacy", "constraint", "trade-off",
}

// ScaleKeywords 规模类表述
var ScaleKeywords = []string{
	"enterprise", "production", "global", "large-scale", "millions",
	"high-traffic", "mission-critical",
}

// LeadershipVerbs 主导类动词
var LeadershipVerbs = []string{
	"led", "managed", "directed", "coordinated", "supervised", "mentored",
	"drove", "spearheaded", "owned",
}

// SkillContextPhrases 技能语境短语，邻近出现时提升置信度
var SkillContextPhrases = []string{
	"experience with", "experienced in", "proficient in", "knowledge of",
	"skilled in", "expertise in", "worked with", "familiar with", "hands-on",
}

// SoftSkillEvidencePhrases 软技能佐证短语
var SoftSkillEvidencePhrases = []string{
	"demonstrated", "proven", "strong", "excellent", "effective",
	"track record of", "recognized for",
}

// MigrationContextPhrases 技术迁移语境短语，命中时不再视为过时技术
var MigrationContextPhrases = []string{
	"migrated from", "migrated away from", "replaced", "upgraded from",
	"moved away from", "transitioned from", "deprecated",
}

// PassionIndicators 热情指示词
var PassionIndicators = []string{
	"passionate", "passion", "love", "enjoy", "enthusiastic", "excited",
	"fascinated", "keen",
}

// PersonalProjectIndicators 个人项目指示词
var PersonalProjectIndicators = []string{
	"personal project", "side project", "hobby", "open source", "open-source",
	"in my free time", "self-initiated", "weekend project",
}

// OwnershipVerbs 主人翁动词，兴趣打分时作为弱信号
var OwnershipVerbs = []string{
	"built", "created", "designed", "founded", "launched", "initiated",
	"authored", "maintained",
}

// GrowthIndicators 成长指示词
var GrowthIndicators = []string{
	"learning", "learned", "growth", "improved", "advanced", "certification",
	"certified", "course", "bootcamp", "workshop", "self-taught",
}

// LearningPatterns 学习行为短语
var LearningPatterns = []string{
	"currently learning", "eager to learn", "quick learner", "continuous learning",
	"upskilling", "pursuing certification", "completed course",
}

// CareerProgressionPhrases 职业晋升短语
var CareerProgressionPhrases = []string{
	"promoted to", "advanced to", "progressed to", "transitioned to",
	"grew from", "rose to",
}

// AdaptabilityKeywords 适应性关键词
var AdaptabilityKeywords = []string{
	"adapted", "adaptable", "flexible", "pivoted", "versatile", "cross-functional",
}

// FutureGoalIndicators 未来目标指示词
var FutureGoalIndicators = []string{
	"aspire", "aim to", "goal is", "looking to", "seeking to", "plan to",
}

// GrowthPriorityTerms 成长领域排序优先词
var GrowthPriorityTerms = []string{
	"career progression", "learning", "certification", "adaptability",
}

// WeakPhrases 弱表述短语，被动或缺乏主人翁意识的措辞
var WeakPhrases = []string{
	"responsible for", "duties included", "worked on", "helped with",
	"assisted with", "was involved in", "participated in", "tasked with",
	"in charge of",
}

// ActionVerbs 强动作动词
var ActionVerbs = []string{
	"achieved", "built", "created", "delivered", "designed", "developed",
	"drove", "engineered", "implemented", "improved", "increased", "launched",
	"led", "optimized", "reduced", "redesigned", "shipped", "spearheaded",
	"streamlined", "transformed",
}

// GenericBuzzwords 空泛流行语
var GenericBuzzwords = []string{
	"team player", "hard working", "hard-working", "detail oriented",
	"detail-oriented", "go-getter", "self-starter", "results-driven",
	"think outside the box", "synergy", "dynamic", "motivated individual",
}

// Stopwords 重复度检查时忽略的常见词
var Stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "that": true,
	"this": true, "from": true, "have": true, "was": true, "were": true,
	"are": true, "been": true, "has": true, "had": true, "will": true,
	"would": true, "could": true, "into": true, "over": true, "our": true,
	"their": true, "your": true, "not": true, "all": true, "can": true,
	"using": true, "used": true, "use": true,
}

// RepetitionAllowList 重复度检查豁免词，简历中天然高频
var RepetitionAllowList = map[string]bool{
	"experience": true, "project": true, "projects": true, "team": true,
	"work": true, "development": true, "software": true, "skills": true,
}

// PastTenseVerbs 时态一致性检查用的过去式动词样本
var PastTenseVerbs = []string{
	"developed", "built", "created", "managed", "led", "designed",
	"implemented", "improved", "launched", "delivered",
}

// PresentTenseVerbs 时态一致性检查用的现在式动词样本
var PresentTenseVerbs = []string{
	"develop", "build", "create", "manage", "lead", "design",
	"implement", "improve", "launch", "deliver",
}

// CommonEmailDomains 常见邮箱服务商与通用顶级域
var CommonEmailDomains = []string{
	"gmail.com", "outlook.com", "hotmail.com", "yahoo.com", "icloud.com",
	"protonmail.com", "qq.com", "163.com",
}

// MonthNames 月份名到月份序号的映射，经历区间解析用
var MonthNames = map[string]int{
	"january": 1, "jan": 1,
	"february": 2, "feb": 2,
	"march": 3, "mar": 3,
	"april": 4, "apr": 4,
	"may": 5,
	"june": 6, "jun": 6,
	"july": 7, "jul": 7,
	"august": 8, "aug": 8,
	"september": 9, "sep": 9, "sept": 9,
	"october": 10, "oct": 10,
	"november": 11, "nov": 11,
	"december": 12, "dec": 12,
}
