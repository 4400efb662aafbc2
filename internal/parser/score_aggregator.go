package parser

import (
	"math"

	"resume-insight-go/internal/config"
	"resume-insight-go/internal/constants"
	"resume-insight-go/internal/types"
)

// 联系方式各字段的重要性权重，总和为1.0
var contactFieldWeights = struct {
	email, phone, name, link float64
}{
	email: 0.35,
	phone: 0.25,
	name:  0.25,
	link:  0.15,
}

// AggregateScore 独立计算各分项后按固定权重合成总分
func AggregateScore(resume *types.ParsedResume, weights config.ScoreWeights) types.ATSScore {
	score := types.ATSScore{
		Contact:    contactScore(resume.Contact),
		Skills:     skillsScore(resume.Skills),
		Experience: experienceScore(resume.Experience),
		Education:  entriesMeanScore(educationScores(resume.Education)),
		Projects:   entriesMeanScore(projectScores(resume.Projects)),
		Writing:    clampScore(resume.Writing.Score, 1, 10),
	}

	overall := score.Contact*weights.Contact +
		score.Skills*weights.Skills +
		score.Experience*weights.Experience +
		score.Education*weights.Education +
		score.Projects*weights.Projects +
		score.Writing*weights.Writing
	score.Overall = clampScore(math.Round(overall*10)/10, 0, 10)

	return score
}

// contactScore 按字段重要性加权的完整度
func contactScore(c types.ContactInfo) float64 {
	completeness := 0.0
	if c.Email != "" {
		completeness += contactFieldWeights.email
	}
	if c.Phone != "" {
		completeness += contactFieldWeights.phone
	}
	if c.Name != "" {
		completeness += contactFieldWeights.name
	}
	if c.ProfileLink != "" {
		completeness += contactFieldWeights.link
	}
	return clampScore(10*completeness, 1, 10)
}

// skillsScore 技术技能数量分档，软技能加成，过时技术扣分
func skillsScore(s types.SkillProfile) float64 {
	var base float64
	switch n := len(s.Technical); {
	case n >= 8:
		base = 9
	case n >= 5:
		base = 8
	case n >= 3:
		base = 6
	case n >= 1:
		base = 4
	default:
		base = 2
	}
	if len(s.Soft) >= 2 {
		base += 0.5
	}
	penalty := 0.5 * float64(len(s.Outdated))
	if penalty > 2 {
		penalty = 2
	}
	return clampScore(base-penalty, 1, 10)
}

// experienceScore 年限分档，资深职位加成
func experienceScore(e types.ExperienceProfile) float64 {
	var base float64
	switch y := e.Years; {
	case y >= 10:
		base = 9
	case y >= 7:
		base = 8
	case y >= 5:
		base = 7
	case y >= 3:
		base = 6
	case y >= 1:
		base = 5
	default:
		base = 3
	}

	seniorBonus := 0.0
	for _, p := range e.Positions {
		if containsAnyTerm(p, constants.SeniorityMarkers) {
			seniorBonus += 0.5
		}
	}
	if seniorBonus > 1 {
		seniorBonus = 1
	}
	return clampScore(base+seniorBonus, 1, 10)
}

func educationScores(entries []types.EducationEntry) []float64 {
	scores := make([]float64, 0, len(entries))
	for _, e := range entries {
		scores = append(scores, e.QualityScore)
	}
	return scores
}

func projectScores(projects []types.Project) []float64 {
	scores := make([]float64, 0, len(projects))
	for _, p := range projects {
		scores = append(scores, p.ComplexityScore)
	}
	return scores
}

// entriesMeanScore 条目质量分的均值，列表为空时给固定低基线
func entriesMeanScore(scores []float64) float64 {
	if len(scores) == 0 {
		return 3.0
	}
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return clampScore(sum/float64(len(scores)), 1, 10)
}
