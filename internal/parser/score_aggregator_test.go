package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-insight-go/internal/config"
	"resume-insight-go/internal/types"
)

// TestContactScoreWeighting 联系方式按字段重要性加权
func TestContactScoreWeighting(t *testing.T) {
	full := types.ContactInfo{Name: "Jane Doe", Email: "j@gmail.com", Phone: "555-123-4567", ProfileLink: "github.com/jane"}
	assert.InDelta(t, 10.0, contactScore(full), 0.001)

	emailOnly := types.ContactInfo{Email: "j@gmail.com"}
	assert.InDelta(t, 3.5, contactScore(emailOnly), 0.001)

	assert.InDelta(t, 1.0, contactScore(types.ContactInfo{}), 0.001, "全缺失也要落在下限以上")
}

// TestSkillsScoreBands 技术技能数量分档
func TestSkillsScoreBands(t *testing.T) {
	mkSkills := func(n int) []types.Skill {
		skills := make([]types.Skill, n)
		for i := range skills {
			skills[i] = types.Skill{Name: string(rune('a' + i)), Confidence: 0.8}
		}
		return skills
	}

	assert.InDelta(t, 9.0, skillsScore(types.SkillProfile{Technical: mkSkills(8)}), 0.001)
	assert.InDelta(t, 8.0, skillsScore(types.SkillProfile{Technical: mkSkills(5)}), 0.001)
	assert.InDelta(t, 6.0, skillsScore(types.SkillProfile{Technical: mkSkills(3)}), 0.001)
	assert.InDelta(t, 4.0, skillsScore(types.SkillProfile{Technical: mkSkills(1)}), 0.001)
	assert.InDelta(t, 2.0, skillsScore(types.SkillProfile{}), 0.001)

	// 软技能加成与过时技术扣分
	withSoft := types.SkillProfile{Technical: mkSkills(5), Soft: mkSkills(2)}
	assert.InDelta(t, 8.5, skillsScore(withSoft), 0.001)
	withOutdated := types.SkillProfile{Technical: mkSkills(5), Outdated: []string{"flash", "jquery"}}
	assert.InDelta(t, 7.0, skillsScore(withOutdated), 0.001)
}

// TestExperienceScoreSeniorBonus 年限分档加资深职位加成
func TestExperienceScoreSeniorBonus(t *testing.T) {
	assert.InDelta(t, 9.0, experienceScore(types.ExperienceProfile{Years: 12}), 0.001)
	assert.InDelta(t, 7.0, experienceScore(types.ExperienceProfile{Years: 5}), 0.001)
	assert.InDelta(t, 3.0, experienceScore(types.ExperienceProfile{}), 0.001)

	senior := types.ExperienceProfile{
		Years:     5,
		Positions: []string{"senior software engineer", "lead developer", "principal architect"},
	}
	assert.InDelta(t, 8.0, experienceScore(senior), 0.001, "资深加成应封顶1分")
}

// TestEntriesMeanScore 条目均值，空列表给固定低基线
func TestEntriesMeanScore(t *testing.T) {
	assert.InDelta(t, 3.0, entriesMeanScore(nil), 0.001)
	assert.InDelta(t, 7.5, entriesMeanScore([]float64{6, 9}), 0.001)
}

// TestAggregateScoreWeighted 总分为各分项的加权和，四舍五入到一位小数
func TestAggregateScoreWeighted(t *testing.T) {
	resume := &types.ParsedResume{
		Contact: types.ContactInfo{Name: "Jane Doe", Email: "j@gmail.com", Phone: "555-123-4567", ProfileLink: "github.com/jane"},
		Skills: types.SkillProfile{
			Technical: []types.Skill{
				{Name: "python"}, {Name: "react"}, {Name: "docker"},
				{Name: "kubernetes"}, {Name: "aws"},
			},
			Soft: []types.Skill{{Name: "leadership"}, {Name: "teamwork"}},
		},
		Experience: types.ExperienceProfile{Years: 5},
		Education:  []types.EducationEntry{{Text: "BSc", QualityScore: 9.5}},
		Writing:    types.WritingQualityReport{Score: 9.2},
	}

	score := AggregateScore(resume, config.DefaultScoreWeights())
	assert.InDelta(t, 10.0, score.Contact, 0.001)
	assert.InDelta(t, 8.5, score.Skills, 0.001)
	assert.InDelta(t, 7.0, score.Experience, 0.001)
	assert.InDelta(t, 9.5, score.Education, 0.001)
	assert.InDelta(t, 3.0, score.Projects, 0.001, "无项目时用低基线")
	// 10×0.15 + 8.5×0.25 + 7×0.25 + 9.5×0.15 + 3×0.10 + 9.2×0.10 = 8.02 → 8.0
	assert.InDelta(t, 8.0, score.Overall, 0.001)
}

// TestAggregateScoreBounds 空简历的总分也要落在[0,10]
func TestAggregateScoreBounds(t *testing.T) {
	score := AggregateScore(&types.ParsedResume{}, config.DefaultScoreWeights())
	assert.GreaterOrEqual(t, score.Overall, 0.0)
	assert.LessOrEqual(t, score.Overall, 10.0)
	for _, sub := range []float64{score.Contact, score.Skills, score.Experience, score.Education, score.Projects, score.Writing} {
		assert.GreaterOrEqual(t, sub, 1.0)
		assert.LessOrEqual(t, sub, 10.0)
	}
}
