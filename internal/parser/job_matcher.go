package parser

import (
	"math"
	"strings"

	"resume-insight-go/internal/constants"
	"resume-insight-go/internal/types"
)

// MatchJobDescription 对简历和岗位描述各做一次技术技能词表命中，取交集
// 匹配率为命中岗位技能的百分比（四舍五入），岗位无命中技能时为0
func MatchJobDescription(resumeText, jobDescriptionText string) types.JobMatchResult {
	resumeSkills := matchTerms(strings.ToLower(resumeText), constants.TechnicalSkills)
	jobSkills := matchTerms(strings.ToLower(jobDescriptionText), constants.TechnicalSkills)

	resumeSet := map[string]bool{}
	for _, s := range resumeSkills {
		resumeSet[s] = true
	}

	matching := []string{}
	missing := []string{}
	for _, s := range jobSkills {
		if resumeSet[s] {
			matching = append(matching, s)
		} else {
			missing = append(missing, s)
		}
	}

	percentage := 0
	if len(jobSkills) > 0 {
		percentage = int(math.Round(100 * float64(len(matching)) / float64(len(jobSkills))))
	}

	return types.JobMatchResult{
		MatchPercentage: percentage,
		MatchingSkills:  matching,
		MissingSkills:   missing,
		JobSkills:       jobSkills,
	}
}
