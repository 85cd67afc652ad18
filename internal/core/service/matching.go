package service

import (
	"math"
	"strings"
)

// ParseSkills splits a comma-separated skill list, trimming blanks.
func ParseSkills(skills string) []string {
	out := []string{}
	for _, s := range strings.Split(skills, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// MatchScore rates how well a student's skills cover a job's skills, from 0 to
// 100. A student skill counts when it contains, or is contained in, any job
// skill. ok is false when either list has no skills.
func MatchScore(studentSkills, jobSkills string) (score int, ok bool) {
	student := lowerSplit(studentSkills)
	job := lowerSplit(jobSkills)
	if len(student) == 0 || len(job) == 0 {
		return 0, false
	}

	matched := 0
	for _, skill := range student {
		for _, js := range job {
			if strings.Contains(js, skill) || strings.Contains(skill, js) {
				matched++
				break
			}
		}
	}

	ratio := float64(matched) / float64(len(job)) * 100
	return int(math.Min(100, math.Round(ratio))), true
}

func lowerSplit(s string) []string {
	return ParseSkills(strings.ToLower(s))
}
