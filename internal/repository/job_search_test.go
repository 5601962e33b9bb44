package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildJobFilterAlwaysGated(t *testing.T) {
	// Whatever the filters, the visibility gate leads the condition.
	queries := []JobSearchQuery{
		{},
		{Keywords: "go"},
		{Location: "Berlin", Category: "devops"},
		{Keywords: "go", Location: "Berlin", Category: "devops", JobType: "remote", ExperienceLevel: "senior"},
	}
	for _, q := range queries {
		cond, _ := buildJobFilter(q)
		assert.True(t, strings.HasPrefix(cond, "j.is_active = 1 AND j.is_approved = 1"),
			"condition %q must start with the visibility gate", cond)
	}
}

func TestBuildJobFilterNoFilters(t *testing.T) {
	cond, args := buildJobFilter(JobSearchQuery{})
	assert.Equal(t, "j.is_active = 1 AND j.is_approved = 1", cond)
	assert.Empty(t, args)
}

func TestBuildJobFilterKeywordsOrBlock(t *testing.T) {
	cond, args := buildJobFilter(JobSearchQuery{Keywords: "Go Engineer"})
	// One OR block over the three text columns, ANDed with the gate.
	assert.Contains(t, cond,
		"(LOWER(j.title) LIKE ? OR LOWER(j.description) LIKE ? OR LOWER(j.skills_required) LIKE ?)")
	assert.Equal(t, []any{"%go engineer%", "%go engineer%", "%go engineer%"}, args)
}

func TestBuildJobFilterBlankMeansAbsent(t *testing.T) {
	// Whitespace-only keywords and location behave exactly like absence.
	blank, blankArgs := buildJobFilter(JobSearchQuery{Keywords: "   ", Location: "\t"})
	none, noneArgs := buildJobFilter(JobSearchQuery{})
	assert.Equal(t, none, blank)
	assert.Equal(t, noneArgs, blankArgs)
}

func TestBuildJobFilterAllFilters(t *testing.T) {
	cond, args := buildJobFilter(JobSearchQuery{
		Keywords:        "backend",
		Location:        "Remote",
		Category:        "software-development",
		JobType:         "full-time",
		ExperienceLevel: "mid",
	})
	assert.Equal(t, 6, strings.Count(cond, " AND "),
		"gate (2 terms) plus four filter clauses")
	assert.Contains(t, cond, "LOWER(j.location) LIKE ?")
	assert.Contains(t, cond, "j.category = ?")
	assert.Contains(t, cond, "j.job_type = ?")
	assert.Contains(t, cond, "j.experience_level = ?")
	// Args follow clause order: three keyword patterns, then the rest.
	assert.Equal(t, []any{
		"%backend%", "%backend%", "%backend%",
		"%remote%",
		"software-development",
		"full-time",
		"mid",
	}, args)
}

func TestBuildJobFilterCaseInsensitive(t *testing.T) {
	_, upper := buildJobFilter(JobSearchQuery{Keywords: "PYTHON"})
	_, lower := buildJobFilter(JobSearchQuery{Keywords: "python"})
	assert.Equal(t, lower, upper)
}
