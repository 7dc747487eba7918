// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/profile-builder/pkg/types"
)

func TestSegmentExperience(t *testing.T) {
	longLine := strings.Repeat("x", TitleLineMaxLen)

	tests := []struct {
		name  string
		lines []string
		want  []types.ExperienceEntry
	}{
		{
			name:  "title before date, company after",
			lines: []string{"Backend Engineer", "Jan 2021 - Present", "Acme Corp", "Built payment systems."},
			want: []types.ExperienceEntry{
				{Title: "Backend Engineer", Company: "Acme Corp", Date: "Jan 2021 - Present", Description: "Built payment systems."},
			},
		},
		{
			// Fields are purely positional: the line before the date is the
			// title and the line after it the company, whatever they say.
			name:  "positional fields with company first",
			lines: []string{"Backend Engineer", "Acme Corp", "Jan 2021 - Present", "Built payment systems."},
			want: []types.ExperienceEntry{
				{Title: "Acme Corp", Company: "Built payment systems.", Date: "Jan 2021 - Present"},
			},
		},
		{
			name: "short line before next date starts the next entry",
			lines: []string{
				"Lead Engineer", "Mar 2022 - Present", "Acme", "Did things.", "More things.",
				"Engineer", "Jan 2019 - Feb 2022", "Initech", "Wrote code.",
			},
			want: []types.ExperienceEntry{
				{Title: "Lead Engineer", Company: "Acme", Date: "Mar 2022 - Present", Description: "Did things. More things."},
				{Title: "Engineer", Company: "Initech", Date: "Jan 2019 - Feb 2022", Description: "Wrote code."},
			},
		},
		{
			name: "long line before next date stays in description and is also the next title",
			lines: []string{
				"Lead Engineer", "Mar 2022 - Present", "Acme", longLine,
				"Jan 2019 - Feb 2022", "Initech",
			},
			want: []types.ExperienceEntry{
				{Title: "Lead Engineer", Company: "Acme", Date: "Mar 2022 - Present", Description: longLine},
				{Title: longLine, Company: "Initech", Date: "Jan 2019 - Feb 2022"},
			},
		},
		{
			name:  "adjacent dates leave company empty",
			lines: []string{"Title", "Jan 2020 - Present", "Feb 2019 - Dec 2019", "Somewhere"},
			want: []types.ExperienceEntry{
				{Title: "Title", Date: "Jan 2020 - Present"},
				{Title: "Jan 2020 - Present", Company: "Somewhere", Date: "Feb 2019 - Dec 2019"},
			},
		},
		{
			name:  "date on first line has no title",
			lines: []string{"Jan 2020 - Present", "Acme"},
			want: []types.ExperienceEntry{
				{Company: "Acme", Date: "Jan 2020 - Present"},
			},
		},
		{
			name:  "date line is trimmed",
			lines: []string{"Title", "  May 2015 - Jun 2017  "},
			want: []types.ExperienceEntry{
				{Title: "Title", Date: "May 2015 - Jun 2017"},
			},
		},
		{
			name:  "tight dash spacing matches",
			lines: []string{"Title", "Sep 2015-Oct 2016"},
			want: []types.ExperienceEntry{
				{Title: "Title", Date: "Sep 2015-Oct 2016"},
			},
		},
		{
			name:  "month names are case-sensitive",
			lines: []string{"Title", "jan 2020 - present", "Company"},
			want:  []types.ExperienceEntry{},
		},
		{
			name:  "year ranges without months are not experience dates",
			lines: []string{"Title", "2019 - 2020"},
			want:  []types.ExperienceEntry{},
		},
		{
			name:  "empty",
			lines: nil,
			want:  []types.ExperienceEntry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SegmentExperience(tt.lines))
		})
	}
}

func TestSegmentEducation(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []types.EducationEntry
	}{
		{
			name:  "institution, years, degree",
			lines: []string{"University of Ghana", "2012 - 2016", "BSc Computer Science", "Graduated with honours."},
			want: []types.EducationEntry{
				{Institution: "University of Ghana", Degree: "BSc Computer Science", Date: "2012 - 2016", Description: "Graduated with honours."},
			},
		},
		{
			name: "two schools",
			lines: []string{
				"MIT", "2016 - 2018", "MSc", "Thesis on consensus.",
				"KNUST", "2012 - 2016", "BSc",
			},
			want: []types.EducationEntry{
				{Institution: "MIT", Degree: "MSc", Date: "2016 - 2018", Description: "Thesis on consensus."},
				{Institution: "KNUST", Degree: "BSc", Date: "2012 - 2016"},
			},
		},
		{
			name:  "month-year ranges are not education dates",
			lines: []string{"School", "Sep 2012 - Jun 2016", "Degree"},
			want:  []types.EducationEntry{},
		},
		{
			name:  "empty",
			lines: []string{},
			want:  []types.EducationEntry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SegmentEducation(tt.lines))
		})
	}
}
