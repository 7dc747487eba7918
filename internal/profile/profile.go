// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package profile turns the flattened line stream of a LinkedIn PDF export
// into a types.ProfileRecord. The export carries no field-level tags, so
// every field is located by its position relative to section headers and
// date-range lines.
//
// Parse is total: any line slice, including nil, yields a structurally
// complete record. Missing data falls back to the defaults of
// types.NewProfileRecord.
package profile

import (
	"regexp"
	"strings"

	"github.com/pdiddy/profile-builder/internal/vocab"
	"github.com/pdiddy/profile-builder/pkg/types"
)

const (
	// TitleLineMaxLen is the length below which a line directly preceding a
	// date anchor is taken as the next entry's title rather than description.
	TitleLineMaxLen = 60

	// ListLineMaxLen bounds skill and certification lines; longer lines are
	// prose that leaked into the section.
	ListLineMaxLen = 100

	// MinStartYear is the exclusive lower bound for years counted towards
	// the experience start year.
	MinStartYear = 2000
)

// pageMarker matches the "Page N" footer inserted by pagination.
var pageMarker = regexp.MustCompile(`^Page \d+`)

// Parse builds the profile record from trimmed, non-blank lines.
func Parse(lines []string, v vocab.Vocabulary) types.ProfileRecord {
	p := types.NewProfileRecord()

	h := ExtractHeader(lines, v)
	p.Name = h.Name
	p.Headline = h.Headline
	p.Location = h.Location

	sections := SplitSections(lines, v)

	p.About = JoinAbout(sections[vocab.Summary])
	p.Experience = SegmentExperience(sections[vocab.Experience])
	p.ExperienceStartYear = DeriveStartYear(p.Experience)
	p.Education = SegmentEducation(sections[vocab.Education])
	p.Skills = FilterListLines(sections[vocab.Skills])
	p.Certifications = FilterListLines(sections[vocab.Certifications])

	return p
}

// JoinAbout joins the summary section into one paragraph, dropping page
// markers.
func JoinAbout(lines []string) string {
	kept := make([]string, 0, len(lines))
	for _, l := range lines {
		if pageMarker.MatchString(l) {
			continue
		}
		kept = append(kept, l)
	}
	return strings.Join(kept, " ")
}
