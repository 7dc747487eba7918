// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profile

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/profile-builder/pkg/types"
)

const monthPattern = `(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)`

var (
	// experienceAnchor matches "Mon YYYY - Present" and "Mon YYYY - Mon YYYY"
	// anywhere in a line, so trailing durations like "(2 years)" still match.
	experienceAnchor = regexp.MustCompile(
		`(` + monthPattern + `\s+\d{4})\s*-\s*(Present|` + monthPattern + `\s+\d{4})`)

	// educationAnchor matches a bare "YYYY - YYYY" year range.
	educationAnchor = regexp.MustCompile(`(\d{4})\s*-\s*(\d{4})`)
)

// anchoredEntry is one entry located around a date anchor. before is the
// line preceding the anchor and after the line following it, when that line
// is not itself an anchor.
type anchoredEntry struct {
	before      string
	after       string
	date        string
	description string
}

// segment reconstructs entries from lines by treating every line that
// matches anchor as the date of one entry. Each anchor is considered in
// turn, even when an earlier entry's description already ran past it.
func segment(lines []string, anchor *regexp.Regexp) []anchoredEntry {
	var out []anchoredEntry
	for i, line := range lines {
		if !anchor.MatchString(line) {
			continue
		}
		out = append(out, entryAt(lines, i, anchor))
	}
	return out
}

// entryAt builds the entry anchored at lines[i].
func entryAt(lines []string, i int, anchor *regexp.Regexp) anchoredEntry {
	e := anchoredEntry{date: strings.TrimSpace(lines[i])}
	if i > 0 {
		e.before = lines[i-1]
	}

	j := i + 1
	if j < len(lines) && !anchor.MatchString(lines[j]) {
		e.after = lines[j]
		j++
	}

	var desc []string
	for ; j < len(lines); j++ {
		if anchor.MatchString(lines[j]) || startsNextEntry(lines, j, anchor) {
			break
		}
		desc = append(desc, lines[j])
	}
	e.description = strings.Join(desc, " ")
	return e
}

// startsNextEntry reports whether lines[j] looks like the title of the entry
// anchored at lines[j+1]: a short line directly followed by an anchor.
func startsNextEntry(lines []string, j int, anchor *regexp.Regexp) bool {
	return j+1 < len(lines) &&
		anchor.MatchString(lines[j+1]) &&
		utf8.RuneCountInString(lines[j]) < TitleLineMaxLen
}

// SegmentExperience splits the experience section into jobs. The title is
// the line before each "Mon YYYY - ..." anchor and the company the line
// after it.
func SegmentExperience(lines []string) []types.ExperienceEntry {
	entries := segment(lines, experienceAnchor)
	out := make([]types.ExperienceEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, types.ExperienceEntry{
			Title:       e.before,
			Company:     e.after,
			Date:        e.date,
			Description: e.description,
		})
	}
	return out
}

// SegmentEducation splits the education section into schools. The
// institution is the line before each "YYYY - YYYY" anchor and the degree
// the line after it.
func SegmentEducation(lines []string) []types.EducationEntry {
	entries := segment(lines, educationAnchor)
	out := make([]types.EducationEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, types.EducationEntry{
			Institution: e.before,
			Degree:      e.after,
			Date:        e.date,
			Description: e.description,
		})
	}
	return out
}
