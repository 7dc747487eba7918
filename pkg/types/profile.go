// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultStartYear is the experienceStartYear reported when no experience
// date yields an earlier qualifying year.
const DefaultStartYear = 2022

// ProfileRecord is the structured form of one exported LinkedIn profile.
// Field order is the key order of the rendered JSON document.
type ProfileRecord struct {
	Name     string `json:"name" yaml:"name"`
	Headline string `json:"headline" yaml:"headline"`

	// Location is empty when no leading line mentions a known place.
	Location string `json:"location" yaml:"location"`

	// About is the summary section joined into one paragraph.
	About string `json:"about" yaml:"about"`

	// ExperienceStartYear is the earliest year after 2000 found in the
	// experience dates, capped at DefaultStartYear.
	ExperienceStartYear int `json:"experienceStartYear" yaml:"experience_start_year"`

	Experience     []ExperienceEntry `json:"experience" yaml:"experience"`
	Education      []EducationEntry  `json:"education" yaml:"education"`
	Skills         []string          `json:"skills" yaml:"skills"`
	Certifications []string          `json:"certifications" yaml:"certifications"`
}

// ExperienceEntry is one job, in source order (most recent first).
type ExperienceEntry struct {
	Title   string `json:"title" yaml:"title"`
	Company string `json:"company" yaml:"company"`

	// Date is the raw date-range line, e.g. "Jan 2021 - Present".
	Date        string `json:"date" yaml:"date"`
	Description string `json:"description" yaml:"description"`
}

// EducationEntry is one school, in source order.
type EducationEntry struct {
	Institution string `json:"institution" yaml:"institution"`
	Degree      string `json:"degree" yaml:"degree"`

	// Date is the raw year-range line, e.g. "2012 - 2016".
	Date        string `json:"date" yaml:"date"`
	Description string `json:"description" yaml:"description"`
}

// NewProfileRecord returns the all-defaults record: empty strings, empty
// (non-nil) slices and DefaultStartYear.
func NewProfileRecord() ProfileRecord {
	return ProfileRecord{
		ExperienceStartYear: DefaultStartYear,
		Experience:          []ExperienceEntry{},
		Education:           []EducationEntry{},
		Skills:              []string{},
		Certifications:      []string{},
	}
}
