// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vocab holds the fixed word lists the profile parser matches
// against: section header aliases and location markers. The defaults are
// embedded; a YAML file can override them per section.
package vocab

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Section identifies a logical profile section.
type Section string

const (
	Summary        Section = "summary"
	Experience     Section = "experience"
	Education      Section = "education"
	Skills         Section = "skills"
	Certifications Section = "certifications"
)

// Sections lists every section in matching order.
var Sections = []Section{Summary, Experience, Education, Skills, Certifications}

//go:embed vocabulary.yaml
var defaultYAML []byte

// SectionAliases maps one section to the header lines that open it.
type SectionAliases struct {
	Key     Section  `yaml:"key"`
	Aliases []string `yaml:"aliases"`
}

// Vocabulary is the full set of word lists used by the parser.
type Vocabulary struct {
	Sections  []SectionAliases `yaml:"sections"`
	Locations []string         `yaml:"locations"`
}

// Default returns the embedded vocabulary. It panics only if the embedded
// file is malformed, which the package tests rule out.
func Default() Vocabulary {
	v, err := parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("vocab: embedded vocabulary: %v", err))
	}
	return v
}

// Load reads a vocabulary override from path and merges it over the
// defaults. Sections named in the file replace the default aliases for that
// section; a non-empty locations list replaces the default locations. An
// empty path returns the defaults.
func Load(path string) (Vocabulary, error) {
	base := Default()
	if path == "" {
		return base, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("reading vocabulary %s: %w", path, err)
	}
	override, err := parse(data)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("parsing vocabulary %s: %w", path, err)
	}
	return base.merge(override), nil
}

func parse(data []byte) (Vocabulary, error) {
	var v Vocabulary
	if err := yaml.Unmarshal(data, &v); err != nil {
		return Vocabulary{}, err
	}
	for i, s := range v.Sections {
		if !isKnown(s.Key) {
			return Vocabulary{}, fmt.Errorf("unknown section %q", s.Key)
		}
		v.Sections[i].Aliases = normalizeAll(s.Aliases)
	}
	v.Locations = normalizeAll(v.Locations)
	return v, nil
}

func (v Vocabulary) merge(o Vocabulary) Vocabulary {
	out := Vocabulary{Locations: v.Locations}
	if len(o.Locations) > 0 {
		out.Locations = o.Locations
	}

	replaced := make(map[Section][]string, len(o.Sections))
	for _, s := range o.Sections {
		replaced[s.Key] = s.Aliases
	}
	for _, s := range v.Sections {
		if aliases, ok := replaced[s.Key]; ok {
			s.Aliases = aliases
		}
		out.Sections = append(out.Sections, s)
	}
	return out
}

// SectionFor reports which section the header line opens. Matching is
// exact after lower-casing and trimming; body text that merely contains a
// section name does not match.
func (v Vocabulary) SectionFor(line string) (Section, bool) {
	key := normalize(line)
	for _, s := range v.Sections {
		for _, alias := range s.Aliases {
			if key == alias {
				return s.Key, true
			}
		}
	}
	return "", false
}

// IsLocation reports whether the lower-cased line contains any location
// marker.
func (v Vocabulary) IsLocation(line string) bool {
	lower := strings.ToLower(line)
	for _, loc := range v.Locations {
		if strings.Contains(lower, loc) {
			return true
		}
	}
	return false
}

func isKnown(s Section) bool {
	for _, known := range Sections {
		if s == known {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func normalizeAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if n := normalize(s); n != "" {
			out = append(out, n)
		}
	}
	return out
}
