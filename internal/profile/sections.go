// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profile

import "github.com/pdiddy/profile-builder/internal/vocab"

// Sections maps each section to its lines in source order. Header lines
// themselves are never included.
type Sections map[vocab.Section][]string

// SplitSections buckets lines under the most recent section header. Lines
// before the first recognised header belong to no section and are dropped.
// A section whose header appears more than once (e.g. repeated across pages)
// accumulates the lines of every span.
func SplitSections(lines []string, v vocab.Vocabulary) Sections {
	out := make(Sections, len(vocab.Sections))
	for _, s := range vocab.Sections {
		out[s] = []string{}
	}

	var current vocab.Section
	for _, line := range lines {
		if s, ok := v.SectionFor(line); ok {
			current = s
			continue
		}
		if current == "" {
			continue
		}
		out[current] = append(out[current], line)
	}
	return out
}
