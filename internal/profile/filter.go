// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profile

import (
	"strings"
	"unicode/utf8"
)

// FilterListLines keeps the lines of a skills or certifications section
// that look like list items: non-empty, shorter than ListLineMaxLen, and not
// a page marker. Order is preserved and duplicates are kept.
func FilterListLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		item := strings.TrimSpace(l)
		if item == "" || utf8.RuneCountInString(item) >= ListLineMaxLen {
			continue
		}
		if pageMarker.MatchString(item) {
			continue
		}
		out = append(out, item)
	}
	return out
}
