// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profile

import "github.com/pdiddy/profile-builder/internal/vocab"

// Location is searched for in lines [locationWindowStart, locationWindowEnd).
const (
	locationWindowStart = 2
	locationWindowEnd   = 10
)

// Header holds the fields read from the top of the export.
type Header struct {
	Name     string
	Headline string
	Location string
}

// ExtractHeader reads the name and headline from the first two lines and
// takes the first line in the location window that mentions a known place.
func ExtractHeader(lines []string, v vocab.Vocabulary) Header {
	var h Header
	if len(lines) > 0 {
		h.Name = lines[0]
	}
	if len(lines) > 1 {
		h.Headline = lines[1]
	}

	end := min(len(lines), locationWindowEnd)
	for i := locationWindowStart; i < end; i++ {
		if v.IsLocation(lines[i]) {
			h.Location = lines[i]
			break
		}
	}
	return h
}
