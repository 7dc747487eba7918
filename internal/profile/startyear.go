// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profile

import (
	"regexp"
	"strconv"

	"github.com/pdiddy/profile-builder/pkg/types"
)

var fourDigits = regexp.MustCompile(`\d{4}`)

// DeriveStartYear returns the smallest year after MinStartYear found in any
// experience date, or types.DefaultStartYear if none is smaller. The result
// never exceeds the default: a profile whose jobs all start after 2022 still
// reports 2022.
func DeriveStartYear(entries []types.ExperienceEntry) int {
	earliest := types.DefaultStartYear
	for _, e := range entries {
		for _, m := range fourDigits.FindAllString(e.Date, -1) {
			y, err := strconv.Atoi(m)
			if err != nil {
				continue
			}
			if y < earliest && y > MinStartYear {
				earliest = y
			}
		}
	}
	return earliest
}
