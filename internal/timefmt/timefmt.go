// Package timefmt converts clock readings between the 12-hour and 24-hour representations.
package timefmt

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// layouts are tried in order. Hours may be one or two digits, minutes and seconds are always two.
var layouts = []string{
	"3:04:05 PM",
	"3:04 PM",
}

const layout24 = "15:04:05"

// To24Hour converts a 12-hour clock reading with a meridiem indicator, like "07:15:00 PM", to
// its 24-hour equivalent "19:15:00". Seconds are optional in the input and always present in
// the output. The meridiem indicator is case insensitive.
//
// It reports false when s is not such a reading, including for hours outside 1-12.
func To24Hour(s string) (string, bool) {
	s = cases.Upper(language.Und).String(s)

	// time.Parse accepts fractional seconds even when the layout has none.
	if strings.ContainsAny(s, ".,") {
		return "", false
	}

	h, _, found := strings.Cut(s, ":")
	if !found {
		return "", false
	}
	// time.Parse accepts a 0 hour for 12-hour layouts.
	if hour, err := strconv.Atoi(h); err != nil || hour < 1 || hour > 12 {
		return "", false
	}

	for _, l := range layouts {
		t, err := time.Parse(l, s)
		if err != nil {
			continue
		}
		return t.Format(layout24), true
	}
	return "", false
}
