package timefmt_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ubuntu/sunrise-sunset/internal/timefmt"
)

func TestTo24Hour(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		in string

		want   string
		wantOK bool
	}{
		"Morning":                  {in: "07:15:00 AM", want: "07:15:00", wantOK: true},
		"Afternoon":                {in: "05:30:00 PM", want: "17:30:00", wantOK: true},
		"Midnight":                 {in: "12:00:00 AM", want: "00:00:00", wantOK: true},
		"Noon":                     {in: "12:00:00 PM", want: "12:00:00", wantOK: true},
		"Just after midnight":      {in: "12:00:01 AM", want: "00:00:01", wantOK: true},
		"Last second of day":       {in: "11:59:59 PM", want: "23:59:59", wantOK: true},
		"Single digit hour":        {in: "7:15:00 AM", want: "07:15:00", wantOK: true},
		"Single digit hour PM":     {in: "1:02:03 PM", want: "13:02:03", wantOK: true},
		"Without seconds":          {in: "05:30 PM", want: "17:30:00", wantOK: true},
		"Lowercase meridiem":       {in: "05:30:00 pm", want: "17:30:00", wantOK: true},
		"Mixed case meridiem":      {in: "05:30:00 Am", want: "05:30:00", wantOK: true},
		"Not a time":               {in: "notatime"},
		"Empty":                    {in: ""},
		"Missing meridiem":         {in: "07:15:00"},
		"Already 24 hour":          {in: "17:30:00"},
		"Hour zero":                {in: "00:15:00 AM"},
		"Hour thirteen":            {in: "13:15:00 PM"},
		"Minutes out of range":     {in: "07:60:00 AM"},
		"Seconds out of range":     {in: "07:15:60 AM"},
		"Single digit minutes":     {in: "07:5:00 AM"},
		"Trailing text":            {in: "07:15:00 AM UTC"},
		"Leading space":            {in: " 07:15:00 AM"},
		"Missing space":            {in: "07:15:00AM"},
		"Unknown meridiem":         {in: "07:15:00 XM"},
		"Signed hour":              {in: "+7:15:00 AM"},
		"ISO 8601 timestamp":       {in: "2024-01-01T07:15:00+00:00"},
		"Colon without components": {in: ":"},
		"Fractional seconds":       {in: "7:15:00.5 PM"},
		"Comma fractional seconds": {in: "7:15:00,999 PM"},
		"Fractional minutes":       {in: "7:15.5 PM"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, ok := timefmt.To24Hour(tc.in)
			assert.Equal(t, tc.wantOK, ok, "To24Hour should report whether the input is a 12-hour reading")
			assert.Equal(t, tc.want, got, "To24Hour should return the expected 24-hour reading")
		})
	}
}

func TestTo24HourAllReadings(t *testing.T) {
	t.Parallel()

	for _, meridiem := range []string{"AM", "PM"} {
		for hh := 1; hh <= 12; hh++ {
			for _, mmss := range []string{"00:00", "07:30", "59:59"} {
				in := fmt.Sprintf("%02d:%s %s", hh, mmss, meridiem)

				wantHour := hh % 12
				if meridiem == "PM" {
					wantHour += 12
				}
				want := fmt.Sprintf("%02d:%s", wantHour, mmss)

				got, ok := timefmt.To24Hour(in)
				assert.True(t, ok, "To24Hour should accept %q", in)
				assert.Equal(t, want, got, "To24Hour(%q) should return the 24-hour reading", in)
			}
		}
	}
}
