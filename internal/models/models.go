// Package models provides the data structures returned by the sunrise sunset API, once normalized.
package models

// Response is the envelope returned by the API.
type Response struct {
	Results Results `json:"results" toml:"results"`
	Status  string  `json:"status" toml:"status"`
}

// Results holds the solar events of one day at one location.
//
// Time of day fields hold 24-hour "15:04:05" readings. A nil time field is a reading the API
// returned in a format that could not be normalized, and is not written out.
// DayLength and Timezone are passed through as returned.
type Results struct {
	Date       string  `json:"date" toml:"date"`
	Sunrise    *string `json:"sunrise" toml:"sunrise,omitempty"`
	Sunset     *string `json:"sunset" toml:"sunset,omitempty"`
	FirstLight *string `json:"first_light" toml:"first_light,omitempty"`
	LastLight  *string `json:"last_light" toml:"last_light,omitempty"`
	Dawn       *string `json:"dawn" toml:"dawn,omitempty"`
	Dusk       *string `json:"dusk" toml:"dusk,omitempty"`
	SolarNoon  *string `json:"solar_noon" toml:"solar_noon,omitempty"`
	GoldenHour *string `json:"golden_hour" toml:"golden_hour,omitempty"`
	DayLength  string  `json:"day_length" toml:"day_length"`
	Timezone   string  `json:"timezone" toml:"timezone"`
	UTCOffset  int32   `json:"utc_offset" toml:"utc_offset"`
}
