package models

// WeatherData is the current-conditions snapshot for one location. JSON
// field names follow the provider payload.
type WeatherData struct {
	Location Location `json:"location"`
	Current  Current  `json:"current"`
}

// Location identifies where the conditions were observed.
type Location struct {
	Name    string `json:"name"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

// Current holds the observed values.
type Current struct {
	TempC      float64   `json:"temp_c"`
	Condition  Condition `json:"condition"`
	WindKph    float64   `json:"wind_kph"`
	Humidity   int       `json:"humidity"`
	FeelsLikeC float64   `json:"feelslike_c"`
}

// Condition is the localized description and icon URL of the sky.
type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}

// Suggestion is one autocomplete hit.
type Suggestion struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

// Label formats s as "name, region, country".
func (s Suggestion) Label() string {
	return s.Name + ", " + s.Region + ", " + s.Country
}
