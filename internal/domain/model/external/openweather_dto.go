package external

// OpenWeatherResponse is the subset of the /data/2.5/weather payload the service reads.
// Pointer fields distinguish an absent value from a zero reading.
type OpenWeatherResponse struct {
	Name    string                 `json:"name"`
	Coord   OpenWeatherCoord       `json:"coord"`
	Sys     OpenWeatherSys         `json:"sys"`
	Main    OpenWeatherMain        `json:"main"`
	Wind    OpenWeatherWind        `json:"wind"`
	Rain    *OpenWeatherRain       `json:"rain,omitempty"`
	Weather []OpenWeatherCondition `json:"weather"`
}

type OpenWeatherCoord struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

type OpenWeatherSys struct {
	Country string `json:"country"`
}

type OpenWeatherMain struct {
	Temp      *float64 `json:"temp"`
	FeelsLike *float64 `json:"feels_like"`
	Humidity  *int     `json:"humidity"`
}

type OpenWeatherWind struct {
	Speed *float64 `json:"speed"`
}

// OpenWeatherRain holds precipitation volumes in millimetres.
type OpenWeatherRain struct {
	OneHour *float64 `json:"1h"`
}

type OpenWeatherCondition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
