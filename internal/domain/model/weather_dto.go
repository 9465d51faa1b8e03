package model

// CurrentWeather is the normalized current-weather reading.
type CurrentWeather struct {
	City       string  `json:"city" example:"Thane,IN"`
	Lat        float64 `json:"lat" example:"19.2"`
	Lon        float64 `json:"lon" example:"72.97"`
	TempC      float64 `json:"temp_c" example:"30.1"`
	FeelsLikeC float64 `json:"feels_like_c" example:"34.2"`
	Humidity   int     `json:"humidity" example:"70"`
	WindMs     float64 `json:"wind_ms" example:"3.6"`
	Rain1h     float64 `json:"rain_1h" example:"0"`
}

// CurrentConditions pairs a reading with the presentation fields only the page uses.
type CurrentConditions struct {
	Reading     CurrentWeather
	Name        string
	Country     string
	Description string
	Icon        string
}

// WeatherView is the data rendered by the index page.
type WeatherView struct {
	City        string
	Temp        int
	FeelsLike   int
	Description string
	Icon        string
	Humidity    int
	Wind        float64
}

// SaveResponse is returned after a reading has been stored.
type SaveResponse struct {
	SavedID int64 `json:"saved_id" example:"42"`
}

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Detail string `json:"detail" example:"OpenWeather API key not configured."`
}

// CaptureRequest is the queue message asking a worker to store one reading.
type CaptureRequest struct {
	City      string `json:"city"`
	RequestID string `json:"request_id"`
}
