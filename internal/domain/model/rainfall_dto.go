package model

// RainfallPoint is one day of corrected precipitation, dated YYYY-MM-DD.
type RainfallPoint struct {
	Date   string  `json:"date" example:"2024-01-02"`
	RainMm float64 `json:"rain_mm" example:"3.46"`
}

// RainfallSeries is a daily precipitation series for a coordinate, ascending by date.
type RainfallSeries struct {
	Lat    float64         `json:"lat" example:"19.2"`
	Lon    float64         `json:"lon" example:"72.97"`
	Series []RainfallPoint `json:"series"`
}
