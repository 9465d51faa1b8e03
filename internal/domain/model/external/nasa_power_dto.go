package external

// PowerParameterRainfall is the corrected precipitation parameter, in mm/day.
const PowerParameterRainfall = "PRECTOTCORR"

// PowerFillValue marks a day without data in POWER responses.
const PowerFillValue = -999.0

// PowerDailyResponse is the subset of a NASA POWER daily point response the service reads.
type PowerDailyResponse struct {
	Properties struct {
		// Parameter maps a parameter name to values keyed by YYYYMMDD.
		Parameter map[string]map[string]float64 `json:"parameter"`
	} `json:"properties"`
}
