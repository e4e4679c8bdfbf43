package models

// DisasterEvent is a single record of the historical disaster registry served
// under /api/history. DisNo is the EM-DAT style identifier the backend uses
// as the resource key.
type DisasterEvent struct {
	DisNo         string  `json:"disNo"`
	EventName     string  `json:"eventName"`
	DisasterType  string  `json:"disasterType"`
	Country       string  `json:"country"`
	YearEvent     int     `json:"yearEvent"`
	StartDate     string  `json:"startDate,omitempty"`
	EndDate       string  `json:"endDate,omitempty"`
	Latitude      float64 `json:"latitude,omitempty"`
	Longitude     float64 `json:"longitude,omitempty"`
	TotalDeaths   int64   `json:"totalDeaths,omitempty"`
	TotalAffected int64   `json:"totalAffected,omitempty"`
}
