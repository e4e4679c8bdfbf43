package models

// SimulationSpec describes one disaster scenario to simulate. The risk
// prediction form produces these; POST /api/simulations accepts an array of
// them in a single request.
type SimulationSpec struct {
	InputYear         int     `json:"inputYear"`
	InputStartMonth   int     `json:"inputStartMonth"`
	InputStartDay     int     `json:"inputStartDay"`
	InputDisasterType string  `json:"inputDisasterType"`
	InputLatitude     float64 `json:"inputLatitude"`
	InputLongitude    float64 `json:"inputLongitude"`
	InputCountry      string  `json:"inputCountry,omitempty"`
	InputMagnitude    float64 `json:"inputMagnitude,omitempty"`
}

// Simulation is a created simulation as returned by the backend. The
// prediction pipeline fills IAProcessingStatus and, once complete,
// PredictedFatalityCategory.
type Simulation struct {
	ID                        int64   `json:"id"`
	DisasterType              string  `json:"disasterType"`
	IAProcessingStatus        string  `json:"iaProcessingStatus"`
	PredictedFatalityCategory string  `json:"predictedFatalityCategory,omitempty"`
	RequestTimestamp          string  `json:"requestTimestamp"`
	InputYear                 int     `json:"inputYear,omitempty"`
	InputLatitude             float64 `json:"inputLatitude,omitempty"`
	InputLongitude            float64 `json:"inputLongitude,omitempty"`
}

// DroneDispatch is the summary returned by POST /api/drone/dispatch/{id}.
type DroneDispatch struct {
	SimulationID          int64   `json:"simulationId,omitempty"`
	DronesDispatched      int     `json:"dronesDispatched"`
	EstimatedCoverageArea float64 `json:"estimatedCoverageArea"`
	MissionNotes          string  `json:"missionNotes,omitempty"`
}
