package dto

// CandidateResponse is one recommended or assigned (clinician, timeslot)
// entry. Distance is rounded to 1 decimal, score to 3 decimals.
type CandidateResponse struct {
	PatientID     string  `json:"patient_id"`
	ClinicianID   string  `json:"clinician_id"`
	ClinicianName string  `json:"clinician_name"`
	TimeslotID    string  `json:"timeslot_id"`
	Day           string  `json:"day"`
	TimeLabel     string  `json:"time_label"`
	TimeIndex     int     `json:"time_index"`
	DistanceKM    float64 `json:"distance_km"`
	Score         float64 `json:"score"`
}

type NotificationResponse struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

type RecommendationResponse struct {
	PatientID         string                `json:"patient_id"`
	Recommendations   []CandidateResponse   `json:"recommendations"`
	NeedsIntervention bool                  `json:"needs_intervention"`
	Notification      *NotificationResponse `json:"notification,omitempty"`
}

type BatchRecommendationResponse struct {
	Results []RecommendationResponse `json:"results"`
	Total   int                      `json:"total"`
}
