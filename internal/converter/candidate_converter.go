package converter

import (
	"rehab-match/internal/delivery/dto"
	"rehab-match/internal/optimizer"

	"github.com/shopspring/decimal"
)

// CandidateToResponse shapes an optimizer candidate for the API. Distance
// and score are rounded through decimal so the JSON carries exactly 1 and
// 3 fractional digits instead of float artifacts.
func CandidateToResponse(c optimizer.Candidate) dto.CandidateResponse {
	return dto.CandidateResponse{
		PatientID:     c.PatientID,
		ClinicianID:   c.ClinicianID,
		ClinicianName: c.ClinicianName,
		TimeslotID:    c.SlotID,
		Day:           c.Day,
		TimeLabel:     c.TimeLabel,
		TimeIndex:     c.TimeIndex,
		DistanceKM:    decimal.NewFromFloat(c.DistanceKM).Round(1).InexactFloat64(),
		Score:         decimal.NewFromFloat(c.Score).Round(3).InexactFloat64(),
	}
}

func CandidatesToResponses(candidates []optimizer.Candidate) []dto.CandidateResponse {
	responses := make([]dto.CandidateResponse, len(candidates))
	for i, c := range candidates {
		responses[i] = CandidateToResponse(c)
	}
	return responses
}

func NotificationToResponse(n *optimizer.Notification) *dto.NotificationResponse {
	if n == nil {
		return nil
	}
	return &dto.NotificationResponse{
		Level:   string(n.Level),
		Message: n.Message,
	}
}
