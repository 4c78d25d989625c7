package converter

import (
	"rehab-match/internal/delivery/dto"
	"rehab-match/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(p *entity.Patient) *dto.PatientResponse {
	if p == nil {
		return nil
	}
	return &dto.PatientResponse{
		ID:                   p.ID,
		FullName:             p.FullName,
		QualityScore:         p.QualityScore,
		Urgency:              p.Urgency,
		SpecialtyNeeded:      p.SpecialtyNeeded,
		Latitude:             p.Latitude,
		Longitude:            p.Longitude,
		MaxDistanceKM:        p.MaxDistanceKM,
		Availability:         p.Availability,
		TimePreferences:      p.TimePreferences,
		ContinuityClinicians: p.ContinuityClinicians,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities to DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}
