package converter

import (
	"rehab-match/internal/delivery/dto"
	"rehab-match/internal/domain/entity"
)

// ClinicianToResponse converts a Clinician entity to ClinicianResponse DTO
func ClinicianToResponse(c *entity.Clinician) *dto.ClinicianResponse {
	if c == nil {
		return nil
	}
	return &dto.ClinicianResponse{
		ID:           c.ID,
		FullName:     c.FullName,
		Specialties:  c.Specialties,
		ClinicName:   c.ClinicName,
		Latitude:     c.Latitude,
		Longitude:    c.Longitude,
		Availability: c.Availability,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// CliniciansToResponses converts a slice of Clinician entities to DTOs
func CliniciansToResponses(clinicians []entity.Clinician) []dto.ClinicianResponse {
	responses := make([]dto.ClinicianResponse, len(clinicians))
	for i := range clinicians {
		responses[i] = *ClinicianToResponse(&clinicians[i])
	}
	return responses
}
