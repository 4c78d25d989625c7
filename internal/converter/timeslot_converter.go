package converter

import (
	"rehab-match/internal/delivery/dto"
	"rehab-match/internal/domain/entity"
)

// TimeslotToResponse converts a Timeslot entity to TimeslotResponse DTO
func TimeslotToResponse(t *entity.Timeslot) *dto.TimeslotResponse {
	if t == nil {
		return nil
	}
	return &dto.TimeslotResponse{
		ID:        t.ID,
		Day:       t.Day,
		TimeLabel: t.TimeLabel,
		TimeIndex: t.TimeIndex,
	}
}

// TimeslotsToResponses converts a slice of Timeslot entities to DTOs
func TimeslotsToResponses(slots []entity.Timeslot) []dto.TimeslotResponse {
	responses := make([]dto.TimeslotResponse, len(slots))
	for i := range slots {
		responses[i] = *TimeslotToResponse(&slots[i])
	}
	return responses
}
