package dto

// Request DTOs

type CreateTimeslotRequest struct {
	ID        string `json:"id" validate:"required,max=50"`
	Day       string `json:"day" validate:"required,max=20"`
	TimeLabel string `json:"time_label" validate:"required,max=20"`
	TimeIndex int    `json:"time_index" validate:"gte=0"`
}

// Response DTOs

type TimeslotResponse struct {
	ID        string `json:"id"`
	Day       string `json:"day"`
	TimeLabel string `json:"time_label"`
	TimeIndex int    `json:"time_index"`
}

type TimeslotListResponse struct {
	Timeslots []TimeslotResponse `json:"timeslots"`
	Total     int                `json:"total"`
}
