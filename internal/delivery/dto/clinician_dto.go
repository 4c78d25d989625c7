package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateClinicianRequest struct {
	FullName     string          `json:"full_name" validate:"required,max=255"`
	Specialties  []string        `json:"specialties" validate:"required,min=1,dive,required"`
	ClinicName   string          `json:"clinic_name" validate:"omitempty,max=255"`
	Latitude     *float64        `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude    *float64        `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Availability map[string]bool `json:"availability"`
}

type UpdateClinicianRequest struct {
	FullName     string           `json:"full_name" validate:"omitempty,max=255"`
	Specialties  *[]string        `json:"specialties" validate:"omitempty,min=1,dive,required"`
	ClinicName   string           `json:"clinic_name" validate:"omitempty,max=255"`
	Latitude     *float64         `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude    *float64         `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Availability *map[string]bool `json:"availability"`
}

// Response DTOs

type ClinicianResponse struct {
	ID           uuid.UUID       `json:"id"`
	FullName     string          `json:"full_name"`
	Specialties  []string        `json:"specialties"`
	ClinicName   string          `json:"clinic_name,omitempty"`
	Latitude     *float64        `json:"latitude,omitempty"`
	Longitude    *float64        `json:"longitude,omitempty"`
	Availability map[string]bool `json:"availability,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type ClinicianListResponse struct {
	Clinicians []ClinicianResponse `json:"clinicians"`
	Total      int                 `json:"total"`
}
