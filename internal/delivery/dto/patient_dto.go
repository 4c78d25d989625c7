package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePatientRequest struct {
	FullName             string             `json:"full_name" validate:"required,max=255"`
	QualityScore         float64            `json:"quality_score" validate:"gte=0,lte=10"`
	Urgency              string             `json:"urgency" validate:"required,oneof=Low Medium High"`
	SpecialtyNeeded      string             `json:"specialty_needed" validate:"required,max=100"`
	Latitude             *float64           `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude            *float64           `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	MaxDistanceKM        float64            `json:"max_distance_km" validate:"gte=0"`
	Availability         map[string]bool    `json:"availability"`
	TimePreferences      map[string]float64 `json:"time_preferences" validate:"omitempty,dive,gte=0,lte=1"`
	ContinuityClinicians []string           `json:"continuity_clinicians"`
}

type UpdatePatientRequest struct {
	FullName             string              `json:"full_name" validate:"omitempty,max=255"`
	QualityScore         *float64            `json:"quality_score" validate:"omitempty,gte=0,lte=10"`
	Urgency              string              `json:"urgency" validate:"omitempty,oneof=Low Medium High"`
	SpecialtyNeeded      string              `json:"specialty_needed" validate:"omitempty,max=100"`
	Latitude             *float64            `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude            *float64            `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	MaxDistanceKM        *float64            `json:"max_distance_km" validate:"omitempty,gte=0"`
	Availability         *map[string]bool    `json:"availability"`
	TimePreferences      *map[string]float64 `json:"time_preferences" validate:"omitempty,dive,gte=0,lte=1"`
	ContinuityClinicians *[]string           `json:"continuity_clinicians"`
}

// Response DTOs

type PatientResponse struct {
	ID                   uuid.UUID          `json:"id"`
	FullName             string             `json:"full_name"`
	QualityScore         float64            `json:"quality_score"`
	Urgency              string             `json:"urgency"`
	SpecialtyNeeded      string             `json:"specialty_needed"`
	Latitude             *float64           `json:"latitude,omitempty"`
	Longitude            *float64           `json:"longitude,omitempty"`
	MaxDistanceKM        float64            `json:"max_distance_km"`
	Availability         map[string]bool    `json:"availability,omitempty"`
	TimePreferences      map[string]float64 `json:"time_preferences,omitempty"`
	ContinuityClinicians []string           `json:"continuity_clinicians,omitempty"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
