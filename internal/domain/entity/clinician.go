package entity

import (
	"time"

	"github.com/google/uuid"
)

// Clinician represents a rehabilitation clinician and their weekly
// availability over the shared timeslot template. Specialties is a
// non-empty tag set; the optimizer matches it by equality only.
type Clinician struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FullName     string     `gorm:"type:varchar(255);not null" json:"full_name"`
	Specialties  StringList `gorm:"type:jsonb;not null" json:"specialties"`
	ClinicName   string     `gorm:"type:varchar(255)" json:"clinic_name,omitempty"`
	Latitude     *float64   `gorm:"type:double precision" json:"latitude,omitempty"`
	Longitude    *float64   `gorm:"type:double precision" json:"longitude,omitempty"`
	Availability BoolMap    `gorm:"type:jsonb" json:"availability,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Clinician) TableName() string {
	return "clinicians"
}

func (c *Clinician) HasLocation() bool {
	return c.Latitude != nil && c.Longitude != nil
}
