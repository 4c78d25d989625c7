package entity

import (
	"time"

	"github.com/google/uuid"
)

// Urgency level constants (closed set, validated at the API boundary)
const (
	UrgencyLow    = "Low"
	UrgencyMedium = "Medium"
	UrgencyHigh   = "High"
)

// Patient represents a rehabilitation patient with the constraints and
// preferences the matching optimizer consumes. Availability and
// TimePreferences are keyed by timeslot ID.
type Patient struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FullName             string     `gorm:"type:varchar(255);not null" json:"full_name"`
	QualityScore         float64    `gorm:"type:numeric(4,2);not null;default:5.0" json:"quality_score"`
	Urgency              string     `gorm:"type:varchar(10);not null;default:'Low'" json:"urgency"`
	SpecialtyNeeded      string     `gorm:"type:varchar(100);not null;index" json:"specialty_needed"`
	Latitude             *float64   `gorm:"type:double precision" json:"latitude,omitempty"`
	Longitude            *float64   `gorm:"type:double precision" json:"longitude,omitempty"`
	MaxDistanceKM        float64    `gorm:"column:max_distance_km;not null;default:10" json:"max_distance_km"`
	Availability         BoolMap    `gorm:"type:jsonb" json:"availability,omitempty"`
	TimePreferences      FloatMap   `gorm:"type:jsonb" json:"time_preferences,omitempty"`
	ContinuityClinicians StringList `gorm:"type:jsonb" json:"continuity_clinicians,omitempty"`
	CreatedAt            time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}

// HasLocation reports whether the patient has usable coordinates.
func (p *Patient) HasLocation() bool {
	return p.Latitude != nil && p.Longitude != nil
}
