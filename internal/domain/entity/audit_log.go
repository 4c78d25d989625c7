package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog represents a system audit trail entry
type AuditLog struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action    string     `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  JSON       `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Common audit actions
const (
	AuditActionRecommendationRun = "recommendation.generate"
	AuditActionOptimizeRun       = "optimize.run"
	AuditActionPatientCreate     = "patient.create"
	AuditActionPatientUpdate     = "patient.update"
	AuditActionPatientDelete     = "patient.delete"
	AuditActionClinicianCreate   = "clinician.create"
	AuditActionClinicianUpdate   = "clinician.update"
	AuditActionClinicianDelete   = "clinician.delete"
	AuditActionTimeslotCreate    = "timeslot.create"
	AuditActionTimeslotDelete    = "timeslot.delete"
)
