package entity

import "time"

// Timeslot is one entry of the fixed weekly slot template shared by all
// patients and clinicians. TimeIndex orders slots chronologically and is
// unique across the catalog.
type Timeslot struct {
	ID        string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	Day       string    `gorm:"type:varchar(20);not null" json:"day"`
	TimeLabel string    `gorm:"type:varchar(20);not null" json:"time_label"`
	TimeIndex int       `gorm:"uniqueIndex;not null" json:"time_index"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Timeslot) TableName() string {
	return "timeslots"
}
