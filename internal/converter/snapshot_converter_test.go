package converter

import (
	"testing"

	"rehab-match/internal/domain/entity"
	"rehab-match/internal/optimizer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientToOptimizer(t *testing.T) {
	lat, lon := 40.73, -73.99
	clinicianID := uuid.New()

	p := entity.Patient{
		ID:                   uuid.New(),
		FullName:             "Jane Doe",
		QualityScore:         2.5,
		Urgency:              entity.UrgencyMedium,
		SpecialtyNeeded:      "Post-op",
		Latitude:             &lat,
		Longitude:            &lon,
		MaxDistanceKM:        15.0,
		Availability:         entity.BoolMap{"mon_9am": true},
		TimePreferences:      entity.FloatMap{"mon_9am": 1.0},
		ContinuityClinicians: entity.StringList{clinicianID.String()},
	}

	got := PatientToOptimizer(&p)

	assert.Equal(t, p.ID.String(), got.ID)
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, optimizer.UrgencyMedium, got.Urgency)
	require.NotNil(t, got.Location)
	assert.Equal(t, lat, got.Location.Lat)
	assert.Equal(t, lon, got.Location.Lon)
	assert.True(t, got.Availability["mon_9am"])
	assert.True(t, got.ContinuityClinicians[clinicianID.String()])
}

func TestPatientToOptimizerMissingCoordinates(t *testing.T) {
	p := entity.Patient{ID: uuid.New(), Urgency: entity.UrgencyLow}

	got := PatientToOptimizer(&p)

	assert.Nil(t, got.Location)
}

func TestPatientToOptimizerCopiesMaps(t *testing.T) {
	p := entity.Patient{
		ID:           uuid.New(),
		Urgency:      entity.UrgencyLow,
		Availability: entity.BoolMap{"mon_9am": true},
	}

	got := PatientToOptimizer(&p)
	got.Availability["mon_9am"] = false

	assert.True(t, p.Availability["mon_9am"], "entity state must not alias snapshot state")
}

func TestClinicianToOptimizer(t *testing.T) {
	lat, lon := 40.741, -73.989
	c := entity.Clinician{
		ID:           uuid.New(),
		FullName:     "Dr. Chen",
		Specialties:  entity.StringList{"Post-op", "MSK"},
		Latitude:     &lat,
		Longitude:    &lon,
		Availability: entity.BoolMap{"tue_9am": true},
	}

	got := ClinicianToOptimizer(&c)

	assert.Equal(t, c.ID.String(), got.ID)
	assert.True(t, got.HasSpecialty("MSK"))
	assert.False(t, got.HasSpecialty("Neuro"))
	assert.True(t, got.Availability["tue_9am"])
}

func TestCandidateToResponseRounding(t *testing.T) {
	c := optimizer.Candidate{
		PatientID:     "p1",
		ClinicianID:   "c1",
		ClinicianName: "Dr. Chen",
		SlotID:        "mon_9am",
		Day:           "Monday",
		TimeLabel:     "9:00 AM",
		TimeIndex:     0,
		DistanceKM:    4.97312,
		Score:         0.86349,
	}

	got := CandidateToResponse(c)

	assert.Equal(t, 5.0, got.DistanceKM)
	assert.Equal(t, 0.863, got.Score)
	assert.Equal(t, "mon_9am", got.TimeslotID)
}
