package optimizer

import "fmt"

// Urgency is the declared priority tier of a patient.
type Urgency string

const (
	UrgencyLow    Urgency = "Low"
	UrgencyMedium Urgency = "Medium"
	UrgencyHigh   Urgency = "High"
)

// SubScore maps the urgency ladder onto [0,1]. Unknown values are treated
// as Low rather than rejected; urgency is validated at the API boundary.
func (u Urgency) SubScore() float64 {
	switch u {
	case UrgencyHigh:
		return 1.0
	case UrgencyMedium:
		return 0.6
	default:
		return 0.3
	}
}

func (u Urgency) Valid() bool {
	return u == UrgencyLow || u == UrgencyMedium || u == UrgencyHigh
}

// Coordinate is a WGS84 point. A nil *Coordinate means "location unknown".
type Coordinate struct {
	Lat float64
	Lon float64
}

// Patient is the optimizer's immutable view of a patient. Availability and
// TimePreferences are sparse: an absent slot means unavailable / neutral
// preference, never an error.
type Patient struct {
	ID                   string
	Name                 string
	QualityScore         float64
	Urgency              Urgency
	SpecialtyNeeded      string
	Location             *Coordinate
	MaxDistanceKM        float64
	Availability         map[string]bool
	TimePreferences      map[string]float64
	ContinuityClinicians map[string]bool
}

// Clinician is the optimizer's immutable view of a clinician.
type Clinician struct {
	ID           string
	Name         string
	Specialties  []string
	Location     *Coordinate
	Availability map[string]bool
}

func (c Clinician) HasSpecialty(specialty string) bool {
	for _, s := range c.Specialties {
		if s == specialty {
			return true
		}
	}
	return false
}

// Timeslot is one entry of the shared weekly slot template. TimeIndex is
// strictly increasing in chronological order and drives tie-breaks.
type Timeslot struct {
	ID        string
	Day       string
	TimeLabel string
	TimeIndex int
}

// Candidate is an eligible (patient, clinician, timeslot) triple. Candidates
// are ephemeral: recomputed on every solve, never persisted.
type Candidate struct {
	PatientID      string
	PatientUrgency Urgency
	ClinicianID    string
	ClinicianName  string
	SlotID         string
	Day            string
	TimeLabel      string
	TimeIndex      int
	DistanceKM     float64
	Score          float64
}

// Weights are the four objective weights of the composite score. They must
// sum to 1.0 so the weighted sum of [0,1] sub-scores stays in [0,1].
type Weights struct {
	Urgency        float64
	Proximity      float64
	Continuity     float64
	TimePreference float64
}

// DefaultWeights is the recognized configuration set.
var DefaultWeights = Weights{
	Urgency:        0.35,
	Proximity:      0.30,
	Continuity:     0.20,
	TimePreference: 0.15,
}

// CriticalWeights shifts priority toward urgency for patients whose rehab
// quality crossed the critical threshold.
var CriticalWeights = Weights{
	Urgency:        0.50,
	Proximity:      0.25,
	Continuity:     0.15,
	TimePreference: 0.10,
}

const weightTolerance = 1e-9

func (w Weights) Sum() float64 {
	return w.Urgency + w.Proximity + w.Continuity + w.TimePreference
}

func (w Weights) Validate() error {
	sum := w.Sum()
	if sum-1.0 > weightTolerance || 1.0-sum > weightTolerance {
		return fmt.Errorf("weights must sum to 1.0, got %v", sum)
	}
	return nil
}
