package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weeklySlots() []Timeslot {
	return []Timeslot{
		{ID: "mon_9am", Day: "Monday", TimeLabel: "9:00 AM", TimeIndex: 0},
		{ID: "mon_1pm", Day: "Monday", TimeLabel: "1:00 PM", TimeIndex: 1},
		{ID: "tue_9am", Day: "Tuesday", TimeLabel: "9:00 AM", TimeIndex: 2},
	}
}

func testPatient() Patient {
	return Patient{
		ID:              "patient_1",
		Name:            "Jane Doe",
		QualityScore:    7.0,
		Urgency:         UrgencyLow,
		SpecialtyNeeded: "Post-op",
		MaxDistanceKM:   15.0,
		Availability:    map[string]bool{"mon_9am": true, "mon_1pm": true},
		TimePreferences: map[string]float64{"mon_9am": 1.0},
		ContinuityClinicians: map[string]bool{
			"dr_chen": true,
		},
	}
}

func testClinician(id string, specialties ...string) Clinician {
	return Clinician{
		ID:          id,
		Name:        "Dr. " + id,
		Specialties: specialties,
		Availability: map[string]bool{
			"mon_9am": true,
			"mon_1pm": true,
			"tue_9am": true,
		},
	}
}

func TestEligibleCandidates_AllConstraintsHold(t *testing.T) {
	e := newTestEngine(t)
	p := testPatient()
	clinicians := []Clinician{
		testClinician("dr_chen", "Post-op", "MSK"),
		testClinician("dr_smith", "MSK"), // specialty mismatch
	}

	cands := e.EligibleCandidates(p, clinicians, weeklySlots())
	require.NotEmpty(t, cands)

	for _, c := range cands {
		assert.Equal(t, "dr_chen", c.ClinicianID)
		assert.True(t, p.Availability[c.SlotID], "patient must be available at %s", c.SlotID)
		assert.LessOrEqual(t, c.DistanceKM, p.MaxDistanceKM)
	}
	// tue_9am is outside the patient's availability.
	assert.Len(t, cands, 2)
}

func TestEligibleCandidates_SparseAvailabilityDefaultsToFalse(t *testing.T) {
	e := newTestEngine(t)
	p := testPatient()
	p.Availability = map[string]bool{"tue_9am": true}

	c := testClinician("dr_chen", "Post-op")
	c.Availability = map[string]bool{"mon_9am": true} // no overlap

	cands := e.EligibleCandidates(p, []Clinician{c}, weeklySlots())
	assert.Empty(t, cands)
}

func TestEligibleCandidates_DistanceLimit(t *testing.T) {
	e := newTestEngine(t)
	p := testPatient()
	p.Location = &Coordinate{Lat: 0, Lon: 0}
	p.MaxDistanceKM = 50.0

	near := testClinician("dr_near", "Post-op")
	near.Location = &Coordinate{Lat: 0.1, Lon: 0} // ~11 km
	far := testClinician("dr_far", "Post-op")
	far.Location = &Coordinate{Lat: 1, Lon: 0} // ~111 km

	cands := e.EligibleCandidates(p, []Clinician{near, far}, weeklySlots())
	require.NotEmpty(t, cands)
	for _, c := range cands {
		assert.Equal(t, "dr_near", c.ClinicianID)
	}
}

func TestEligibleCandidates_MissingCoordinatesUseDefault(t *testing.T) {
	e := newTestEngine(t)
	p := testPatient()
	p.MaxDistanceKM = 5.0 // below the 10 km default

	cands := e.EligibleCandidates(p, []Clinician{testClinician("dr_chen", "Post-op")}, weeklySlots())
	assert.Empty(t, cands)

	p.MaxDistanceKM = 10.0
	cands = e.EligibleCandidates(p, []Clinician{testClinician("dr_chen", "Post-op")}, weeklySlots())
	assert.NotEmpty(t, cands)
}

func TestEligibleCandidates_NoMatchIsEmptyNotError(t *testing.T) {
	e := newTestEngine(t)
	p := testPatient()
	p.SpecialtyNeeded = "Neuro"

	cands := e.EligibleCandidates(p, []Clinician{testClinician("dr_chen", "Post-op")}, weeklySlots())
	assert.NotNil(t, cands)
	assert.Empty(t, cands)
}
