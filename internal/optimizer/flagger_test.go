package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A 2.6 quality score on a Medium-urgency patient escalates to High and
// flags the patient for intervention.
func TestFlag_CriticalEscalatesUrgency(t *testing.T) {
	e := newTestEngine(t)

	p := testPatient()
	p.QualityScore = 2.6
	p.Urgency = UrgencyMedium
	p.MaxDistanceKM = 10.0

	res := e.Flag(p)

	assert.True(t, res.NeedsIntervention)
	assert.Equal(t, UrgencyHigh, res.Patient.Urgency)
	require.NotNil(t, res.Notification)
	assert.Equal(t, NotificationCritical, res.Notification.Level)
	assert.InDelta(t, 15.0, res.Patient.MaxDistanceKM, 1e-9)
	assert.Equal(t, CriticalWeights, res.Weights)
}

func TestFlag_ConcerningKeepsUrgency(t *testing.T) {
	e := newTestEngine(t)

	p := testPatient()
	p.QualityScore = 4.5
	p.Urgency = UrgencyLow

	res := e.Flag(p)

	assert.False(t, res.NeedsIntervention)
	assert.Equal(t, UrgencyLow, res.Patient.Urgency)
	require.NotNil(t, res.Notification)
	assert.Equal(t, NotificationConcerning, res.Notification.Level)
	assert.Equal(t, p.MaxDistanceKM, res.Patient.MaxDistanceKM)
	assert.Equal(t, DefaultWeights, res.Weights)
}

func TestFlag_GoodScoreLeavesPatientUntouched(t *testing.T) {
	e := newTestEngine(t)

	p := testPatient()
	p.QualityScore = 8.0
	p.Urgency = UrgencyHigh // clinician-set, must not downgrade

	res := e.Flag(p)

	assert.False(t, res.NeedsIntervention)
	assert.Equal(t, UrgencyHigh, res.Patient.Urgency)
	assert.Nil(t, res.Notification)
}

func TestFlag_DoesNotMutateInput(t *testing.T) {
	e := newTestEngine(t)

	p := testPatient()
	p.QualityScore = 1.0
	p.Urgency = UrgencyLow

	_ = e.Flag(p)

	assert.Equal(t, UrgencyLow, p.Urgency)
	assert.Equal(t, 15.0, p.MaxDistanceKM)
}

func TestFlag_ThresholdBoundary(t *testing.T) {
	e := newTestEngine(t)

	p := testPatient()
	p.QualityScore = 3.0 // exactly at threshold: not critical
	p.Urgency = UrgencyMedium

	res := e.Flag(p)

	assert.False(t, res.NeedsIntervention)
	assert.Equal(t, UrgencyMedium, res.Patient.Urgency)
}
