package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProximitySubScore(t *testing.T) {
	tests := []struct {
		name    string
		dist    float64
		maxDist float64
		want    float64
	}{
		{"at clinic", 0, 10, 1.0},
		{"halfway", 5, 10, 0.5},
		{"at limit", 10, 10, 0.0},
		{"beyond limit clamps", 20, 10, 0.0},
		{"zero over zero", 0, 0, 1.0},
		{"positive over zero", 3, 0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, proximitySubScore(tt.dist, tt.maxDist), 1e-9)
		})
	}
}

func TestUrgencySubScore(t *testing.T) {
	assert.Equal(t, 1.0, UrgencyHigh.SubScore())
	assert.Equal(t, 0.6, UrgencyMedium.SubScore())
	assert.Equal(t, 0.3, UrgencyLow.SubScore())
	assert.Equal(t, 0.3, Urgency("").SubScore())
}

func TestScoreCandidate_WeightedSum(t *testing.T) {
	e := newTestEngine(t)
	p := testPatient()
	p.Urgency = UrgencyHigh

	cand := Candidate{
		PatientID:   p.ID,
		ClinicianID: "dr_chen", // continuity match
		SlotID:      "mon_9am", // preference 1.0
		DistanceKM:  0,
	}

	// 0.35*1.0 + 0.30*1.0 + 0.20*1.0 + 0.15*1.0 = 1.0
	score := e.ScoreCandidate(p, cand, DefaultWeights)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestScoreCandidate_NeutralTimePreferenceDefault(t *testing.T) {
	e := newTestEngine(t)
	p := testPatient()
	p.Urgency = UrgencyLow

	cand := Candidate{
		PatientID:   p.ID,
		ClinicianID: "dr_smith", // no continuity
		SlotID:      "tue_9am",  // no stated preference
		DistanceKM:  p.MaxDistanceKM,
	}

	// 0.35*0.3 + 0.30*0.0 + 0.20*0.0 + 0.15*0.5 = 0.18
	score := e.ScoreCandidate(p, cand, DefaultWeights)
	assert.InDelta(t, 0.18, score, 1e-9)
}

func TestScoreCandidates_BoundsProperty(t *testing.T) {
	e := newTestEngine(t)
	patients := []Patient{testPatient()}
	patients[0].Urgency = UrgencyMedium
	clinicians := []Clinician{
		testClinician("dr_chen", "Post-op"),
		testClinician("dr_jones", "Post-op"),
	}

	for _, p := range patients {
		cands := e.EligibleCandidates(p, clinicians, weeklySlots())
		cands = e.ScoreCandidates(p, cands, DefaultWeights)
		for _, c := range cands {
			assert.GreaterOrEqual(t, c.Score, 0.0)
			assert.LessOrEqual(t, c.Score, 1.0)
		}
	}
}

// A clinician 0.1 km away with a 10 km budget yields a proximity sub-score
// of 0.99 and tops the recommendation list.
func TestScoreCandidate_NearbyClinicScenario(t *testing.T) {
	e := newTestEngine(t)

	p := testPatient()
	p.MaxDistanceKM = 10.0
	p.Location = &Coordinate{Lat: 0, Lon: 0}
	p.Availability = map[string]bool{"mon_9am": true}

	near := testClinician("dr_near", "Post-op")
	near.Location = &Coordinate{Lat: 0.0009, Lon: 0} // ~0.1 km

	cands := e.EligibleCandidates(p, []Clinician{near}, weeklySlots())
	require.Len(t, cands, 1)
	assert.InDelta(t, 0.99, proximitySubScore(cands[0].DistanceKM, p.MaxDistanceKM), 0.001)

	cands = e.ScoreCandidates(p, cands, DefaultWeights)
	top := Recommend(cands, 3)
	require.NotEmpty(t, top)
	assert.Equal(t, "dr_near", top[0].ClinicianID)
	assert.Equal(t, "mon_9am", top[0].SlotID)
}

func TestWeightsValidate(t *testing.T) {
	require.NoError(t, DefaultWeights.Validate())
	require.NoError(t, CriticalWeights.Validate())

	bad := Weights{Urgency: 0.5, Proximity: 0.5, Continuity: 0.5}
	require.Error(t, bad.Validate())
}
