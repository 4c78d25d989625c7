package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommend_RanksByScoreDescending(t *testing.T) {
	cands := []Candidate{
		{ClinicianID: "dr_a", SlotID: "s1", TimeIndex: 0, Score: 0.4},
		{ClinicianID: "dr_b", SlotID: "s2", TimeIndex: 1, Score: 0.9},
		{ClinicianID: "dr_c", SlotID: "s3", TimeIndex: 2, Score: 0.7},
	}

	top := Recommend(cands, 3)
	require.Len(t, top, 3)
	assert.Equal(t, "dr_b", top[0].ClinicianID)
	assert.Equal(t, "dr_c", top[1].ClinicianID)
	assert.Equal(t, "dr_a", top[2].ClinicianID)
}

func TestRecommend_TieBreaksByTimeIndexThenClinician(t *testing.T) {
	cands := []Candidate{
		{ClinicianID: "dr_b", SlotID: "late", TimeIndex: 5, Score: 0.8},
		{ClinicianID: "dr_b", SlotID: "early", TimeIndex: 1, Score: 0.8},
		{ClinicianID: "dr_a", SlotID: "early", TimeIndex: 1, Score: 0.8},
	}

	top := Recommend(cands, 3)
	require.Len(t, top, 3)
	assert.Equal(t, "dr_a", top[0].ClinicianID)
	assert.Equal(t, 1, top[0].TimeIndex)
	assert.Equal(t, "dr_b", top[1].ClinicianID)
	assert.Equal(t, 1, top[1].TimeIndex)
	assert.Equal(t, 5, top[2].TimeIndex)
}

func TestRecommend_ReturnsAtMostK(t *testing.T) {
	cands := make([]Candidate, 10)
	for i := range cands {
		cands[i] = Candidate{ClinicianID: "dr_a", TimeIndex: i, Score: float64(i) / 10}
	}

	assert.Len(t, Recommend(cands, 3), 3)
	assert.Len(t, Recommend(cands[:2], 3), 2)
	assert.Empty(t, Recommend(nil, 3))
	assert.Empty(t, Recommend(cands, 0))
}

func TestRecommend_DoesNotMutateInput(t *testing.T) {
	cands := []Candidate{
		{ClinicianID: "dr_a", TimeIndex: 0, Score: 0.1},
		{ClinicianID: "dr_b", TimeIndex: 1, Score: 0.9},
	}

	Recommend(cands, 2)
	assert.Equal(t, "dr_a", cands[0].ClinicianID)
}

func TestRecommend_Deterministic(t *testing.T) {
	cands := []Candidate{
		{ClinicianID: "dr_c", SlotID: "s1", TimeIndex: 3, Score: 0.5},
		{ClinicianID: "dr_a", SlotID: "s2", TimeIndex: 3, Score: 0.5},
		{ClinicianID: "dr_b", SlotID: "s3", TimeIndex: 0, Score: 0.5},
	}

	first := Recommend(cands, 3)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Recommend(cands, 3))
	}
}
