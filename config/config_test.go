package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validOptimizerConfig() OptimizerConfig {
	return OptimizerConfig{
		Weights:          WeightConfig{Urgency: 0.35, Proximity: 0.30, Continuity: 0.20, TimePreference: 0.15},
		CriticalWeights:  WeightConfig{Urgency: 0.50, Proximity: 0.25, Continuity: 0.15, TimePreference: 0.10},
		DefaultDistKM:    10.0,
		CriticalScore:    3.0,
		ConcerningScore:  5.0,
		RadiusExpansion:  1.5,
		TopK:             3,
		SolverTimeout:    5 * time.Second,
		RecommendWorkers: 4,
		SnapshotTTL:      time.Minute,
	}
}

func TestOptimizerConfigValidate(t *testing.T) {
	assert.NoError(t, validOptimizerConfig().Validate())
}

func TestOptimizerConfigValidateRejectsBadWeightSum(t *testing.T) {
	cfg := validOptimizerConfig()
	cfg.Weights.Urgency = 0.5

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sum to 1.0")
}

func TestOptimizerConfigValidateRejectsBadCriticalWeightSum(t *testing.T) {
	cfg := validOptimizerConfig()
	cfg.CriticalWeights.TimePreference = 0.0

	err := cfg.Validate()
	assert.Error(t, err)
}

func TestOptimizerConfigValidateAllowsWeightRounding(t *testing.T) {
	// 0.1+0.2+0.3+0.4 does not sum to exactly 1.0 in float64
	cfg := validOptimizerConfig()
	cfg.Weights = WeightConfig{Urgency: 0.1, Proximity: 0.2, Continuity: 0.3, TimePreference: 0.4}

	assert.NoError(t, cfg.Validate())
}

func TestOptimizerConfigValidateRejectsNegativeDefaultDistance(t *testing.T) {
	cfg := validOptimizerConfig()
	cfg.DefaultDistKM = -1

	assert.Error(t, cfg.Validate())
}

func TestOptimizerConfigValidateRejectsShrinkingRadius(t *testing.T) {
	cfg := validOptimizerConfig()
	cfg.RadiusExpansion = 0.9

	assert.Error(t, cfg.Validate())
}

func TestOptimizerConfigValidateRejectsZeroTopK(t *testing.T) {
	cfg := validOptimizerConfig()
	cfg.TopK = 0

	assert.Error(t, cfg.Validate())
}

func TestOptimizerConfigValidateRejectsZeroWorkers(t *testing.T) {
	cfg := validOptimizerConfig()
	cfg.RecommendWorkers = 0

	assert.Error(t, cfg.Validate())
}
