package optimizer

// ScoreCandidate computes the composite desirability score for a candidate
// as a weighted sum of four sub-scores, each normalized to [0,1]:
// urgency ladder, proximity, continuity-of-care and time preference.
// With weights summing to 1.0 the result is guaranteed to stay in [0,1].
func (e *Engine) ScoreCandidate(p Patient, c Candidate, w Weights) float64 {
	urgency := p.Urgency.SubScore()
	proximity := proximitySubScore(c.DistanceKM, p.MaxDistanceKM)

	continuity := 0.0
	if p.ContinuityClinicians[c.ClinicianID] {
		continuity = 1.0
	}

	timePref := 0.5
	if pref, ok := p.TimePreferences[c.SlotID]; ok {
		timePref = pref
	}

	return w.Urgency*urgency +
		w.Proximity*proximity +
		w.Continuity*continuity +
		w.TimePreference*timePref
}

// ScoreCandidates fills in Score for every candidate of a single patient.
func (e *Engine) ScoreCandidates(p Patient, candidates []Candidate, w Weights) []Candidate {
	for i := range candidates {
		candidates[i].Score = e.ScoreCandidate(p, candidates[i], w)
	}
	return candidates
}

// proximitySubScore is 1.0 at distance zero and falls linearly to 0.0 at
// the patient's travel limit. The 0/0 case scores 1.0: a patient with no
// travel budget meeting a clinician at distance zero is a perfect match.
func proximitySubScore(distKM, maxDistKM float64) float64 {
	if maxDistKM == 0 {
		if distKM == 0 {
			return 1.0
		}
		return 0.0
	}
	s := 1.0 - distKM/maxDistKM
	if s < 0 {
		return 0.0
	}
	return s
}
