package optimizer

// EligibleCandidates enumerates every (clinician, timeslot) pair that
// satisfies all hard constraints for the patient:
//
//  1. the clinician covers the patient's needed specialty,
//  2. both parties are available at the slot (sparse maps, absent = false),
//  3. the clinician is within the patient's travel limit.
//
// An empty result means "no feasible match", not a failure. Candidates come
// back unscored; see ScoreCandidates.
func (e *Engine) EligibleCandidates(p Patient, clinicians []Clinician, slots []Timeslot) []Candidate {
	candidates := []Candidate{}

	for _, c := range clinicians {
		if !c.HasSpecialty(p.SpecialtyNeeded) {
			continue
		}

		dist := e.DistanceKM(p.Location, c.Location)
		if dist > p.MaxDistanceKM {
			continue
		}

		for _, slot := range slots {
			if !p.Availability[slot.ID] || !c.Availability[slot.ID] {
				continue
			}
			candidates = append(candidates, Candidate{
				PatientID:      p.ID,
				PatientUrgency: p.Urgency,
				ClinicianID:    c.ID,
				ClinicianName:  c.Name,
				SlotID:         slot.ID,
				Day:            slot.Day,
				TimeLabel:      slot.TimeLabel,
				TimeIndex:      slot.TimeIndex,
				DistanceKM:     dist,
			})
		}
	}

	return candidates
}
