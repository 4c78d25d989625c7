package converter

import (
	"rehab-match/internal/domain/entity"
	"rehab-match/internal/optimizer"
)

// PatientToOptimizer converts a persisted patient into the optimizer's
// immutable snapshot record. Sparse maps are copied so a solve never
// aliases entity state.
func PatientToOptimizer(p *entity.Patient) optimizer.Patient {
	continuity := make(map[string]bool, len(p.ContinuityClinicians))
	for _, id := range p.ContinuityClinicians {
		continuity[id] = true
	}

	return optimizer.Patient{
		ID:                   p.ID.String(),
		Name:                 p.FullName,
		QualityScore:         p.QualityScore,
		Urgency:              optimizer.Urgency(p.Urgency),
		SpecialtyNeeded:      p.SpecialtyNeeded,
		Location:             coordinate(p.Latitude, p.Longitude),
		MaxDistanceKM:        p.MaxDistanceKM,
		Availability:         copyBoolMap(p.Availability),
		TimePreferences:      copyFloatMap(p.TimePreferences),
		ContinuityClinicians: continuity,
	}
}

func PatientsToOptimizer(patients []entity.Patient) []optimizer.Patient {
	out := make([]optimizer.Patient, len(patients))
	for i := range patients {
		out[i] = PatientToOptimizer(&patients[i])
	}
	return out
}

func ClinicianToOptimizer(c *entity.Clinician) optimizer.Clinician {
	return optimizer.Clinician{
		ID:           c.ID.String(),
		Name:         c.FullName,
		Specialties:  append([]string{}, c.Specialties...),
		Location:     coordinate(c.Latitude, c.Longitude),
		Availability: copyBoolMap(c.Availability),
	}
}

func CliniciansToOptimizer(clinicians []entity.Clinician) []optimizer.Clinician {
	out := make([]optimizer.Clinician, len(clinicians))
	for i := range clinicians {
		out[i] = ClinicianToOptimizer(&clinicians[i])
	}
	return out
}

func TimeslotToOptimizer(t *entity.Timeslot) optimizer.Timeslot {
	return optimizer.Timeslot{
		ID:        t.ID,
		Day:       t.Day,
		TimeLabel: t.TimeLabel,
		TimeIndex: t.TimeIndex,
	}
}

func TimeslotsToOptimizer(slots []entity.Timeslot) []optimizer.Timeslot {
	out := make([]optimizer.Timeslot, len(slots))
	for i := range slots {
		out[i] = TimeslotToOptimizer(&slots[i])
	}
	return out
}

func coordinate(lat, lon *float64) *optimizer.Coordinate {
	if lat == nil || lon == nil {
		return nil
	}
	return &optimizer.Coordinate{Lat: *lat, Lon: *lon}
}

func copyBoolMap(m entity.BoolMap) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyFloatMap(m entity.FloatMap) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
