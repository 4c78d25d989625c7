package main

import (
	"context"

	"rehab-match/config"
	"rehab-match/internal/domain/entity"
	"rehab-match/internal/infrastructure/database"
	"rehab-match/internal/repository"

	"github.com/sirupsen/logrus"
)

// Seeds a small demo catalog: a weekly slot template, three clinicians and
// three patients covering the critical, healthy and concerning quality bands.
func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(cfg.DB); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	timeslotRepo := repository.NewTimeslotRepository()
	clinicianRepo := repository.NewClinicianRepository()
	patientRepo := repository.NewPatientRepository()

	tx := db.WithContext(ctx).Begin()
	defer tx.Rollback()

	slots := []entity.Timeslot{
		{ID: "mon_9am", Day: "Monday", TimeLabel: "9:00 AM", TimeIndex: 0},
		{ID: "mon_10am", Day: "Monday", TimeLabel: "10:00 AM", TimeIndex: 1},
		{ID: "mon_1pm", Day: "Monday", TimeLabel: "1:00 PM", TimeIndex: 2},
		{ID: "mon_2pm", Day: "Monday", TimeLabel: "2:00 PM", TimeIndex: 3},
		{ID: "tue_9am", Day: "Tuesday", TimeLabel: "9:00 AM", TimeIndex: 4},
		{ID: "tue_10am", Day: "Tuesday", TimeLabel: "10:00 AM", TimeIndex: 5},
		{ID: "wed_9am", Day: "Wednesday", TimeLabel: "9:00 AM", TimeIndex: 6},
		{ID: "wed_2pm", Day: "Wednesday", TimeLabel: "2:00 PM", TimeIndex: 7},
		{ID: "thu_9am", Day: "Thursday", TimeLabel: "9:00 AM", TimeIndex: 8},
		{ID: "thu_1pm", Day: "Thursday", TimeLabel: "1:00 PM", TimeIndex: 9},
		{ID: "fri_9am", Day: "Friday", TimeLabel: "9:00 AM", TimeIndex: 10},
		{ID: "fri_2pm", Day: "Friday", TimeLabel: "2:00 PM", TimeIndex: 11},
		{ID: "fri_4pm", Day: "Friday", TimeLabel: "4:00 PM", TimeIndex: 12},
	}

	allSlots := entity.BoolMap{}
	for i := range slots {
		allSlots[slots[i].ID] = true
		if err := timeslotRepo.Create(ctx, tx, &slots[i]); err != nil {
			logrus.Fatalf("Failed to seed timeslot %s: %v", slots[i].ID, err)
		}
	}

	smith := entity.Clinician{
		FullName:     "Dr. Smith",
		Specialties:  entity.StringList{"MSK", "Post-op"},
		ClinicName:   "Riverside Rehab Center",
		Latitude:     ptr(40.758),
		Longitude:    ptr(-73.985),
		Availability: copyBools(allSlots),
	}
	jones := entity.Clinician{
		FullName:    "Dr. Jones",
		Specialties: entity.StringList{"Post-op", "Neuro"},
		ClinicName:  "Harbor Physical Therapy",
		Latitude:    ptr(40.689),
		Longitude:   ptr(-74.045),
		Availability: entity.BoolMap{
			"mon_1pm": true, "mon_2pm": true,
			"wed_2pm": true, "thu_1pm": true,
			"fri_2pm": true, "fri_4pm": true,
		},
	}
	chen := entity.Clinician{
		FullName:    "Dr. Chen",
		Specialties: entity.StringList{"Post-op", "MSK"},
		ClinicName:  "Midtown Motion Clinic",
		Latitude:    ptr(40.741),
		Longitude:   ptr(-73.989),
		Availability: entity.BoolMap{
			"mon_9am": true, "mon_10am": true,
			"tue_9am": true, "tue_10am": true,
			"wed_9am": true, "thu_9am": true,
			"thu_1pm": true, "fri_9am": true,
		},
	}
	for _, c := range []*entity.Clinician{&smith, &jones, &chen} {
		if err := clinicianRepo.Create(ctx, tx, c); err != nil {
			logrus.Fatalf("Failed to seed clinician %s: %v", c.FullName, err)
		}
	}

	patients := []entity.Patient{
		{
			FullName:             "Jane Doe",
			QualityScore:         2.5,
			Urgency:              entity.UrgencyMedium,
			SpecialtyNeeded:      "Post-op",
			Latitude:             ptr(40.73),
			Longitude:            ptr(-73.99),
			MaxDistanceKM:        15.0,
			Availability:         copyBools(allSlots),
			ContinuityClinicians: entity.StringList{chen.ID.String()},
			TimePreferences: entity.FloatMap{
				"mon_9am": 1.0, "tue_9am": 1.0, "wed_9am": 1.0,
				"thu_9am": 1.0, "fri_9am": 1.0,
				"mon_10am": 0.8, "tue_10am": 0.8,
				"mon_1pm": 0.3, "mon_2pm": 0.3,
				"wed_2pm": 0.3, "thu_1pm": 0.3,
				"fri_2pm": 0.3, "fri_4pm": 0.2,
			},
		},
		{
			FullName:        "John Smith",
			QualityScore:    7.0,
			Urgency:         entity.UrgencyLow,
			SpecialtyNeeded: "MSK",
			Latitude:        ptr(40.75),
			Longitude:       ptr(-73.98),
			MaxDistanceKM:   10.0,
			Availability: entity.BoolMap{
				"mon_9am": true, "mon_10am": true, "mon_1pm": true, "mon_2pm": true,
				"wed_9am": true, "wed_2pm": true,
				"fri_9am": true, "fri_2pm": true, "fri_4pm": true,
			},
			ContinuityClinicians: entity.StringList{smith.ID.String()},
			TimePreferences: entity.FloatMap{
				"mon_1pm": 1.0, "mon_2pm": 1.0, "wed_2pm": 1.0,
				"fri_2pm": 1.0, "fri_4pm": 0.9,
				"mon_9am": 0.4, "mon_10am": 0.4,
				"wed_9am": 0.4, "fri_9am": 0.4,
			},
		},
		{
			FullName:        "Maria Garcia",
			QualityScore:    4.5,
			Urgency:         entity.UrgencyMedium,
			SpecialtyNeeded: "Neuro",
			Latitude:        ptr(40.71),
			Longitude:       ptr(-74.01),
			MaxDistanceKM:   20.0,
			Availability:    copyBools(allSlots),
		},
	}
	for i := range patients {
		if err := patientRepo.Create(ctx, tx, &patients[i]); err != nil {
			logrus.Fatalf("Failed to seed patient %s: %v", patients[i].FullName, err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		logrus.Fatalf("Failed to commit seed data: %v", err)
	}

	logrus.Infof("Seeded %d timeslots, 3 clinicians, %d patients", len(slots), len(patients))
}

func ptr(v float64) *float64 {
	return &v
}

func copyBools(m entity.BoolMap) entity.BoolMap {
	out := entity.BoolMap{}
	for k, v := range m {
		out[k] = v
	}
	return out
}
