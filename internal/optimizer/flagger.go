package optimizer

// NotificationLevel classifies a quality-score notification.
type NotificationLevel string

const (
	NotificationCritical   NotificationLevel = "critical"
	NotificationConcerning NotificationLevel = "concerning"
)

const (
	criticalMessage   = "Your recent exercise quality needs attention. We strongly recommend scheduling a follow-up ASAP."
	concerningMessage = "Consider scheduling a check-in with your therapist."
)

// Notification is a quality-triggered message surfaced alongside results.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// FlagResult carries the caller-facing representation of a flagged patient.
// Patient is an adjusted copy; the input record is never mutated.
type FlagResult struct {
	Patient          Patient
	NeedsIntervention bool
	Notification     *Notification
	Weights          Weights
}

// Flag inspects the patient's latest rehab quality score. Below the critical
// threshold it escalates urgency to High, widens the search radius and
// switches to the urgency-heavy weight profile. Escalation is one-directional:
// a good score never downgrades urgency, and the concerning band only attaches
// a notification without touching priority.
func (e *Engine) Flag(p Patient) FlagResult {
	res := FlagResult{
		Patient: p,
		Weights: e.opts.Weights,
	}

	switch {
	case p.QualityScore < e.opts.CriticalScore:
		res.Patient.Urgency = UrgencyHigh
		res.Patient.MaxDistanceKM = p.MaxDistanceKM * e.opts.RadiusExpansion
		res.NeedsIntervention = true
		res.Weights = e.opts.CriticalWeights
		res.Notification = &Notification{
			Level:   NotificationCritical,
			Message: criticalMessage,
		}
	case p.QualityScore < e.opts.ConcerningScore:
		res.Notification = &Notification{
			Level:   NotificationConcerning,
			Message: concerningMessage,
		}
	}

	return res
}
