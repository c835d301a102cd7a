package domain

// ConductNote is one dated behavioural note in a student's conduct log.
type ConductNote struct {
	ID   string // ULID; empty for notes written before IDs existed
	Date string // YYYY-MM-DD
	Type string // e.g. Praise, Warning, Observation
	Note string
}
