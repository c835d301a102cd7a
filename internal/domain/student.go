package domain

import "github.com/shopspring/decimal"

// Applicant is a prospective student captured during registration, before
// admission is decided.
type Applicant struct {
	Name           string
	NISN           int64
	PlaceOfBirth   string
	DateOfBirth    string // DD/MM/YYYY, recorded as entered
	Gender         string // L or P
	AdmissionGrade decimal.Decimal
}

// RosterEntry is one admitted student in the roster file. The roster only
// drives selection menus; the tuition ledger never validates against it.
type RosterEntry struct {
	NISN int64
	Name string
}

// SubjectGrade is one recorded subject result.
type SubjectGrade struct {
	Subject string
	Grade   int
}

// StudentDetail is the full contents of a per-student detail file.
type StudentDetail struct {
	Applicant
	SubjectGrades []SubjectGrade
	ConductLog    []ConductNote
}

// AverageGrade computes the mean of the given subject grades rounded to two
// decimal places. ok is false when there are no grades to average.
func AverageGrade(grades []SubjectGrade) (avg decimal.Decimal, ok bool) {
	if len(grades) == 0 {
		return decimal.Zero, false
	}
	sum := decimal.Zero
	for _, g := range grades {
		sum = sum.Add(decimal.NewFromInt(int64(g.Grade)))
	}
	return sum.Div(decimal.NewFromInt(int64(len(grades)))).Round(2), true
}
