package domain

import "errors"

var (
	// Ledger errors
	ErrLedgerUnavailable     = errors.New("tuition ledger cannot be opened")
	ErrLedgerNotFound        = errors.New("tuition ledger does not exist")
	ErrMalformedRecord       = errors.New("malformed tuition record")
	ErrAlreadyPaid           = errors.New("tuition is already fully paid")
	ErrNameRequired          = errors.New("student name is required for a first payment")
	ErrTuitionRecordNotFound = errors.New("no tuition record for student")

	// Registration errors
	ErrNoApplicants     = errors.New("no applicants registered")
	ErrCapacityExceeded = errors.New("applicant capacity exceeded")
)
