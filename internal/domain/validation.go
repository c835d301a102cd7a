package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidNISN   = errors.New("invalid NISN")
	ErrInvalidGrade  = errors.New("invalid grade")
	ErrInvalidGender = errors.New("invalid gender")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidDate   = errors.New("invalid date")
)

// Validation constants
const (
	MinGrade = 0
	MaxGrade = 100

	conductDateLayout = "2006-01-02"
)

// ParseNISN parses a NISN entered at the console. Only plain digit strings
// are accepted; signs, spaces and decimal points are all rejected.
func ParseNISN(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidNISN)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q is not numeric", ErrInvalidNISN, s)
		}
	}
	nisn, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidNISN, s)
	}
	return nisn, nil
}

// ParseAdmissionGrade parses a 0-100 admission grade, fractional digits
// allowed.
func ParseAdmissionGrade(s string) (decimal.Decimal, error) {
	grade, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not numeric", ErrInvalidGrade, s)
	}
	if grade.IsNegative() || grade.GreaterThan(decimal.NewFromInt(MaxGrade)) {
		return decimal.Zero, fmt.Errorf("%w: %s is outside 0-100", ErrInvalidGrade, grade)
	}
	return grade, nil
}

// ValidateSubjectGrade checks a 0-100 integer subject grade.
func ValidateSubjectGrade(grade int) error {
	if grade < MinGrade || grade > MaxGrade {
		return fmt.Errorf("%w: %d is outside 0-100", ErrInvalidGrade, grade)
	}
	return nil
}

// ParseAmount parses a non-negative money amount entered at the console.
func ParseAmount(s string) (int64, error) {
	amount, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not numeric", ErrInvalidAmount, s)
	}
	if amount < 0 {
		return 0, fmt.Errorf("%w: must not be negative", ErrInvalidAmount)
	}
	return amount, nil
}

// NormalizeGender accepts L or P in either case and returns the canonical
// upper-case form.
func NormalizeGender(s string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L":
		return "L", nil
	case "P":
		return "P", nil
	}
	return "", fmt.Errorf("%w: enter L or P", ErrInvalidGender)
}

// ValidateConductDate checks a YYYY-MM-DD conduct note date.
func ValidateConductDate(s string) error {
	if _, err := time.Parse(conductDateLayout, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("%w: want YYYY-MM-DD", ErrInvalidDate)
	}
	return nil
}
