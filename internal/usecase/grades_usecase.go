package usecase

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/sekolah/internal/domain"
)

// GradesUseCase handles subject grade recording and averaging.
type GradesUseCase struct {
	detailRepo DetailRepository
	log        zerolog.Logger
}

// NewGradesUseCase creates a new GradesUseCase.
func NewGradesUseCase(detailRepo DetailRepository, log zerolog.Logger) *GradesUseCase {
	return &GradesUseCase{
		detailRepo: detailRepo,
		log:        log,
	}
}

// RecordGrades appends subject grades to a student's detail file.
func (uc *GradesUseCase) RecordGrades(ctx context.Context, student domain.RosterEntry, grades []domain.SubjectGrade) error {
	for _, g := range grades {
		if err := domain.ValidateSubjectGrade(g.Grade); err != nil {
			return err
		}
	}
	if err := uc.detailRepo.AppendGrades(ctx, student.NISN, student.Name, grades); err != nil {
		return err
	}
	uc.log.Info().Int64("nisn", student.NISN).Int("grades", len(grades)).Msg("subject grades recorded")
	return nil
}

// Transcript is a student's recorded grades with their average.
type Transcript struct {
	Student   domain.RosterEntry
	Grades    []domain.SubjectGrade
	Average   decimal.Decimal
	HasGrades bool
}

// Transcript loads a student's grades and computes the average. A student
// with no parseable grades gets HasGrades false rather than an error.
func (uc *GradesUseCase) Transcript(ctx context.Context, student domain.RosterEntry) (*Transcript, error) {
	detail, err := uc.detailRepo.Load(ctx, student.NISN, student.Name)
	if err != nil {
		return nil, err
	}

	avg, ok := domain.AverageGrade(detail.SubjectGrades)
	return &Transcript{
		Student:   student,
		Grades:    detail.SubjectGrades,
		Average:   avg,
		HasGrades: ok,
	}, nil
}
