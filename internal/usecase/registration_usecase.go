package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/iho/sekolah/internal/domain"
)

// RegistrationUseCase manages prospective-student intake and admission.
// Applicants accumulate in memory until admission is committed; only
// admitted students are persisted.
type RegistrationUseCase struct {
	rosterRepo    RosterRepository
	detailRepo    DetailRepository
	maxApplicants int
	capacity      int
	log           zerolog.Logger

	applicants []domain.Applicant
}

// NewRegistrationUseCase creates a new RegistrationUseCase. capacity is the
// admission quota; maxApplicants bounds one intake.
func NewRegistrationUseCase(rosterRepo RosterRepository, detailRepo DetailRepository, maxApplicants, capacity int, log zerolog.Logger) *RegistrationUseCase {
	return &RegistrationUseCase{
		rosterRepo:    rosterRepo,
		detailRepo:    detailRepo,
		maxApplicants: maxApplicants,
		capacity:      capacity,
		log:           log,
	}
}

// Register adds one applicant to the current intake. The intake grows
// dynamically up to maxApplicants; exceeding it is a validation error, not
// a silent truncation.
func (uc *RegistrationUseCase) Register(applicant domain.Applicant) error {
	if len(uc.applicants) >= uc.maxApplicants {
		return fmt.Errorf("%w: at most %d applicants per intake", domain.ErrCapacityExceeded, uc.maxApplicants)
	}
	uc.applicants = append(uc.applicants, applicant)
	return nil
}

// Applicants returns the current intake in registration order.
func (uc *RegistrationUseCase) Applicants() []domain.Applicant {
	return uc.applicants
}

// Capacity returns the admission quota.
func (uc *RegistrationUseCase) Capacity() int {
	return uc.capacity
}

// Rank returns the intake ordered by admission grade, highest first. Equal
// grades keep registration order.
func (uc *RegistrationUseCase) Rank() []domain.Applicant {
	ranked := make([]domain.Applicant, len(uc.applicants))
	copy(ranked, uc.applicants)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AdmissionGrade.GreaterThan(ranked[j].AdmissionGrade)
	})
	return ranked
}

// Admitted returns the top of the ranking up to the admission quota.
func (uc *RegistrationUseCase) Admitted() []domain.Applicant {
	ranked := uc.Rank()
	if len(ranked) > uc.capacity {
		ranked = ranked[:uc.capacity]
	}
	return ranked
}

// Commit persists the admitted applicants to the roster, writes a detail
// file for each, and clears the intake. A detail file that cannot be
// written is logged and does not block the remaining students.
func (uc *RegistrationUseCase) Commit(ctx context.Context) ([]domain.Applicant, error) {
	admitted := uc.Admitted()
	if len(admitted) == 0 {
		return nil, domain.ErrNoApplicants
	}

	entries := make([]domain.RosterEntry, 0, len(admitted))
	for _, a := range admitted {
		entries = append(entries, domain.RosterEntry{NISN: a.NISN, Name: a.Name})
	}
	if err := uc.rosterRepo.Append(ctx, entries); err != nil {
		return nil, err
	}

	for _, a := range admitted {
		detail := &domain.StudentDetail{Applicant: a}
		if err := uc.detailRepo.Save(ctx, detail); err != nil {
			uc.log.Error().Err(err).Int64("nisn", a.NISN).Msg("failed to write student detail file")
		}
	}

	uc.log.Info().Int("admitted", len(admitted)).Msg("admission committed")
	uc.applicants = nil
	return admitted, nil
}
