package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/iho/sekolah/internal/domain"
)

// TuitionUseCase handles tuition payments and balance resolution.
type TuitionUseCase struct {
	ledgerRepo  TuitionLedgerRepository
	baseTuition int64
	log         zerolog.Logger
}

// NewTuitionUseCase creates a new TuitionUseCase. baseTuition is the amount
// due for a student with no ledger history.
func NewTuitionUseCase(ledgerRepo TuitionLedgerRepository, baseTuition int64, log zerolog.Logger) *TuitionUseCase {
	return &TuitionUseCase{
		ledgerRepo:  ledgerRepo,
		baseTuition: baseTuition,
		log:         log,
	}
}

// TuitionStatus is the resolved current state for one student: the fields
// of the latest well-formed ledger record with that NISN.
type TuitionStatus struct {
	NISN     int64
	Name     string
	LastPaid int64
	Balance  int64
}

// Paid reports whether the balance is settled.
func (s *TuitionStatus) Paid() bool {
	return s.Balance == 0
}

// Resolve folds the whole ledger into the current state for one NISN. The
// scan never stops early: a student may have many historical lines and only
// the last well-formed one is authoritative. Malformed lines are logged and
// skipped; a malformed line for the wanted NISN leaves the previous valid
// match standing. Returns domain.ErrLedgerNotFound when there is no ledger
// at all and domain.ErrTuitionRecordNotFound when the ledger has no record
// for the NISN.
func (uc *TuitionUseCase) Resolve(ctx context.Context, nisn int64) (*TuitionStatus, error) {
	var latest *TuitionStatus

	err := uc.ledgerRepo.Scan(ctx, func(line string) error {
		id, rest, err := domain.SplitLeadingNISN(line)
		if err != nil {
			uc.log.Warn().Str("line", line).Msg("skipping ledger line without a numeric NISN")
			return nil
		}
		if id != nisn {
			return nil
		}
		record, err := domain.ParseTuitionRecord(id, rest)
		if err != nil {
			uc.log.Warn().Int64("nisn", id).Str("line", line).Msg("skipping malformed ledger line")
			return nil
		}
		latest = &TuitionStatus{
			NISN:     record.NISN,
			Name:     record.Name,
			LastPaid: record.Paid,
			Balance:  record.Balance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return nil, domain.ErrTuitionRecordNotFound
	}
	return latest, nil
}

// Status is the read-only lookup used for display. It shares Resolve's fold
// and surfaces the last transaction's paid amount alongside the balance.
func (uc *TuitionUseCase) Status(ctx context.Context, nisn int64) (*TuitionStatus, error) {
	return uc.Resolve(ctx, nisn)
}

// PayInput is one tendered tuition payment. Name is only consulted for a
// first payment; Tendered must already be validated non-negative at the
// input boundary.
type PayInput struct {
	NISN     int64
	Name     string
	Tendered int64
}

// Pay applies a payment and appends the resulting record to the ledger.
// The amount due is the prior outstanding balance, or the base tuition when
// the student has no history. A prior record's name always wins over a
// freshly supplied one, so each student keeps a single canonical name
// across the ledger. A settled balance returns domain.ErrAlreadyPaid and
// appends nothing.
func (uc *TuitionUseCase) Pay(ctx context.Context, input PayInput) (*domain.PaymentOutcome, error) {
	prior, err := uc.Resolve(ctx, input.NISN)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrLedgerNotFound), errors.Is(err, domain.ErrTuitionRecordNotFound):
		prior = nil
	default:
		return nil, err
	}

	var due int64
	var name string
	if prior != nil {
		if prior.Paid() {
			return nil, domain.ErrAlreadyPaid
		}
		due = prior.Balance
		name = prior.Name
	} else {
		name = strings.TrimSpace(input.Name)
		if name == "" {
			return nil, domain.ErrNameRequired
		}
		due = uc.baseTuition
	}

	balance, change := domain.ApplyPayment(due, input.Tendered)
	record := &domain.TuitionRecord{
		NISN:    input.NISN,
		Name:    name,
		Paid:    input.Tendered,
		Balance: balance,
	}
	if err := uc.ledgerRepo.Append(ctx, record); err != nil {
		return nil, err
	}

	uc.log.Info().
		Int64("nisn", input.NISN).
		Int64("tendered", input.Tendered).
		Int64("balance", balance).
		Msg("tuition payment recorded")

	return &domain.PaymentOutcome{
		NISN:     input.NISN,
		Name:     name,
		Due:      due,
		Tendered: input.Tendered,
		Balance:  balance,
		Change:   change,
	}, nil
}
