package usecase

import (
	"context"

	"github.com/iho/sekolah/internal/domain"
)

// TuitionLedgerRepository defines access to the append-only tuition ledger.
type TuitionLedgerRepository interface {
	// Append serializes the record and adds it as a new ledger line.
	// A ledger that cannot be opened for writing yields
	// domain.ErrLedgerUnavailable.
	Append(ctx context.Context, record *domain.TuitionRecord) error
	// Scan reads the ledger from the beginning, invoking fn for every raw
	// line in file order. Each call reopens the ledger; a missing file
	// yields domain.ErrLedgerNotFound.
	Scan(ctx context.Context, fn func(line string) error) error
}

// RosterRepository defines access to the admitted-student roster.
type RosterRepository interface {
	Append(ctx context.Context, entries []domain.RosterEntry) error
	List(ctx context.Context) ([]domain.RosterEntry, error)
}

// DetailRepository defines access to per-student detail files.
type DetailRepository interface {
	// Load reads a student's detail file. A missing file is not an error:
	// it loads as an empty detail carrying only the NISN and name.
	Load(ctx context.Context, nisn int64, name string) (*domain.StudentDetail, error)
	// Save rewrites the whole detail file.
	Save(ctx context.Context, detail *domain.StudentDetail) error
	// AppendGrades adds subject grade lines without rewriting the file.
	AppendGrades(ctx context.Context, nisn int64, name string, grades []domain.SubjectGrade) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
