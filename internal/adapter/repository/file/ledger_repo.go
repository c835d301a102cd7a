package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/iho/sekolah/internal/domain"
)

// TuitionLedgerRepository implements usecase.TuitionLedgerRepository over a
// line-oriented text file. The file is the time axis: lines are only ever
// appended, and later lines supersede earlier ones for the same NISN. Every
// operation is its own open/use/close cycle; no handle is held between
// calls.
type TuitionLedgerRepository struct {
	path string
}

// NewTuitionLedgerRepository creates a new TuitionLedgerRepository.
func NewTuitionLedgerRepository(path string) *TuitionLedgerRepository {
	return &TuitionLedgerRepository{path: path}
}

// Append writes the record as one new ledger line, creating the file on
// first use.
func (r *TuitionLedgerRepository) Append(ctx context.Context, record *domain.TuitionRecord) error {
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrLedgerUnavailable, err)
	}

	if _, err := fmt.Fprintln(f, record.LedgerLine()); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", domain.ErrLedgerUnavailable, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrLedgerUnavailable, err)
	}
	return nil
}

// Scan reads the ledger from the beginning and invokes fn for every
// non-blank line in file order. A missing ledger yields
// domain.ErrLedgerNotFound; for a first-time student that means "no
// history", not a failure.
func (r *TuitionLedgerRepository) Scan(ctx context.Context, fn func(line string) error) error {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.ErrLedgerNotFound
		}
		return fmt.Errorf("%w: %v", domain.ErrLedgerUnavailable, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}
