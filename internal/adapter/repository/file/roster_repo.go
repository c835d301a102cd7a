package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/iho/sekolah/internal/domain"
)

// RosterRepository implements usecase.RosterRepository over the roster
// file: two lines per admitted student, NISN first, then name.
type RosterRepository struct {
	path string
}

// NewRosterRepository creates a new RosterRepository.
func NewRosterRepository(path string) *RosterRepository {
	return &RosterRepository{path: path}
}

// Append adds admitted students to the roster file.
func (r *RosterRepository) Append(ctx context.Context, entries []domain.RosterEntry) error {
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open roster %s: %w", r.path, err)
	}

	for _, e := range entries {
		if _, err := fmt.Fprintf(f, "%d\n%s\n", e.NISN, e.Name); err != nil {
			f.Close()
			return fmt.Errorf("write roster %s: %w", r.path, err)
		}
	}
	return f.Close()
}

// List pairs roster lines back into entries. A missing roster file is an
// empty roster. A pair whose NISN line does not parse is skipped.
func (r *RosterRepository) List(ctx context.Context) ([]domain.RosterEntry, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open roster %s: %w", r.path, err)
	}
	defer f.Close()

	var entries []domain.RosterEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		nisnLine := strings.TrimSpace(scanner.Text())
		if !scanner.Scan() {
			break
		}
		name := strings.TrimSpace(scanner.Text())

		nisn, err := strconv.ParseInt(nisnLine, 10, 64)
		if err != nil {
			continue
		}
		entries = append(entries, domain.RosterEntry{NISN: nisn, Name: name})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read roster %s: %w", r.path, err)
	}
	return entries, nil
}
