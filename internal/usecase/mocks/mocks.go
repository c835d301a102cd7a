// Package mocks provides hand-written test doubles for the usecase
// interfaces. Each mock acts as a small in-memory fake by default and any
// method can be overridden through its Func field.
package mocks

import (
	"context"

	"github.com/iho/sekolah/internal/domain"
)

// MockTuitionLedgerRepository is a mock implementation of
// TuitionLedgerRepository. By default it keeps appended records as ledger
// lines in memory; an empty mock scans like a missing ledger file.
type MockTuitionLedgerRepository struct {
	Lines []string

	AppendFunc func(ctx context.Context, record *domain.TuitionRecord) error
	ScanFunc   func(ctx context.Context, fn func(line string) error) error
}

func NewMockTuitionLedgerRepository() *MockTuitionLedgerRepository {
	return &MockTuitionLedgerRepository{}
}

func (m *MockTuitionLedgerRepository) Append(ctx context.Context, record *domain.TuitionRecord) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, record)
	}
	m.Lines = append(m.Lines, record.LedgerLine())
	return nil
}

func (m *MockTuitionLedgerRepository) Scan(ctx context.Context, fn func(line string) error) error {
	if m.ScanFunc != nil {
		return m.ScanFunc(ctx, fn)
	}
	if len(m.Lines) == 0 {
		return domain.ErrLedgerNotFound
	}
	for _, line := range m.Lines {
		if err := fn(line); err != nil {
			return err
		}
	}
	return nil
}

// MockRosterRepository is a mock implementation of RosterRepository.
type MockRosterRepository struct {
	Entries []domain.RosterEntry

	AppendFunc func(ctx context.Context, entries []domain.RosterEntry) error
	ListFunc   func(ctx context.Context) ([]domain.RosterEntry, error)
}

func NewMockRosterRepository() *MockRosterRepository {
	return &MockRosterRepository{}
}

func (m *MockRosterRepository) Append(ctx context.Context, entries []domain.RosterEntry) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, entries)
	}
	m.Entries = append(m.Entries, entries...)
	return nil
}

func (m *MockRosterRepository) List(ctx context.Context) ([]domain.RosterEntry, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return m.Entries, nil
}

// MockDetailRepository is a mock implementation of DetailRepository keyed
// by NISN.
type MockDetailRepository struct {
	Details map[int64]*domain.StudentDetail

	LoadFunc         func(ctx context.Context, nisn int64, name string) (*domain.StudentDetail, error)
	SaveFunc         func(ctx context.Context, detail *domain.StudentDetail) error
	AppendGradesFunc func(ctx context.Context, nisn int64, name string, grades []domain.SubjectGrade) error
}

func NewMockDetailRepository() *MockDetailRepository {
	return &MockDetailRepository{
		Details: make(map[int64]*domain.StudentDetail),
	}
}

func (m *MockDetailRepository) Load(ctx context.Context, nisn int64, name string) (*domain.StudentDetail, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, nisn, name)
	}
	if detail, ok := m.Details[nisn]; ok {
		copied := *detail
		return &copied, nil
	}
	return &domain.StudentDetail{
		Applicant: domain.Applicant{NISN: nisn, Name: name},
	}, nil
}

func (m *MockDetailRepository) Save(ctx context.Context, detail *domain.StudentDetail) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, detail)
	}
	copied := *detail
	m.Details[detail.NISN] = &copied
	return nil
}

func (m *MockDetailRepository) AppendGrades(ctx context.Context, nisn int64, name string, grades []domain.SubjectGrade) error {
	if m.AppendGradesFunc != nil {
		return m.AppendGradesFunc(ctx, nisn, name, grades)
	}
	detail, ok := m.Details[nisn]
	if !ok {
		detail = &domain.StudentDetail{
			Applicant: domain.Applicant{NISN: nisn, Name: name},
		}
		m.Details[nisn] = detail
	}
	detail.SubjectGrades = append(detail.SubjectGrades, grades...)
	return nil
}

// MockIDGenerator is a mock implementation of IDGenerator. It returns a
// fixed sequence of IDs by default.
type MockIDGenerator struct {
	IDs  []string
	next int

	GenerateFunc func() string
}

func NewMockIDGenerator(ids ...string) *MockIDGenerator {
	return &MockIDGenerator{IDs: ids}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	if m.next >= len(m.IDs) {
		return "mock-id"
	}
	id := m.IDs[m.next]
	m.next++
	return id
}
