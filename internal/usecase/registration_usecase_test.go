package usecase_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/sekolah/internal/domain"
	"github.com/iho/sekolah/internal/usecase"
	"github.com/iho/sekolah/internal/usecase/mocks"
)

func applicant(name string, nisn int64, grade string) domain.Applicant {
	return domain.Applicant{
		Name:           name,
		NISN:           nisn,
		Gender:         "L",
		AdmissionGrade: decimal.RequireFromString(grade),
	}
}

func TestRegistrationUseCase_RankAndAdmit(t *testing.T) {
	roster := mocks.NewMockRosterRepository()
	details := mocks.NewMockDetailRepository()
	uc := usecase.NewRegistrationUseCase(roster, details, 100, 2, zerolog.Nop())

	require.NoError(t, uc.Register(applicant("Budi", 1, "75.5")))
	require.NoError(t, uc.Register(applicant("Siti", 2, "92")))
	require.NoError(t, uc.Register(applicant("Agus", 3, "92")))
	require.NoError(t, uc.Register(applicant("Dewi", 4, "88")))

	ranked := uc.Rank()
	require.Len(t, ranked, 4)
	// Highest first; equal grades keep registration order.
	assert.Equal(t, "Siti", ranked[0].Name)
	assert.Equal(t, "Agus", ranked[1].Name)
	assert.Equal(t, "Dewi", ranked[2].Name)
	assert.Equal(t, "Budi", ranked[3].Name)

	admitted := uc.Admitted()
	require.Len(t, admitted, 2)
	assert.Equal(t, "Siti", admitted[0].Name)
	assert.Equal(t, "Agus", admitted[1].Name)
}

func TestRegistrationUseCase_CapacityBound(t *testing.T) {
	uc := usecase.NewRegistrationUseCase(mocks.NewMockRosterRepository(), mocks.NewMockDetailRepository(), 2, 2, zerolog.Nop())

	require.NoError(t, uc.Register(applicant("Budi", 1, "80")))
	require.NoError(t, uc.Register(applicant("Siti", 2, "90")))

	err := uc.Register(applicant("Agus", 3, "85"))
	require.ErrorIs(t, err, domain.ErrCapacityExceeded)
	assert.Len(t, uc.Applicants(), 2)
}

func TestRegistrationUseCase_Commit(t *testing.T) {
	roster := mocks.NewMockRosterRepository()
	details := mocks.NewMockDetailRepository()
	uc := usecase.NewRegistrationUseCase(roster, details, 100, 2, zerolog.Nop())

	require.NoError(t, uc.Register(applicant("Budi", 1, "75.5")))
	require.NoError(t, uc.Register(applicant("Siti", 2, "92")))
	require.NoError(t, uc.Register(applicant("Agus", 3, "88")))

	admitted, err := uc.Commit(context.Background())
	require.NoError(t, err)
	require.Len(t, admitted, 2)

	require.Equal(t, []domain.RosterEntry{{NISN: 2, Name: "Siti"}, {NISN: 3, Name: "Agus"}}, roster.Entries)
	assert.Contains(t, details.Details, int64(2))
	assert.Contains(t, details.Details, int64(3))
	assert.NotContains(t, details.Details, int64(1))

	// The intake is cleared after commit.
	assert.Empty(t, uc.Applicants())

	_, err = uc.Commit(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoApplicants)
}

func TestRegistrationUseCase_CommitWithoutApplicants(t *testing.T) {
	uc := usecase.NewRegistrationUseCase(mocks.NewMockRosterRepository(), mocks.NewMockDetailRepository(), 100, 2, zerolog.Nop())

	_, err := uc.Commit(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoApplicants)
}
