package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/iho/sekolah/internal/domain"
	"github.com/iho/sekolah/internal/usecase"
	"github.com/iho/sekolah/internal/usecase/mocks"
)

func TestGradesUseCase_RecordGrades(t *testing.T) {
	details := mocks.NewMockDetailRepository()
	uc := usecase.NewGradesUseCase(details, zerolog.Nop())
	student := domain.RosterEntry{NISN: 1, Name: "Budi"}

	err := uc.RecordGrades(context.Background(), student, []domain.SubjectGrade{
		{Subject: "Math", Grade: 80},
		{Subject: "Physics", Grade: 90},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(details.Details[1].SubjectGrades); got != 2 {
		t.Errorf("expected 2 recorded grades, got %d", got)
	}
}

func TestGradesUseCase_RecordGrades_RejectsOutOfRange(t *testing.T) {
	details := mocks.NewMockDetailRepository()
	uc := usecase.NewGradesUseCase(details, zerolog.Nop())
	student := domain.RosterEntry{NISN: 1, Name: "Budi"}

	err := uc.RecordGrades(context.Background(), student, []domain.SubjectGrade{{Subject: "Math", Grade: 101}})
	if !errors.Is(err, domain.ErrInvalidGrade) {
		t.Fatalf("expected ErrInvalidGrade, got %v", err)
	}
	if len(details.Details) != 0 {
		t.Error("expected nothing recorded")
	}
}

func TestGradesUseCase_Transcript(t *testing.T) {
	details := mocks.NewMockDetailRepository()
	details.Details[1] = &domain.StudentDetail{
		Applicant: domain.Applicant{NISN: 1, Name: "Budi"},
		SubjectGrades: []domain.SubjectGrade{
			{Subject: "Math", Grade: 80},
			{Subject: "Physics", Grade: 85},
		},
	}
	uc := usecase.NewGradesUseCase(details, zerolog.Nop())

	transcript, err := uc.Transcript(context.Background(), domain.RosterEntry{NISN: 1, Name: "Budi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !transcript.HasGrades {
		t.Fatal("expected HasGrades")
	}
	if transcript.Average.StringFixed(2) != "82.50" {
		t.Errorf("expected average 82.50, got %s", transcript.Average.StringFixed(2))
	}
}

func TestGradesUseCase_Transcript_NoGrades(t *testing.T) {
	uc := usecase.NewGradesUseCase(mocks.NewMockDetailRepository(), zerolog.Nop())

	transcript, err := uc.Transcript(context.Background(), domain.RosterEntry{NISN: 9, Name: "Siti"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if transcript.HasGrades {
		t.Error("expected HasGrades false for a student without grades")
	}
}
