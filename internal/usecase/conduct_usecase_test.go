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

func TestConductUseCase_AddNote(t *testing.T) {
	details := mocks.NewMockDetailRepository()
	idGen := mocks.NewMockIDGenerator("01HTEST0000000000000000001")
	uc := usecase.NewConductUseCase(details, idGen, zerolog.Nop())
	student := domain.RosterEntry{NISN: 1, Name: "Budi"}

	note, err := uc.AddNote(context.Background(), usecase.AddNoteInput{
		Student: student,
		Date:    "2026-03-01",
		Type:    "Praise",
		Note:    "Helped organise the class library",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if note.ID != "01HTEST0000000000000000001" {
		t.Errorf("expected generated ID, got %q", note.ID)
	}

	notes, err := uc.Notes(context.Background(), student)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(notes))
	}
	if notes[0] != *note {
		t.Errorf("stored note differs: %+v != %+v", notes[0], *note)
	}
}

func TestConductUseCase_AddNote_InvalidDate(t *testing.T) {
	uc := usecase.NewConductUseCase(mocks.NewMockDetailRepository(), mocks.NewMockIDGenerator(), zerolog.Nop())

	_, err := uc.AddNote(context.Background(), usecase.AddNoteInput{
		Student: domain.RosterEntry{NISN: 1, Name: "Budi"},
		Date:    "01/03/2026",
		Type:    "Warning",
		Note:    "late",
	})
	if !errors.Is(err, domain.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestConductUseCase_Notes_Empty(t *testing.T) {
	uc := usecase.NewConductUseCase(mocks.NewMockDetailRepository(), mocks.NewMockIDGenerator(), zerolog.Nop())

	notes, err := uc.Notes(context.Background(), domain.RosterEntry{NISN: 5, Name: "Siti"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notes) != 0 {
		t.Errorf("expected no notes, got %d", len(notes))
	}
}

func TestConductUseCase_NotesAccumulate(t *testing.T) {
	details := mocks.NewMockDetailRepository()
	idGen := mocks.NewMockIDGenerator("id-1", "id-2")
	uc := usecase.NewConductUseCase(details, idGen, zerolog.Nop())
	student := domain.RosterEntry{NISN: 1, Name: "Budi"}

	for i, input := range []usecase.AddNoteInput{
		{Student: student, Date: "2026-03-01", Type: "Warning", Note: "late to class"},
		{Student: student, Date: "2026-03-02", Type: "Praise", Note: "improved"},
	} {
		if _, err := uc.AddNote(context.Background(), input); err != nil {
			t.Fatalf("note %d: unexpected error: %v", i+1, err)
		}
	}

	notes, err := uc.Notes(context.Background(), student)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if notes[0].ID != "id-1" || notes[1].ID != "id-2" {
		t.Errorf("notes out of order: %+v", notes)
	}
}
