package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/iho/sekolah/internal/domain"
)

// ConductUseCase handles per-student conduct notes.
type ConductUseCase struct {
	detailRepo DetailRepository
	idGen      IDGenerator
	log        zerolog.Logger
}

// NewConductUseCase creates a new ConductUseCase.
func NewConductUseCase(detailRepo DetailRepository, idGen IDGenerator, log zerolog.Logger) *ConductUseCase {
	return &ConductUseCase{
		detailRepo: detailRepo,
		idGen:      idGen,
		log:        log,
	}
}

// AddNoteInput is one conduct note to record.
type AddNoteInput struct {
	Student domain.RosterEntry
	Date    string // YYYY-MM-DD
	Type    string
	Note    string
}

// AddNote appends a conduct note to the student's detail file via a
// load-modify-save cycle, assigning it a fresh ID.
func (uc *ConductUseCase) AddNote(ctx context.Context, input AddNoteInput) (*domain.ConductNote, error) {
	if err := domain.ValidateConductDate(input.Date); err != nil {
		return nil, err
	}

	detail, err := uc.detailRepo.Load(ctx, input.Student.NISN, input.Student.Name)
	if err != nil {
		return nil, err
	}

	note := domain.ConductNote{
		ID:   uc.idGen.Generate(),
		Date: input.Date,
		Type: input.Type,
		Note: input.Note,
	}
	detail.ConductLog = append(detail.ConductLog, note)

	if err := uc.detailRepo.Save(ctx, detail); err != nil {
		return nil, err
	}

	uc.log.Info().Int64("nisn", input.Student.NISN).Str("note_id", note.ID).Msg("conduct note added")
	return &note, nil
}

// Notes returns a student's conduct log, oldest first. A student without a
// conduct section simply has no notes.
func (uc *ConductUseCase) Notes(ctx context.Context, student domain.RosterEntry) ([]domain.ConductNote, error) {
	detail, err := uc.detailRepo.Load(ctx, student.NISN, student.Name)
	if err != nil {
		return nil, err
	}
	return detail.ConductLog, nil
}
