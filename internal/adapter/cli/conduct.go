package cli

import (
	"context"
	"fmt"

	"github.com/iho/sekolah/internal/usecase"
)

func (a *App) runConductMenu(ctx context.Context) error {
	for {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "+==============================+")
		fmt.Fprintln(a.out, "|   Student Conduct Log Menu   |")
		fmt.Fprintln(a.out, "+==============================+")
		fmt.Fprintln(a.out, "1. Add Conduct Note")
		fmt.Fprintln(a.out, "2. View Conduct Notes for Student")
		fmt.Fprintln(a.out, "3. Back to Main Menu")

		choice, err := a.promptChoice("Choose: ", 1, 3)
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			err = a.addConductNote(ctx)
		case 2:
			err = a.viewConductNotes(ctx)
		case 3:
			fmt.Fprintln(a.out, "Returning to Main Menu...")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) addConductNote(ctx context.Context) error {
	fmt.Fprintln(a.out, "\n--- Add Conduct Note ---")
	student, err := a.selectStudent(ctx)
	if err != nil {
		return err
	}
	if student == nil {
		return nil
	}

	date, err := a.promptConductDate("Enter date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	noteType, err := a.promptNonEmpty("Enter note type (e.g., Praise, Warning, Observation): ")
	if err != nil {
		return err
	}
	desc, err := a.promptLine("Enter note description: ")
	if err != nil {
		return err
	}

	_, err = a.conduct.AddNote(ctx, usecase.AddNoteInput{
		Student: *student,
		Date:    date,
		Type:    noteType,
		Note:    desc,
	})
	if err != nil {
		fmt.Fprintf(a.out, "Error: failed to add conduct note: %v\n", err)
		return nil
	}
	fmt.Fprintf(a.out, "Conduct note added for %s.\n", student.Name)
	return nil
}

func (a *App) viewConductNotes(ctx context.Context) error {
	fmt.Fprintln(a.out, "\n--- View Conduct Notes ---")
	student, err := a.selectStudent(ctx)
	if err != nil {
		return err
	}
	if student == nil {
		return nil
	}

	notes, err := a.conduct.Notes(ctx, *student)
	if err != nil {
		fmt.Fprintf(a.out, "Error: failed to load conduct notes: %v\n", err)
		return nil
	}

	fmt.Fprintf(a.out, "\n--- Conduct Log for %s ---\n", student.Name)
	if len(notes) == 0 {
		fmt.Fprintln(a.out, "No conduct log entries found.")
		return nil
	}
	for _, note := range notes {
		fmt.Fprintf(a.out, "Date: %s, Type: %s, Note: %s\n", note.Date, note.Type, note.Note)
	}
	return nil
}
