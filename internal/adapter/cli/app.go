// Package cli is the interactive console surface: menu loops, prompts and
// printing. All input is validated here before it reaches the use cases;
// invalid input re-prompts instead of propagating.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/iho/sekolah/internal/domain"
	"github.com/iho/sekolah/internal/infrastructure/config"
	"github.com/iho/sekolah/internal/usecase"
)

// App drives the interactive console.
type App struct {
	in  *bufio.Reader
	out io.Writer

	cfg          *config.Config
	tuition      *usecase.TuitionUseCase
	registration *usecase.RegistrationUseCase
	grades       *usecase.GradesUseCase
	conduct      *usecase.ConductUseCase
	roster       usecase.RosterRepository
	log          zerolog.Logger
}

// NewApp creates a new App reading from in and writing to out.
func NewApp(
	in io.Reader,
	out io.Writer,
	cfg *config.Config,
	tuition *usecase.TuitionUseCase,
	registration *usecase.RegistrationUseCase,
	grades *usecase.GradesUseCase,
	conduct *usecase.ConductUseCase,
	roster usecase.RosterRepository,
	log zerolog.Logger,
) *App {
	return &App{
		in:           bufio.NewReader(in),
		out:          out,
		cfg:          cfg,
		tuition:      tuition,
		registration: registration,
		grades:       grades,
		conduct:      conduct,
		roster:       roster,
		log:          log,
	}
}

// Run loops the main menu until the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "+===========================+")
		fmt.Fprintln(a.out, "|   School Management Menu  |")
		fmt.Fprintln(a.out, "+===========================+")
		fmt.Fprintln(a.out, "1. Register New Students")
		fmt.Fprintln(a.out, "2. Show Registration Results & Admit")
		fmt.Fprintln(a.out, "3. Input Subject Grades")
		fmt.Fprintln(a.out, "4. Show Student's Grades and Average")
		fmt.Fprintln(a.out, "5. Tuition Fee Services")
		fmt.Fprintln(a.out, "6. Manage Student Conduct Log")
		fmt.Fprintln(a.out, "7. Exit")

		choice, err := a.promptChoice("Choose: ", 1, 7)
		if err != nil {
			return a.finish(err)
		}

		switch choice {
		case 1:
			err = a.runRegistration(ctx)
		case 2:
			err = a.runAdmission(ctx)
		case 3:
			err = a.runGradeInput(ctx)
		case 4:
			err = a.runAverages(ctx)
		case 5:
			err = a.runTuitionMenu(ctx)
		case 6:
			err = a.runConductMenu(ctx)
		case 7:
			fmt.Fprintln(a.out, "Exiting program. Goodbye!")
			return nil
		}
		if err != nil {
			return a.finish(err)
		}
	}
}

// finish turns end-of-input into a clean exit.
func (a *App) finish(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(a.out)
		return nil
	}
	return err
}

// selectStudent lists the roster and asks for a selection. Returns nil
// when the roster is empty or the user backs out with 0.
func (a *App) selectStudent(ctx context.Context) (*domain.RosterEntry, error) {
	entries, err := a.roster.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No admitted students found. Please register and admit students first.")
		return nil, nil
	}

	fmt.Fprintln(a.out, "Select student:")
	for i, e := range entries {
		fmt.Fprintf(a.out, "%d. %s (NISN: %d)\n", i+1, e.Name, e.NISN)
	}
	choice, err := a.promptChoice("Enter student number (or 0 to go back): ", 0, len(entries))
	if err != nil {
		return nil, err
	}
	if choice == 0 {
		return nil, nil
	}
	return &entries[choice-1], nil
}
