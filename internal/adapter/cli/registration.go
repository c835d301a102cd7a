package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iho/sekolah/internal/domain"
)

func (a *App) runRegistration(ctx context.Context) error {
	count, err := a.promptChoice("How many students will register? : ", 1, a.cfg.MaxApplicants)
	if err != nil {
		return err
	}

	registered := 0
	for i := 0; i < count; i++ {
		fmt.Fprintf(a.out, "\n--- Student %d ---\n", i+1)

		applicant, err := a.promptApplicant()
		if err != nil {
			return err
		}

		if err := a.registration.Register(*applicant); err != nil {
			if errors.Is(err, domain.ErrCapacityExceeded) {
				fmt.Fprintf(a.out, "Maximum applicant capacity reached: %v\n", err)
				break
			}
			return err
		}
		registered++
	}

	if registered > 0 {
		fmt.Fprintf(a.out, "%d student(s) have been provisionally registered!\n", registered)
	} else {
		fmt.Fprintln(a.out, "No students were registered.")
	}
	return nil
}

func (a *App) promptApplicant() (*domain.Applicant, error) {
	name, err := a.promptNonEmpty("Name of student: ")
	if err != nil {
		return nil, err
	}
	nisn, err := a.promptNISN("NISN of student: ")
	if err != nil {
		return nil, err
	}
	placeOfBirth, err := a.promptLine("Place of birth of student: ")
	if err != nil {
		return nil, err
	}
	dateOfBirth, err := a.promptLine("Date of birth of student (DD/MM/YYYY): ")
	if err != nil {
		return nil, err
	}
	gender, err := a.promptGender("Gender of student (L/P): ")
	if err != nil {
		return nil, err
	}
	grade, err := a.promptAdmissionGrade("Grade of student (0-100): ")
	if err != nil {
		return nil, err
	}

	return &domain.Applicant{
		Name:           name,
		NISN:           nisn,
		PlaceOfBirth:   placeOfBirth,
		DateOfBirth:    dateOfBirth,
		Gender:         gender,
		AdmissionGrade: grade,
	}, nil
}

func (a *App) runAdmission(ctx context.Context) error {
	if len(a.registration.Applicants()) == 0 {
		fmt.Fprintln(a.out, "No students registered to show results for.")
		return nil
	}

	admitted := a.registration.Admitted()

	fmt.Fprintln(a.out, "\n--- REGISTRATION RESULTS & ADMISSION ---")
	fmt.Fprintln(a.out, "CONGRATULATIONS TO THE ADMITTED STUDENTS!")
	fmt.Fprintf(a.out, "\nAdmitted Students (Top %d):\n", a.registration.Capacity())
	for i, s := range admitted {
		fmt.Fprintf(a.out, "\nStudent Rank %d:\n", i+1)
		fmt.Fprintf(a.out, "Name: %s\n", s.Name)
		fmt.Fprintf(a.out, "NISN: %d\n", s.NISN)
		fmt.Fprintf(a.out, "Place of Birth: %s\n", s.PlaceOfBirth)
		fmt.Fprintf(a.out, "Date of Birth: %s\n", s.DateOfBirth)
		fmt.Fprintf(a.out, "Gender: %s\n", s.Gender)
		fmt.Fprintf(a.out, "Admission Grade: %s\n", s.AdmissionGrade)
	}

	save, err := a.promptYesNo(fmt.Sprintf("\nDo you want to save these %d admitted students' data? (y/n): ", len(admitted)))
	if err != nil {
		return err
	}
	if !save {
		fmt.Fprintln(a.out, "Student data not saved.")
		return nil
	}

	if _, err := a.registration.Commit(ctx); err != nil {
		fmt.Fprintf(a.out, "Error: failed to save admitted students: %v\n", err)
		return nil
	}
	fmt.Fprintln(a.out, "Admitted students' data processed.")
	return nil
}
