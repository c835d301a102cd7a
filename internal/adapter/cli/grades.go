package cli

import (
	"context"
	"fmt"

	"github.com/iho/sekolah/internal/domain"
)

func (a *App) runGradeInput(ctx context.Context) error {
	for {
		fmt.Fprintln(a.out, "\n--- Input Subject Grades ---")
		student, err := a.selectStudent(ctx)
		if err != nil {
			return err
		}
		if student == nil {
			return nil
		}

		fmt.Fprintf(a.out, "\nInputting grades for: %s\n", student.Name)
		for {
			subject, err := a.promptNonEmpty("Subject name: ")
			if err != nil {
				return err
			}
			grade, err := a.promptSubjectGrade(fmt.Sprintf("Grade for %s: ", subject))
			if err != nil {
				return err
			}

			err = a.grades.RecordGrades(ctx, *student, []domain.SubjectGrade{{Subject: subject, Grade: grade}})
			if err != nil {
				fmt.Fprintf(a.out, "Error: failed to record grade: %v\n", err)
			} else {
				fmt.Fprintf(a.out, "Grade for %s added.\n", subject)
			}

			more, err := a.promptYesNo("Add more subjects for THIS student? (y/n): ")
			if err != nil {
				return err
			}
			if !more {
				break
			}
		}
		fmt.Fprintf(a.out, "Grades updated for %s.\n", student.Name)

		another, err := a.promptYesNo("Input grades for ANOTHER student? (y/n): ")
		if err != nil {
			return err
		}
		if !another {
			fmt.Fprintln(a.out, "Finished inputting grades for this session.")
			return nil
		}
	}
}

func (a *App) runAverages(ctx context.Context) error {
	fmt.Fprintln(a.out, "\n--- Select Student to View Average ---")
	student, err := a.selectStudent(ctx)
	if err != nil {
		return err
	}
	if student == nil {
		return nil
	}

	transcript, err := a.grades.Transcript(ctx, *student)
	if err != nil {
		fmt.Fprintf(a.out, "Error: failed to load grades: %v\n", err)
		return nil
	}

	fmt.Fprintf(a.out, "\n--- Show Grades and Average for %s ---\n", student.Name)
	if !transcript.HasGrades {
		fmt.Fprintf(a.out, "No grades found for %s.\n", student.Name)
		return nil
	}

	fmt.Fprintf(a.out, "Grades for %s:\n", student.Name)
	for _, g := range transcript.Grades {
		fmt.Fprintf(a.out, "- %s: %d\n", g.Subject, g.Grade)
	}
	fmt.Fprintf(a.out, "\nAverage grade for %s: %s\n", student.Name, transcript.Average.StringFixed(2))
	return nil
}
