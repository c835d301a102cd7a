package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iho/sekolah/internal/domain"
	"github.com/iho/sekolah/internal/usecase"
)

func (a *App) runTuitionMenu(ctx context.Context) error {
	for {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "+===========================+")
		fmt.Fprintln(a.out, "|    Tuition Service Menu   |")
		fmt.Fprintln(a.out, "+===========================+")
		fmt.Fprintln(a.out, "1. Pay Tuition")
		fmt.Fprintln(a.out, "2. Search Student's Tuition Status")
		fmt.Fprintln(a.out, "3. Back to Main Menu")

		choice, err := a.promptChoice("Choose a service: ", 1, 3)
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			err = a.payTuition(ctx)
		case 2:
			err = a.searchTuitionStatus(ctx)
		case 3:
			fmt.Fprintln(a.out, "Returning to Main Menu...")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) payTuition(ctx context.Context) error {
	fmt.Fprintln(a.out, "\n--- Pay Tuition Fee ---")
	nisn, err := a.promptNISN("Please enter the student's NISN: ")
	if err != nil {
		return err
	}

	// Resolve up front so the due amount can be shown and the name is only
	// asked for on a first payment. Pay resolves again internally; the
	// ledger cannot change in between in a single-user session.
	var name string
	prior, err := a.tuition.Resolve(ctx, nisn)
	switch {
	case err == nil:
		fmt.Fprintf(a.out, "Found existing record for NISN %d.\n", nisn)
		fmt.Fprintf(a.out, "Student Name (from last record): %s\n", prior.Name)
		if prior.Paid() {
			fmt.Fprintf(a.out, "Tuition for %s (NISN: %d) is already fully paid.\n", prior.Name, nisn)
			return nil
		}
		fmt.Fprintf(a.out, "Current outstanding balance: %d\n", prior.Balance)
	case errors.Is(err, domain.ErrLedgerNotFound), errors.Is(err, domain.ErrTuitionRecordNotFound):
		fmt.Fprintf(a.out, "No previous payment record found for NISN: %d.\n", nisn)
		fmt.Fprintf(a.out, "Full tuition due: %d\n", a.cfg.BaseTuition)
		name, err = a.promptNonEmpty("Please enter the student's full name: ")
		if err != nil {
			return err
		}
	default:
		fmt.Fprintf(a.out, "Error: failed to read tuition ledger: %v\n", err)
		return nil
	}

	amount, err := a.promptAmount("Please enter the amount you wish to pay: ")
	if err != nil {
		return err
	}

	outcome, err := a.tuition.Pay(ctx, usecase.PayInput{NISN: nisn, Name: name, Tendered: amount})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyPaid) {
			fmt.Fprintf(a.out, "Tuition for NISN %d is already fully paid.\n", nisn)
			return nil
		}
		fmt.Fprintf(a.out, "Error: failed to save tuition payment: %v\n", err)
		return nil
	}

	switch {
	case outcome.Change > 0:
		fmt.Fprintln(a.out, "Tuition has been paid in full. Thank you!")
		fmt.Fprintf(a.out, "Change: %d\n", outcome.Change)
	case outcome.Balance == 0:
		fmt.Fprintln(a.out, "Tuition has been paid in full. Thank you!")
	default:
		fmt.Fprintf(a.out, "New outstanding balance: %d\n", outcome.Balance)
	}
	fmt.Fprintln(a.out, "Tuition payment record saved.")
	return nil
}

func (a *App) searchTuitionStatus(ctx context.Context) error {
	fmt.Fprintln(a.out, "\n--- Search Tuition Status ---")
	nisn, err := a.promptNISN("Enter student NISN to search: ")
	if err != nil {
		return err
	}

	status, err := a.tuition.Status(ctx, nisn)
	switch {
	case errors.Is(err, domain.ErrLedgerNotFound):
		fmt.Fprintln(a.out, "No tuition data available.")
		return nil
	case errors.Is(err, domain.ErrTuitionRecordNotFound):
		fmt.Fprintf(a.out, "Student with NISN %d not found in tuition records.\n", nisn)
		return nil
	case err != nil:
		fmt.Fprintf(a.out, "Error: failed to read tuition ledger: %v\n", err)
		return nil
	}

	name := status.Name
	if name == "" {
		name = "[No Name Recorded]"
	}

	fmt.Fprintln(a.out, "\n--- Student Tuition Status (Latest Record) ---")
	fmt.Fprintf(a.out, "NISN: %d\n", status.NISN)
	fmt.Fprintf(a.out, "Name: %s\n", name)
	fmt.Fprintf(a.out, "Last Amount Paid (in that transaction): %d\n", status.LastPaid)
	fmt.Fprintf(a.out, "Current Outstanding Balance: %d\n", status.Balance)
	if status.Paid() {
		fmt.Fprintln(a.out, "Status: Tuition fully paid.")
	} else {
		fmt.Fprintln(a.out, "Status: Payment still outstanding.")
	}
	return nil
}
