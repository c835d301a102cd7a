package cli

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iho/sekolah/internal/domain"
)

// Prompt helpers. Each one keeps re-prompting until the input validates,
// so invalid input never reaches the use cases. Read errors (including a
// closed stdin) propagate up and end the session.

func (a *App) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (a *App) promptLine(label string) (string, error) {
	fmt.Fprint(a.out, label)
	return a.readLine()
}

func (a *App) promptNonEmpty(label string) (string, error) {
	for {
		line, err := a.promptLine(label)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		fmt.Fprintln(a.out, "Input must not be empty.")
	}
}

func (a *App) promptNISN(label string) (int64, error) {
	for {
		line, err := a.promptLine(label)
		if err != nil {
			return 0, err
		}
		nisn, err := domain.ParseNISN(line)
		if err == nil {
			return nisn, nil
		}
		label = "Invalid NISN. Please enter a numeric NISN: "
	}
}

func (a *App) promptAmount(label string) (int64, error) {
	for {
		line, err := a.promptLine(label)
		if err != nil {
			return 0, err
		}
		amount, err := domain.ParseAmount(line)
		if err == nil {
			return amount, nil
		}
		label = "Invalid amount. Please enter a non-negative number: "
	}
}

func (a *App) promptSubjectGrade(label string) (int, error) {
	for {
		line, err := a.promptLine(label)
		if err != nil {
			return 0, err
		}
		grade, err := domain.ParseAmount(line)
		if err == nil && domain.ValidateSubjectGrade(int(grade)) == nil {
			return int(grade), nil
		}
		label = "Invalid grade. Enter a number between 0-100: "
	}
}

func (a *App) promptAdmissionGrade(label string) (decimal.Decimal, error) {
	for {
		line, err := a.promptLine(label)
		if err != nil {
			return decimal.Zero, err
		}
		grade, err := domain.ParseAdmissionGrade(line)
		if err == nil {
			return grade, nil
		}
		label = "Invalid grade. Please enter a numeric grade between 0-100: "
	}
}

func (a *App) promptGender(label string) (string, error) {
	for {
		line, err := a.promptLine(label)
		if err != nil {
			return "", err
		}
		gender, err := domain.NormalizeGender(line)
		if err == nil {
			return gender, nil
		}
		label = "Invalid gender. Please enter L or P: "
	}
}

func (a *App) promptConductDate(label string) (string, error) {
	for {
		line, err := a.promptLine(label)
		if err != nil {
			return "", err
		}
		line = strings.TrimSpace(line)
		if domain.ValidateConductDate(line) == nil {
			return line, nil
		}
		label = "Invalid date. Please use YYYY-MM-DD: "
	}
}

// promptChoice reads a menu choice between min and max inclusive.
func (a *App) promptChoice(label string, min, max int) (int, error) {
	for {
		line, err := a.promptLine(label)
		if err != nil {
			return 0, err
		}
		choice, err := domain.ParseAmount(line)
		if err == nil && int(choice) >= min && int(choice) <= max {
			return int(choice), nil
		}
		label = fmt.Sprintf("Invalid choice. Enter a number between %d and %d: ", min, max)
	}
}

func (a *App) promptYesNo(label string) (bool, error) {
	for {
		line, err := a.promptLine(label)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		label = "Please answer y or n: "
	}
}
