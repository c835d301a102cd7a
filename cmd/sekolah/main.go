package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iho/sekolah/internal/adapter/cli"
	"github.com/iho/sekolah/internal/adapter/repository/file"
	"github.com/iho/sekolah/internal/domain"
	"github.com/iho/sekolah/internal/infrastructure/config"
	"github.com/iho/sekolah/internal/infrastructure/logger"
	"github.com/iho/sekolah/internal/usecase"
)

type application struct {
	cfg          *config.Config
	log          zerolog.Logger
	tuition      *usecase.TuitionUseCase
	registration *usecase.RegistrationUseCase
	grades       *usecase.GradesUseCase
	conduct      *usecase.ConductUseCase
	roster       usecase.RosterRepository
}

func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ledgerRepo := file.NewTuitionLedgerRepository(cfg.LedgerPath)
	rosterRepo := file.NewRosterRepository(cfg.RosterPath)
	detailRepo := file.NewDetailRepository(cfg.DetailsDir)
	idGen := file.NewULIDGenerator()

	return &application{
		cfg:          cfg,
		log:          log,
		tuition:      usecase.NewTuitionUseCase(ledgerRepo, cfg.BaseTuition, log),
		registration: usecase.NewRegistrationUseCase(rosterRepo, detailRepo, cfg.MaxApplicants, cfg.AdmissionCapacity, log),
		grades:       usecase.NewGradesUseCase(detailRepo, log),
		conduct:      usecase.NewConductUseCase(detailRepo, idGen, log),
		roster:       rosterRepo,
	}, nil
}

func main() {
	app, err := newApplication()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "sekolah",
		Short: "School records console",
		Long: `Interactive console for student registration, admission ranking,
subject grades, tuition payments and conduct logs. Running without a
subcommand starts the menu.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			console := cli.NewApp(
				cmd.InOrStdin(), cmd.OutOrStdout(),
				app.cfg, app.tuition, app.registration, app.grades, app.conduct, app.roster,
				app.log,
			)
			return console.Run(cmd.Context())
		},
	}
	rootCmd.AddCommand(newPayCmd(app), newStatusCmd(app))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newPayCmd(app *application) *cobra.Command {
	var (
		nisnFlag   string
		amountFlag string
		nameFlag   string
	)

	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Record a tuition payment without the menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			nisn, err := domain.ParseNISN(nisnFlag)
			if err != nil {
				return err
			}
			amount, err := domain.ParseAmount(amountFlag)
			if err != nil {
				return err
			}

			outcome, err := app.tuition.Pay(cmd.Context(), usecase.PayInput{
				NISN:     nisn,
				Name:     nameFlag,
				Tendered: amount,
			})
			if err != nil {
				if errors.Is(err, domain.ErrAlreadyPaid) {
					fmt.Fprintf(cmd.OutOrStdout(), "Tuition for NISN %d is already fully paid.\n", nisn)
					return nil
				}
				if errors.Is(err, domain.ErrNameRequired) {
					return fmt.Errorf("no payment history for NISN %d, supply --name", nisn)
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded payment of %d for %s (NISN %d).\n", outcome.Tendered, outcome.Name, outcome.NISN)
			if outcome.Change > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Change: %d\n", outcome.Change)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Outstanding balance: %d\n", outcome.Balance)
			return nil
		},
	}

	cmd.Flags().StringVar(&nisnFlag, "nisn", "", "student NISN")
	cmd.Flags().StringVar(&amountFlag, "amount", "", "amount tendered")
	cmd.Flags().StringVar(&nameFlag, "name", "", "student name, required for a first payment")
	cmd.MarkFlagRequired("nisn")
	cmd.MarkFlagRequired("amount")

	return cmd
}

func newStatusCmd(app *application) *cobra.Command {
	var nisnFlag string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Look up a student's tuition status without the menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			nisn, err := domain.ParseNISN(nisnFlag)
			if err != nil {
				return err
			}

			status, err := app.tuition.Status(cmd.Context(), nisn)
			if err != nil {
				if errors.Is(err, domain.ErrLedgerNotFound) {
					fmt.Fprintln(cmd.OutOrStdout(), "No tuition data available.")
					return nil
				}
				if errors.Is(err, domain.ErrTuitionRecordNotFound) {
					fmt.Fprintf(cmd.OutOrStdout(), "Student with NISN %d not found in tuition records.\n", nisn)
					return nil
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "NISN: %d\n", status.NISN)
			fmt.Fprintf(cmd.OutOrStdout(), "Name: %s\n", status.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Last amount paid: %d\n", status.LastPaid)
			fmt.Fprintf(cmd.OutOrStdout(), "Outstanding balance: %d\n", status.Balance)
			return nil
		},
	}

	cmd.Flags().StringVar(&nisnFlag, "nisn", "", "student NISN")
	cmd.MarkFlagRequired("nisn")

	return cmd
}
