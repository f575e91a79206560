package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rsanghvi/courtsched/internal/cli"
	"github.com/rsanghvi/courtsched/internal/config"
	"github.com/rsanghvi/courtsched/internal/db"
	"github.com/rsanghvi/courtsched/internal/logger"
	"github.com/rsanghvi/courtsched/internal/repository"
	"github.com/rsanghvi/courtsched/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional config file; defaults plus COURTSCHED_ env vars otherwise.
	cfg, err := config.Load(os.Getenv("COURTSCHED_CONFIG"))
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	judgeRepo := repository.NewSQLiteJudgeRepo(database)
	caseRepo := repository.NewSQLiteCaseRepo(database)
	bookingRepo := repository.NewSQLiteBookingRepo(database)
	hearingRepo := repository.NewSQLiteHearingRepo(database)

	// Wire unit of work for transactional scheduling commits
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	schedulingSvc := service.NewSchedulingService(caseRepo, judgeRepo,
		bookingRepo, hearingRepo, uow, &cfg.Scheduling, logger.New("scheduler"))

	caseSvc := service.NewCaseService(caseRepo, hearingRepo, schedulingSvc, logger.New("cases"))
	judgeSvc := service.NewJudgeService(judgeRepo, bookingRepo, &cfg.Scheduling, logger.New("judges"))

	app := &cli.App{
		Cases:      caseSvc,
		Judges:     judgeSvc,
		Scheduling: schedulingSvc,
		Import:     service.NewImportService(judgeSvc, caseSvc, logger.New("import")),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
