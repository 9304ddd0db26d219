// Package main is the entry point for bookingcheck, a command-line checker
// that tests proposed sitter bookings against the house rules.
// Its sole responsibility is wiring dependencies together and mapping
// outcomes to exit codes. No business logic belongs here.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkordes/sitterbook/internal/config"
	"github.com/pkordes/sitterbook/internal/domain"
	"github.com/pkordes/sitterbook/internal/logging"
	"github.com/pkordes/sitterbook/internal/report"
	"github.com/pkordes/sitterbook/internal/service"
)

// Exit codes.
const (
	exitAccepted = 0 // every booking passed
	exitRejected = 1 // at least one field failed a house rule
	exitError    = 2 // malformed input, bad flags or bad configuration
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run parses flags, loads configuration and checks either the single
// booking given by -start/-end or every booking line read from stdin.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("bookingcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	startFlag := fs.String("start", "", `proposed start time, e.g. "5:30 PM" (reads "start,end[,id]" lines from stdin when omitted)`)
	endFlag := fs.String("end", "", `proposed end time, e.g. "11:00 PM"`)
	formatFlag := fs.String("format", "text", "output format: text, json or csv")
	rulesFlag := fs.String("rules", "", "YAML house rules file (overrides HOUSE_RULES_FILE)")
	strategyFlag := fs.String("strategy", "", "comparison strategy: clock12 (default) or businessday (overrides RULE_STRATEGY)")
	if err := fs.Parse(args); err != nil {
		return exitError
	}

	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		fmt.Fprintf(stderr, "configuration error: %v\n", err)
		return exitError
	}

	// --- Logger -----------------------------------------------------------
	// Logs go to stderr so stdout carries only the report.
	logger := logging.New(stderr, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	if *rulesFlag != "" {
		if cfg, err = config.ApplyRulesFile(cfg, *rulesFlag); err != nil {
			logger.Error("configuration error", "error", err)
			return exitError
		}
	}
	if *strategyFlag != "" {
		if cfg.Strategy, err = domain.ParseStrategy(*strategyFlag); err != nil {
			logger.Error("invalid -strategy", "error", err)
			return exitError
		}
	}
	format, err := report.ParseFormat(*formatFlag)
	if err != nil {
		logger.Error("invalid -format", "error", err)
		return exitError
	}

	// --- Services ---------------------------------------------------------
	validator, err := service.NewTimeRuleValidator(cfg.Rules,
		service.WithStrategy(cfg.Strategy),
		service.WithBusinessDayStart(cfg.BusinessDayStart),
		service.WithLogger(logger),
	)
	if err != nil {
		logger.Error("invalid house rules", "error", err)
		return exitError
	}
	batch := service.NewBatchService(validator)

	logger.Debug("house rules loaded",
		"earliest_start", cfg.Rules.EarliestStart.String(),
		"latest_end", cfg.Rules.LatestEnd.String(),
		"strategy", string(cfg.Strategy),
		"rules_file", cfg.RulesFile,
	)

	// --- Input ------------------------------------------------------------
	bookings, err := readInput(*startFlag, *endFlag, stdin)
	if err != nil {
		logger.Error("invalid booking input", "error", err)
		return exitError
	}
	if len(bookings) == 0 {
		logger.Error("no bookings to check")
		return exitError
	}

	// --- Validate & report ------------------------------------------------
	reports, err := batch.ValidateAll(ctx, bookings)
	if err != nil {
		logger.Error("validation failed", "error", err)
		return exitError
	}
	sum := service.Summarize(reports)
	if err := report.Write(stdout, format, reports, sum); err != nil {
		logger.Error("writing report", "error", err)
		return exitError
	}

	logger.Info("bookings checked", "total", sum.Total, "accepted", sum.Accepted, "rejected", sum.Rejected)
	if sum.Rejected > 0 {
		return exitRejected
	}
	return exitAccepted
}

// readInput builds the booking list from -start/-end when either is given,
// otherwise from stdin lines.
func readInput(start, end string, stdin io.Reader) ([]domain.Booking, error) {
	if start == "" && end == "" {
		return report.ReadBookings(stdin)
	}
	if start == "" || end == "" {
		return nil, errors.New("-start and -end must be given together")
	}
	s, err := domain.ParseTimeOfDay(start)
	if err != nil {
		return nil, fmt.Errorf("-start: %w", err)
	}
	e, err := domain.ParseTimeOfDay(end)
	if err != nil {
		return nil, fmt.Errorf("-end: %w", err)
	}
	return []domain.Booking{{Start: s, End: e}}, nil
}
