package main

import (
	"context"
	"errors"
	"github.com/ivanpodgorny/ledger/internal/config"
	inerr "github.com/ivanpodgorny/ledger/internal/errors"
	"github.com/ivanpodgorny/ledger/internal/handler"
	"github.com/ivanpodgorny/ledger/internal/logger"
	"github.com/ivanpodgorny/ledger/internal/service"
	"github.com/ivanpodgorny/ledger/internal/storage"
	"github.com/ivanpodgorny/ledger/internal/validator"
	"go.uber.org/zap"
	"io"
	"log"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		if errors.Is(err, inerr.ErrNoTransactions) {
			log.Println(err)
			os.Exit(2)
		}

		log.Fatal(err)
	}
}

func Execute() error {
	cfg, err := config.NewBuilder().LoadDotEnv().LoadFlags().LoadEnv().Build()
	if err != nil {
		return err
	}

	l, err := logger.New(cfg.LogLevel())
	if err != nil {
		return err
	}

	defer func(l *zap.Logger) {
		_ = l.Sync()
	}(l)

	engine, err := validator.NewEngine()
	if err != nil {
		return err
	}

	input, err := openInput(cfg.InputPath())
	if err != nil {
		return err
	}

	defer func(input io.ReadCloser) {
		_ = input.Close()
	}(input)

	var (
		ledger   = service.NewLedger()
		disk     = storage.NewDisk(cfg.ReportRoot())
		reporter = service.NewReporter(ledger, disk, cfg.ReportDirectory(), l)
		bh       = handler.NewBatch(reporter, validator.New(engine))
	)

	report, err := bh.Process(context.Background(), input, os.Stdout)
	if err != nil {
		l.Error("batch processing failed", zap.Error(err))

		return err
	}

	l.Debug("done", zap.Stringer("report_id", report.ID))

	return nil
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}

	return os.Open(path)
}
