package service

import (
	"fmt"
	"github.com/google/uuid"
	"github.com/ivanpodgorny/ledger/internal/entity"
	"go.uber.org/zap"
	"strings"
)

type Reporter struct {
	processor BatchProcessor
	storage   ReportStorage
	directory string
	logger    *zap.Logger
	newID     func() (uuid.UUID, error)
}

type BatchProcessor interface {
	ProcessAll(txs []entity.Transaction) ([]string, error)
}

type DirectoryCreator interface {
	Create(directory string) error
}

type FileWriter interface {
	Write(directory, filename, content string) error
}

type ReportStorage interface {
	DirectoryCreator
	FileWriter
}

func NewReporter(p BatchProcessor, s ReportStorage, directory string, l *zap.Logger) *Reporter {
	return &Reporter{
		processor: p,
		storage:   s,
		directory: directory,
		logger:    l,
		newID:     uuid.NewRandom,
	}
}

// Build обрабатывает пакет транзакций и формирует отчет со сводкой.
// Если пакет пуст, возвращает ошибку errors.ErrNoTransactions.
func (r *Reporter) Build(txs []entity.Transaction) (entity.Report, error) {
	results, err := r.processor.ProcessAll(txs)
	if err != nil {
		return entity.Report{}, err
	}

	id, err := r.newID()
	if err != nil {
		return entity.Report{}, fmt.Errorf("generate report id: %w", err)
	}

	summary := entity.NewSummary()
	for _, t := range txs {
		summary.Add(t)
	}

	r.logger.Info(
		"batch processed",
		zap.Stringer("report_id", id),
		zap.Int("records", len(results)),
		zap.Int("closed", summary.Closed),
	)

	return entity.Report{
		ID:      id,
		Results: results,
		Summary: summary,
	}, nil
}

// Save создает каталог отчетов в хранилище и записывает в него отчет
// в файл <id отчета>.txt.
func (r *Reporter) Save(report entity.Report) error {
	if err := r.storage.Create(r.directory); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	filename := report.ID.String() + ".txt"
	if err := r.storage.Write(r.directory, filename, renderReport(report)); err != nil {
		return fmt.Errorf("write report %s: %w", filename, err)
	}

	r.logger.Info("report saved", zap.String("directory", r.directory), zap.String("file", filename))

	return nil
}

func renderReport(report entity.Report) string {
	var b strings.Builder
	for _, res := range report.Results {
		b.WriteString(res)
		b.WriteByte('\n')
	}

	s := report.Summary
	fmt.Fprintf(&b, "\nReport: %s\n", report.ID)
	fmt.Fprintf(&b, "Open: %d, closed: %d\n", s.Open, s.Closed)
	for _, t := range []entity.TransactionType{entity.TransactionTypePayment, entity.TransactionTypeRefund} {
		fmt.Fprintf(&b, "Total %s: %s\n", t, s.Totals[t].StringFixed(2))
	}

	return b.String()
}
