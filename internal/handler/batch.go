package handler

import (
	"context"
	"github.com/ivanpodgorny/ledger/internal/entity"
	"io"
)

type Batch struct {
	reporter  Reporter
	validator Validator
}

type Reporter interface {
	Build(txs []entity.Transaction) (entity.Report, error)
	Save(report entity.Report) error
}

func NewBatch(r Reporter, v Validator) *Batch {
	return &Batch{
		reporter:  r,
		validator: v,
	}
}

// Process читает пакет транзакций в формате JSON из r, проверяет каждую транзакцию
// и обрабатывает пакет. Результаты обработки построчно записываются в w, отчет
// сохраняется в хранилище. Если транзакция не прошла проверку, возвращает ошибку
// errors.ErrInvalidTransaction, если пакет пуст - errors.ErrNoTransactions.
func (h *Batch) Process(ctx context.Context, r io.Reader, w io.Writer) (entity.Report, error) {
	var txs []entity.Transaction
	if err := readJSONAndValidate(ctx, &txs, r, h.validator); err != nil {
		return entity.Report{}, err
	}

	report, err := h.reporter.Build(txs)
	if err != nil {
		return entity.Report{}, err
	}

	if err := writeLines(w, report.Results); err != nil {
		return entity.Report{}, err
	}

	if err := h.reporter.Save(report); err != nil {
		return entity.Report{}, err
	}

	return report, nil
}
