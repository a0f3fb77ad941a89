package service

import (
	"fmt"
	"github.com/ivanpodgorny/ledger/internal/entity"
	inerr "github.com/ivanpodgorny/ledger/internal/errors"
)

// Ledger обрабатывает пакеты транзакций. Не хранит состояния, поэтому
// безопасен для одновременного использования.
type Ledger struct{}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Validate возвращает ошибку errors.ErrNoTransactions, если пакет пуст.
func (l *Ledger) Validate(txs []entity.Transaction) error {
	if len(txs) == 0 {
		return inerr.ErrNoTransactions
	}

	return nil
}

// Process обрабатывает одну транзакцию. Для закрытой транзакции возвращает
// *entity.ClosedError с копией транзакции.
func (l *Ledger) Process(t entity.Transaction) (string, error) {
	if t.Status == entity.TransactionStatusClosed {
		return "", entity.NewClosedError(t)
	}

	return fmt.Sprintf("Processing %s %s for amount: %.2f", t.Type, t.Method, t.Amount), nil
}

// ProcessAll проверяет пакет и обрабатывает каждую транзакцию в исходном порядке.
// Ошибка обработки отдельной транзакции не прерывает пакет: вместо результата
// в список попадает текст ошибки.
func (l *Ledger) ProcessAll(txs []entity.Transaction) ([]string, error) {
	if err := l.Validate(txs); err != nil {
		return nil, err
	}

	results := make([]string, 0, len(txs))
	for _, t := range txs {
		res, err := l.Process(t)
		if err != nil {
			res = err.Error()
		}

		results = append(results, res)
	}

	return results, nil
}
