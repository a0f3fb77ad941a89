package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Report содержит результаты обработки пакета транзакций: по одной строке
// на каждую транзакцию в исходном порядке.
type Report struct {
	ID      uuid.UUID `json:"id"`
	Results []string  `json:"results"`
	Summary Summary   `json:"summary"`
}

type Summary struct {
	Open   int                                 `json:"open"`
	Closed int                                 `json:"closed"`
	Totals map[TransactionType]decimal.Decimal `json:"totals"`
}

func NewSummary() Summary {
	return Summary{
		Totals: map[TransactionType]decimal.Decimal{
			TransactionTypePayment: decimal.Zero,
			TransactionTypeRefund:  decimal.Zero,
		},
	}
}

// Add учитывает транзакцию в сводке. Сумма прибавляется к итогу по типу
// только для открытых транзакций.
func (s *Summary) Add(t Transaction) {
	if t.Status == TransactionStatusClosed {
		s.Closed++

		return
	}

	s.Open++
	if s.Totals == nil {
		s.Totals = map[TransactionType]decimal.Decimal{}
	}
	s.Totals[t.Type] = s.Totals[t.Type].Add(decimal.NewFromFloat(t.Amount))
}
