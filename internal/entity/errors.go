package entity

import (
	"fmt"
	inerr "github.com/ivanpodgorny/ledger/internal/errors"
)

// ClosedError возвращается при попытке обработать закрытую транзакцию.
// Transaction может быть nil, тогда тип транзакции в сообщении не указывается.
type ClosedError struct {
	Transaction *Transaction
}

func NewClosedError(t Transaction) *ClosedError {
	return &ClosedError{Transaction: &t}
}

func (e *ClosedError) Error() string {
	if e.Transaction == nil {
		return "Your transaction is already closed"
	}

	return fmt.Sprintf("Your %s is already closed | %s", e.Transaction.Type, e.Transaction)
}

func (e *ClosedError) Is(target error) bool {
	return target == inerr.ErrTransactionClosed
}
