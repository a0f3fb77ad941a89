package errors

import "errors"

var (
	ErrNoTransactions           = errors.New("There are no transactions to process")
	ErrTransactionClosed        = errors.New("transaction is already closed")
	ErrInvalidTransaction       = errors.New("invalid transaction")
	ErrUnknownTransactionType   = errors.New("unknown transaction type")
	ErrUnknownTransactionStatus = errors.New("unknown transaction status")
	ErrUnknownPaymentMethod     = errors.New("unknown payment method")
)
