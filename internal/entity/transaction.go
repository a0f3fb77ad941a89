package entity

import (
	"fmt"
	inerr "github.com/ivanpodgorny/ledger/internal/errors"
	"strconv"
)

type Transaction struct {
	ID     string            `json:"id" validate:"required"`
	Type   TransactionType   `json:"type" validate:"known"`
	Status TransactionStatus `json:"status" validate:"known"`
	Method PaymentMethod     `json:"method" validate:"known"`
	Amount float64           `json:"amount"`
}

type TransactionType string

const (
	TransactionTypePayment TransactionType = "payment"
	TransactionTypeRefund  TransactionType = "refund"
)

type TransactionStatus string

const (
	TransactionStatusOpen   TransactionStatus = "open"
	TransactionStatusClosed TransactionStatus = "closed"
)

type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "credit card"
	PaymentMethodPayPal     PaymentMethod = "PayPal"
	PaymentMethodPlan       PaymentMethod = "plan"
)

func NewTransaction(id string, t TransactionType, s TransactionStatus, m PaymentMethod, amount float64) Transaction {
	return Transaction{
		ID:     id,
		Type:   t,
		Status: s,
		Method: m,
		Amount: amount,
	}
}

// String возвращает описание транзакции. Сумма выводится без округления,
// в кратчайшем десятичном представлении.
func (t Transaction) String() string {
	return fmt.Sprintf(
		"Transaction: id: %s, type: %s, status: %s, method: %s, amount: %s",
		t.ID,
		t.Type,
		t.Status,
		t.Method,
		strconv.FormatFloat(t.Amount, 'f', -1, 64),
	)
}

func (t TransactionType) String() string {
	return string(t)
}

func (t TransactionType) IsValid() bool {
	return t == TransactionTypePayment || t == TransactionTypeRefund
}

func (t *TransactionType) UnmarshalText(text []byte) error {
	v := TransactionType(text)
	if !v.IsValid() {
		return fmt.Errorf("%w: %q", inerr.ErrUnknownTransactionType, text)
	}

	*t = v

	return nil
}

func (s TransactionStatus) String() string {
	return string(s)
}

func (s TransactionStatus) IsValid() bool {
	return s == TransactionStatusOpen || s == TransactionStatusClosed
}

func (s *TransactionStatus) UnmarshalText(text []byte) error {
	v := TransactionStatus(text)
	if !v.IsValid() {
		return fmt.Errorf("%w: %q", inerr.ErrUnknownTransactionStatus, text)
	}

	*s = v

	return nil
}

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodPayPal, PaymentMethodPlan:
		return true
	}

	return false
}

func (m *PaymentMethod) UnmarshalText(text []byte) error {
	v := PaymentMethod(text)
	if !v.IsValid() {
		return fmt.Errorf("%w: %q", inerr.ErrUnknownPaymentMethod, text)
	}

	*m = v

	return nil
}
