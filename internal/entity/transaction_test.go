package entity

import (
	"encoding/json"
	"errors"
	inerr "github.com/ivanpodgorny/ledger/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestTransaction_String(t *testing.T) {
	tests := []struct {
		name        string
		transaction Transaction
		want        string
	}{
		{
			name: "открытый платеж картой",
			transaction: NewTransaction(
				"t1",
				TransactionTypePayment,
				TransactionStatusOpen,
				PaymentMethodCreditCard,
				23.99,
			),
			want: "Transaction: id: t1, type: payment, status: open, method: credit card, amount: 23.99",
		},
		{
			name: "сумма без дробной части выводится как есть",
			transaction: NewTransaction(
				"t2",
				TransactionTypeRefund,
				TransactionStatusClosed,
				PaymentMethodPayPal,
				100,
			),
			want: "Transaction: id: t2, type: refund, status: closed, method: PayPal, amount: 100",
		},
		{
			name: "сумма не дополняется нулями",
			transaction: NewTransaction(
				"t3",
				TransactionTypePayment,
				TransactionStatusOpen,
				PaymentMethodPlan,
				23.9,
			),
			want: "Transaction: id: t3, type: payment, status: open, method: plan, amount: 23.9",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.transaction.String())
		})
	}
}

func TestTransaction_UnmarshalJSON(t *testing.T) {
	var tx Transaction
	err := json.Unmarshal(
		[]byte(`{"id": "t1", "type": "refund", "status": "closed", "method": "PayPal", "amount": 100.43}`),
		&tx,
	)
	require.NoError(t, err)
	assert.Equal(
		t,
		NewTransaction("t1", TransactionTypeRefund, TransactionStatusClosed, PaymentMethodPayPal, 100.43),
		tx,
		"успешное чтение транзакции",
	)

	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{
			name:    "неизвестный тип транзакции",
			body:    `{"id": "t1", "type": "transfer", "status": "open", "method": "plan", "amount": 1}`,
			wantErr: inerr.ErrUnknownTransactionType,
		},
		{
			name:    "неизвестный статус транзакции",
			body:    `{"id": "t1", "type": "payment", "status": "pending", "method": "plan", "amount": 1}`,
			wantErr: inerr.ErrUnknownTransactionStatus,
		},
		{
			name:    "неизвестный способ оплаты",
			body:    `{"id": "t1", "type": "payment", "status": "open", "method": "paypal", "amount": 1}`,
			wantErr: inerr.ErrUnknownPaymentMethod,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, json.Unmarshal([]byte(tt.body), &Transaction{}), tt.wantErr)
		})
	}
}

func TestEnums_IsValid(t *testing.T) {
	assert.True(t, TransactionTypePayment.IsValid())
	assert.True(t, TransactionTypeRefund.IsValid())
	assert.False(t, TransactionType("").IsValid())

	assert.True(t, TransactionStatusOpen.IsValid())
	assert.True(t, TransactionStatusClosed.IsValid())
	assert.False(t, TransactionStatus("OPEN").IsValid())

	assert.True(t, PaymentMethodCreditCard.IsValid())
	assert.True(t, PaymentMethodPayPal.IsValid())
	assert.True(t, PaymentMethodPlan.IsValid())
	assert.False(t, PaymentMethod("cash").IsValid())
}

func TestClosedError_Error(t *testing.T) {
	var (
		payment = NewTransaction("t1", TransactionTypePayment, TransactionStatusClosed, PaymentMethodCreditCard, 23.99)
		refund  = NewTransaction("t2", TransactionTypeRefund, TransactionStatusClosed, PaymentMethodPayPal, 100.43)
	)

	tests := []struct {
		name string
		err  *ClosedError
		want string
	}{
		{
			name: "закрытый платеж",
			err:  NewClosedError(payment),
			want: "Your payment is already closed | Transaction: id: t1, type: payment, status: closed, method: credit card, amount: 23.99",
		},
		{
			name: "закрытый возврат",
			err:  NewClosedError(refund),
			want: "Your refund is already closed | Transaction: id: t2, type: refund, status: closed, method: PayPal, amount: 100.43",
		},
		{
			name: "без транзакции",
			err:  &ClosedError{},
			want: "Your transaction is already closed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.ErrorIs(t, tt.err, inerr.ErrTransactionClosed)
		})
	}
}

func TestClosedError_As(t *testing.T) {
	tx := NewTransaction("t1", TransactionTypePayment, TransactionStatusClosed, PaymentMethodPlan, 15.99)
	err := error(NewClosedError(tx))

	var closed *ClosedError
	require.True(t, errors.As(err, &closed))
	require.NotNil(t, closed.Transaction)
	assert.Equal(t, tx, *closed.Transaction, "ошибка содержит исходную транзакцию")
}
