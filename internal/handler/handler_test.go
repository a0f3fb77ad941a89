package handler

import (
	"context"
	"github.com/ivanpodgorny/ledger/internal/entity"
	"github.com/stretchr/testify/mock"
)

type ValidatorMock struct {
	mock.Mock
}

func (m *ValidatorMock) Struct(_ context.Context, s any) error {
	args := m.Called(s)

	return args.Error(0)
}

func (m *ValidatorMock) Var(_ context.Context, field any, tag string) error {
	args := m.Called(field, tag)

	return args.Error(0)
}

type ReporterMock struct {
	mock.Mock
}

func (m *ReporterMock) Build(txs []entity.Transaction) (entity.Report, error) {
	args := m.Called(txs)

	return args.Get(0).(entity.Report), args.Error(1)
}

func (m *ReporterMock) Save(report entity.Report) error {
	args := m.Called(report)

	return args.Error(0)
}
