package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/ivanpodgorny/ledger/internal/entity"
	inerr "github.com/ivanpodgorny/ledger/internal/errors"
	"io"
)

type Validator interface {
	Struct(ctx context.Context, s any) error
	Var(ctx context.Context, field any, tag string) error
}

func readJSON(v any, r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	return json.Unmarshal(b, v)
}

func readJSONAndValidate(ctx context.Context, txs *[]entity.Transaction, r io.Reader, validator Validator) error {
	if err := readJSON(txs, r); err != nil {
		return fmt.Errorf("%w: %w", inerr.ErrInvalidTransaction, err)
	}

	for i, t := range *txs {
		if err := validator.Struct(ctx, t); err != nil {
			return fmt.Errorf("%w: record %d: %v", inerr.ErrInvalidTransaction, i, err)
		}
	}

	return nil
}
