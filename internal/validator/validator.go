package validator

import (
	"context"
	v10validator "github.com/go-playground/validator/v10"
)

type Validator struct {
	engine Engine
}

type Engine interface {
	StructCtx(ctx context.Context, s any) error
	VarCtx(ctx context.Context, field any, tag string) error
}

type enum interface {
	IsValid() bool
}

func New(e Engine) *Validator {
	return &Validator{engine: e}
}

// NewEngine создает движок go-playground/validator с зарегистрированными
// правилами проверки транзакций.
func NewEngine() (*v10validator.Validate, error) {
	v10 := v10validator.New()
	if err := v10.RegisterValidation("known", Known); err != nil {
		return nil, err
	}

	return v10, nil
}

func (v *Validator) Struct(ctx context.Context, s any) error {
	return v.engine.StructCtx(ctx, s)
}

func (v *Validator) Var(ctx context.Context, field any, tag string) error {
	return v.engine.VarCtx(ctx, field, tag)
}

// Known проверяет, что значение поля входит в закрытый набор значений
// своего типа (тип должен реализовывать IsValid() bool).
func Known(fl v10validator.FieldLevel) bool {
	val := fl.Field()
	if !val.CanInterface() {
		return false
	}

	e, ok := val.Interface().(enum)
	if !ok {
		return false
	}

	return e.IsValid()
}
