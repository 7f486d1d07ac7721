package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput — ошибка входных данных, повторять запрос бессмысленно
	ErrInvalidInput = errors.New("invalid input")
	// ErrInternalComputation — сбой вычислений (переполнение, NaN)
	ErrInternalComputation = errors.New("internal computation error")
	// ErrImageDecode — байты не удалось прочитать как изображение
	ErrImageDecode = errors.New("could not decode image")
)

// InputError указывает поле, из-за которого запрос отклонён
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// ComputationError описывает шаг, на котором получилось неконечное значение
type ComputationError struct {
	Stage string
	Value float64
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("%s produced non-finite value %v", e.Stage, e.Value)
}

func (e *ComputationError) Unwrap() error {
	return ErrInternalComputation
}
