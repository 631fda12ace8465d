package domain

import (
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"
)

var (
	// ErrEncoding marks a customer record that cannot be turned into a
	// feature vector.
	ErrEncoding = errors.New("encoding error")
	// ErrModelInference marks a failure to load the model or to run it.
	ErrModelInference = errors.New("model inference error")
)

// AppError представляет доменную ошибку приложения.
type AppError struct {
	Code    failure.ErrorCode
	Message string
	cause   error
}

// Error реализует интерфейс error.
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap возвращает обёрнутую ошибку для errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.cause
}

// ErrorCode возвращает код для ответа клиенту.
func (e *AppError) ErrorCode() failure.ErrorCode {
	return e.Code
}

// PublicMessage возвращает сообщение без внутренних подробностей.
func (e *AppError) PublicMessage() string {
	return e.Message
}

// NewError создаёт новую доменную ошибку.
func NewError(code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// WrapError оборачивает существующую ошибку с доменным контекстом.
func WrapError(err error, code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

// NewEncodingError сообщает о значении признака, которое нельзя закодировать.
func NewEncodingError(code failure.ErrorCode, field, value string) *AppError {
	return WrapError(
		fmt.Errorf("%w: %s=%q", ErrEncoding, field, value),
		code,
		"unrecognized categorical value",
	)
}

// NewModelInferenceError оборачивает ошибку загрузки или вызова модели.
func NewModelInferenceError(err error, code failure.ErrorCode, message string) *AppError {
	if err == nil {
		err = ErrModelInference
	} else {
		err = fmt.Errorf("%w: %w", ErrModelInference, err)
	}

	return WrapError(err, code, message)
}

// IsAppError проверяет, является ли ошибка доменной.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetCode извлекает код ошибки, если это AppError.
func GetCode(err error) (failure.ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}
