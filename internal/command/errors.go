package command

import (
	"errors"
	"fmt"

	"github.com/milosmiric/ratado-sub000/internal/storage"
)

type ErrorCode string

const (
	ErrCodeStorage    ErrorCode = "storage"
	ErrCodeNotFound   ErrorCode = "not_found"
	ErrCodeConversion ErrorCode = "conversion"
	ErrCodeMigration  ErrorCode = "migration"
)

// AppError is the dispatcher's error surface. The code is closed; the
// wrapped error keeps the storage chain intact for errors.Is.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func storageError(message string, err error) *AppError {
	code := ErrCodeStorage
	if errors.Is(err, storage.ErrNotFound) {
		code = ErrCodeNotFound
	}
	return &AppError{Code: code, Message: message, Err: err}
}
