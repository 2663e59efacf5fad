package util

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

// FormError is a validation failure. Errors maps a json field name to the
// rule it broke.
type FormError struct {
	Errors  map[string]string
	Message string
}

func (e *FormError) Error() string {
	return fmt.Sprintf("form error: %s", e.Message)
}

func NewFormError(message string, errors map[string]string) *FormError {
	return &FormError{
		Message: message,
		Errors:  errors,
	}
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// TranslateDBError maps driver errors onto ErrNotFound, ErrConflict or a FormError.
func TranslateDBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", ErrConflict, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return NewFormError("referenced record does not exist", map[string]string{
				pgErr.ColumnName: "exists",
			})
		}
	}
	return err
}

// HandleError writes the error envelope matching err's kind. message is used
// for errors that carry no user-facing text of their own.
func HandleError(c *fiber.Ctx, err error, message string) error {
	var formErr *FormError
	switch {
	case errors.As(err, &formErr):
		return ErrorResponse(c, ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: formErr.Message,
			Details: formErr.Errors,
		}, err)
	case errors.Is(err, ErrNotFound):
		return ErrorResponse(c, ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: message + ": not found",
		}, err)
	case errors.Is(err, ErrConflict):
		return ErrorResponse(c, ErrorResponseFormat{
			Code:    fiber.StatusConflict,
			Message: message + ": already exists",
		}, err)
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ErrorResponse(c, ErrorResponseFormat{
			Code:    fiberErr.Code,
			Message: fiberErr.Message,
		}, err)
	}
	return ErrorResponse(c, ErrorResponseFormat{Message: message}, err)
}
