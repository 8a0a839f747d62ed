package httperr

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
)

// ValidationError carries one or more field-level constraint failures.
type ValidationError struct {
	Fields map[string]string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

func Validation(field, reason string) error {
	return ValidationError{Fields: map[string]string{field: reason}}
}

// PermissionError signals that the access policy denied the operation.
type PermissionError struct {
	Resource string
	Action   string
}

func (e PermissionError) Error() string {
	return fmt.Sprintf("not allowed to %s %s", e.Action, e.Resource)
}

// NotFoundError signals an identifier that does not resolve.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// ConflictError signals a uniqueness violation.
type ConflictError struct {
	Resource string
	Field    string
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("%s with this %s already exists", e.Resource, e.Field)
}

// IllegalStateError signals an invalid enum value assignment.
type IllegalStateError struct {
	Value string
}

func (e IllegalStateError) Error() string {
	return fmt.Sprintf("invalid status %q", e.Value)
}

// WriteError maps a domain error onto the response envelope. Unrecognized
// errors become a generic internal error without domain detail.
func WriteError(c *gin.Context, err error) {
	var (
		ve ValidationError
		pe PermissionError
		nf NotFoundError
		ce ConflictError
		ie IllegalStateError
	)
	switch {
	case errors.As(err, &ve):
		Unprocessable(c, "validation_failed", "one or more fields are invalid", ve.Fields)
	case errors.As(err, &pe):
		Forbidden(c, "permission_denied", pe.Error())
	case errors.As(err, &nf):
		NotFound(c, "not_found", nf.Error())
	case errors.As(err, &ce):
		Conflict(c, "conflict", ce.Error())
	case errors.As(err, &ie):
		BadRequest(c, "invalid_status", ie.Error())
	default:
		Internal(c, "internal_error", "internal error")
	}
}
