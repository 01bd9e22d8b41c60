package report

import (
	"context"
	"errors"

	errorslib "github.com/goliatone/go-errors"
)

// ErrorKind defines report error kinds.
type ErrorKind string

const (
	// KindRejected marks uploads refused before any parsing, e.g. a
	// filename missing the required form code. The only user-facing hard
	// stop in the pipeline.
	KindRejected ErrorKind = "rejected_input"
	// KindUnreadable marks workbook containers that cannot be opened or
	// whose first sheet cannot be read.
	KindUnreadable ErrorKind = "unreadable_input"
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindInternal   ErrorKind = "internal"
)

// ReportError wraps errors with a kind.
type ReportError struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *ReportError) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewError creates a new report error.
func NewError(kind ErrorKind, msg string, err error) *ReportError {
	return &ReportError{Kind: kind, Msg: msg, Err: err}
}

// KindFromError maps an error to its report error kind.
func KindFromError(err error) ErrorKind {
	if err == nil {
		return ""
	}

	var reportErr *ReportError
	if errors.As(err, &reportErr) {
		return reportErr.Kind
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return KindInternal
	}

	return KindInternal
}

// AsGoError maps an error into a go-errors error.
func AsGoError(err error) *errorslib.Error {
	if err == nil {
		return nil
	}

	var ge *errorslib.Error
	if errors.As(err, &ge) {
		return ge
	}

	kind := KindInternal
	msg := err.Error()

	var reportErr *ReportError
	if errors.As(err, &reportErr) {
		kind = reportErr.Kind
		if reportErr.Msg != "" {
			msg = reportErr.Msg
		}
	}

	switch kind {
	case KindRejected:
		return errorslib.New(msg, errorslib.CategoryValidation).WithTextCode("rejected_input")
	case KindUnreadable:
		return errorslib.New(msg, errorslib.CategoryValidation).WithTextCode("unreadable_input")
	case KindValidation:
		return errorslib.New(msg, errorslib.CategoryValidation).WithTextCode("validation")
	case KindNotFound:
		return errorslib.New(msg, errorslib.CategoryNotFound).WithTextCode("not_found")
	default:
		return errorslib.New(msg, errorslib.CategoryInternal).WithTextCode("internal")
	}
}
