package errors

import (
	stderrors "errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// ErrorType classifies a failure surfaced to the operator.
type ErrorType string

const (
	ErrTypeMissingInput      ErrorType = "MISSING_INPUT"
	ErrTypeInvalidFeed       ErrorType = "INVALID_FEED"
	ErrTypeUnresolvedCompany ErrorType = "UNRESOLVED_COMPANY"
	ErrTypeUnresolvableLink  ErrorType = "UNRESOLVABLE_LINK"
	ErrTypeStorage           ErrorType = "STORAGE"
)

// DomainError is a typed failure carrying the stack of the point of detection.
type DomainError struct {
	Type    ErrorType
	Message string
	Err     error
	Stack   []byte
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func (e *DomainError) StackTrace() []byte {
	return e.Stack
}

func New(errType ErrorType, message string, err error) *DomainError {
	var stack []byte
	if err != nil {
		if stackErr, ok := err.(*goerrors.Error); ok {
			stack = stackErr.Stack()
		} else {
			stack = goerrors.Wrap(err, 2).Stack()
		}
	} else {
		stack = goerrors.New(message).Stack()
	}

	return &DomainError{
		Type:    errType,
		Message: message,
		Err:     err,
		Stack:   stack,
	}
}

func MissingInput(message string, err error) *DomainError {
	return New(ErrTypeMissingInput, message, err)
}

func InvalidFeed(message string, err error) *DomainError {
	return New(ErrTypeInvalidFeed, message, err)
}

func UnresolvedCompany(message string, err error) *DomainError {
	return New(ErrTypeUnresolvedCompany, message, err)
}

func UnresolvableLink(message string, err error) *DomainError {
	return New(ErrTypeUnresolvableLink, message, err)
}

func Storage(message string, err error) *DomainError {
	return New(ErrTypeStorage, message, err)
}

// Is reports whether any error in err's chain is a DomainError of the given type.
func Is(err error, errType ErrorType) bool {
	var de *DomainError
	if stderrors.As(err, &de) {
		return de.Type == errType
	}
	return false
}
