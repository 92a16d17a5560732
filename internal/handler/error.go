package handler

import "fmt"

const (
	CodeInvalidRequest = "E101"
	CodeInternal       = "E102"
)

// CommandError is what the command reports for input it refuses and for
// failures to assemble the application.
type CommandError struct {
	Code    string
	Message string

	err error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("error code: %s, message: %s", e.Code, e.Message)
}

func (e *CommandError) Unwrap() error {
	return e.err
}

func NewRequestError(err error) error {
	return &CommandError{
		Code:    CodeInvalidRequest,
		Message: err.Error(),
		err:     err,
	}
}

func NewInternalError(err error) error {
	return &CommandError{
		Code:    CodeInternal,
		Message: err.Error(),
		err:     err,
	}
}
