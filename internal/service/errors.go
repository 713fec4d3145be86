package service

import (
	"errors"
	"fmt"
)

var (
	// ErrStatusTimeout is recorded when a status check does not settle
	// before the staleness timer fires.
	ErrStatusTimeout = errors.New("status check timed out")

	ErrMalformedStatus   = errors.New("malformed entitlement status payload")
	ErrMalformedProducts = errors.New("malformed installed products payload")

	ErrAlreadyInitialized = errors.New("sync client already initialized")
	ErrClosed             = errors.New("sync client closed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Registration workflow steps reported by [RegistrationError].
const (
	StepValidate = "validate"
	StepStart    = "start"
	StepRegister = "register"
	StepStop     = "stop"
	StepAttach   = "attach"
)

// RegistrationError names the registration step that failed. Steps after
// it were not attempted and nothing before it is rolled back.
type RegistrationError struct {
	Step string
	Err  error
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("registration failed at %s: %v", e.Step, e.Err)
}

func (e *RegistrationError) Unwrap() error {
	return e.Err
}
