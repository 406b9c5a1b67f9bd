package plan

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyAssigned  = errors.New("plan: employee is already assigned to tender")
	ErrAmbiguousQuery   = errors.New("plan: individual and assignable plans requested together")
	ErrEmployeeNotFound = errors.New("plan: employee not found")
	ErrTenderNotFound   = errors.New("plan: tender not found")
	ErrInvalidInput     = errors.New("plan: invalid input")
)

// PersistenceFailure - хранилище не смогло выполнить операцию назначения.
type PersistenceFailure struct {
	TenderID int
	Err      error
}

func (e *PersistenceFailure) Error() string {
	return fmt.Sprintf("plan: persistence failure for tender %d: %v", e.TenderID, e.Err)
}

func (e *PersistenceFailure) Unwrap() error {
	return e.Err
}
