package workerpool

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid pool size")
	ErrPoolClosed   = errors.New("worker pool is closed")
	ErrNoReceivers  = errors.New("no live workers to receive job")
	ErrNilJob       = errors.New("nil job")
)

type CreationErrorKind int

const (
	InvalidInput CreationErrorKind = 1
)

// PoolCreationError is returned by Build when the pool cannot be constructed.
type PoolCreationError struct {
	Kind CreationErrorKind
	Size int
}

func (e *PoolCreationError) Error() string {
	return fmt.Sprintf("pool creation: invalid input %d: size must be positive", e.Size)
}

func (e *PoolCreationError) Is(target error) bool {
	return e.Kind == InvalidInput && target == ErrInvalidInput
}

// WorkerFault records a job that panicked and took its worker down.
type WorkerFault struct {
	WorkerID int
	Panic    any
	Stack    []byte
}

func (e *WorkerFault) Error() string {
	return fmt.Sprintf("worker %d terminated: job panic: %v", e.WorkerID, e.Panic)
}
