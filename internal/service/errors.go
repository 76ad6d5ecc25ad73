package service

import (
	"errors"
	"fmt"
)

var (
	ErrNoWords      = errors.New("no words to practice")
	ErrNoSession    = errors.New("no pending question")
	ErrNoStats      = errors.New("no stats yet")
	ErrNoUserWords  = errors.New("user has no words")
	ErrBadFormat    = errors.New("expected format: russian - english")
	ErrWordExists   = errors.New("word already exists")
	ErrWordNotFound = errors.New("word not found")
)

// PersistenceError reports a failed storage operation.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func persistenceErr(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
