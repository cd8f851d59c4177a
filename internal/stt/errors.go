package stt

import (
	"errors"
	"fmt"
)

// ErrNoSpeech indicates the listen window elapsed without detecting any
// speech. Produced by the capture layer; retried within the voice budget.
var ErrNoSpeech = errors.New("no speech detected")

// ErrUnintelligible indicates audio was captured but the service could not
// produce a transcript for it. Retried within the voice budget.
var ErrUnintelligible = errors.New("could not understand audio")

// ServiceError is a transport, availability, or protocol failure from the
// recognition backend, as opposed to a recognition failure. Callers abandon
// voice input for the current question when they see one.
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("speech service: %s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }
