package singleinstance

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofrs/flock"
)

// ErrAlreadyRunning is returned when another resident holds the lock.
var ErrAlreadyRunning = errors.New("auto-vat is already running")

// Lock marks this process as the resident instance until Release.
type Lock struct {
	fl *flock.Flock
}

// Acquire takes the lock file at path without blocking.
func Acquire(path string) (*Lock, error) {
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	if !ok {
		log.Printf("Lock %s held by another process", path)
		return nil, ErrAlreadyRunning
	}
	log.Printf("Acquired single-instance lock %s", path)
	return &Lock{fl: fl}, nil
}

// Release drops the lock; calling it on a nil Lock is a no-op.
func (l *Lock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}
