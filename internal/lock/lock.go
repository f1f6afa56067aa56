// Package lock provides file-based locking for commands that write variant files.
package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrHeld indicates another process holds the lock.
var ErrHeld = errors.New("lock already held")

// Lock is an advisory lock on a sibling file of the protected path.
type Lock struct {
	path string
	file *os.File
}

// New creates a lock guarding target. The lock file is target + ".lock".
func New(target string) *Lock {
	return &Lock{path: target + ".lock"}
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.path
}

// Acquire takes the lock without blocking. It returns ErrHeld when another
// process holds it.
func (l *Lock) Acquire() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("create lock directory: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}

	if err := tryLock(f); err != nil {
		f.Close()
		return err
	}

	// PID for whoever finds a stale lock file.
	f.Truncate(0)
	f.Seek(0, 0)
	fmt.Fprintf(f, "%d\n", os.Getpid())

	l.file = f
	return nil
}

// Release releases the lock and removes the lock file.
func (l *Lock) Release() error {
	if l.file == nil {
		return nil
	}

	err := unlock(l.file)
	l.file.Close()
	os.Remove(l.path)
	l.file = nil

	if err != nil {
		return fmt.Errorf("release lock: %w", err)
	}
	return nil
}

// WithLock runs fn while holding the lock for target.
func WithLock(target string, fn func() error) error {
	l := New(target)
	if err := l.Acquire(); err != nil {
		return err
	}
	defer l.Release()

	return fn()
}
