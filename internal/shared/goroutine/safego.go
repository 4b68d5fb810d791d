// Package goroutine provides utilities for safely launching goroutines with panic recovery.
package goroutine

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

// SafeGo launches a goroutine with panic recovery. If the goroutine panics,
// the panic is caught and logged with stack trace instead of crashing the process.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer recoverPanic(log, name)
		fn()
	}()
}

func recoverPanic(log logger.Interface, name string) {
	if r := recover(); r != nil {
		log.Errorw("goroutine panicked",
			"goroutine", name,
			"panic", fmt.Sprintf("%v", r),
			"stack", string(debug.Stack()),
		)
	}
}

// Tracker launches recovered goroutines and lets shutdown wait for the ones
// still running.
type Tracker struct {
	log logger.Interface
	wg  sync.WaitGroup
}

func NewTracker(log logger.Interface) *Tracker {
	return &Tracker{log: log}
}

// Go runs fn in a recovered goroutine counted by Wait.
func (t *Tracker) Go(name string, fn func()) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		defer recoverPanic(t.log, name)
		fn()
	}()
}

// Wait blocks until every tracked goroutine has returned or ctx is done.
func (t *Tracker) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		t.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
