package queuectl

import (
	"sync/atomic"
	"time"

	"github.com/Sucharan30/FLAM-Backend-Assignment-queuectl/internal"
)

const (
	stopped = iota
	started
)

// lcBase is a reusable start/stop guard shared by Worker and
// CleanWorker. It enforces a strict "Start at most once, Stop at most
// once" lifecycle.
type lcBase struct {
	state atomic.Int32
}

func (lb *lcBase) tryStart() error {
	if !lb.state.CompareAndSwap(stopped, started) {
		return ErrDoubleStarted
	}
	return nil
}

func (lb *lcBase) tryStop(timeout time.Duration, df internal.DoneFunc) error {
	if !lb.state.CompareAndSwap(started, stopped) {
		return ErrDoubleStopped
	}
	done := df()
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-done:
		return nil
	case <-timer.C:
		return ErrStopTimeout
	}
}
