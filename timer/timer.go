/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package timer implements a resettable, single-shot cooperative
// timeout used to drive the session's keep-alive watchdog.
package timer

import (
	"sync"
	"time"
)

// Timer fires its callback exactly once, timeout after the most recent
// Start or Reset, unless Stop is called first. Stop is idempotent and
// safe to call after the callback has already fired.
type Timer struct {
	mu       sync.Mutex
	timeout  time.Duration
	callback func()
	t        *time.Timer
	started  bool
}

// New creates a Timer with the given timeout and callback. The timer
// does not run until Start is called.
func New(timeout time.Duration, callback func()) *Timer {
	return &Timer{timeout: timeout, callback: callback}
}

// Start begins the countdown. It is a no-op if the timer is already
// running.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started {
		return
	}
	t.started = true
	t.t = time.AfterFunc(t.timeout, t.callback)
}

// Reset extends the deadline by timeout from now, starting the timer if
// it was not already running.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.started {
		t.started = true
		t.t = time.AfterFunc(t.timeout, t.callback)
		return
	}
	t.t.Reset(t.timeout)
}

// Stop cancels the timer. The callback will not fire if it hasn't
// already. Safe to call multiple times, or after expiry.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.t != nil {
		t.t.Stop()
	}
	t.started = false
}
