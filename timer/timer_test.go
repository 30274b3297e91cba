/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package timer

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestFiresAfterTimeout(t *testing.T) {
	var fired int32
	tm := New(20*time.Millisecond, func() { atomic.StoreInt32(&fired, 1) })
	tm.Start()
	time.Sleep(60 * time.Millisecond)
	if atomic.LoadInt32(&fired) != 1 {
		t.Fatal("expected callback to fire")
	}
}

func TestResetExtendsDeadline(t *testing.T) {
	var fired int32
	tm := New(40*time.Millisecond, func() { atomic.StoreInt32(&fired, 1) })
	tm.Start()
	time.Sleep(20 * time.Millisecond)
	tm.Reset()
	time.Sleep(30 * time.Millisecond)
	if atomic.LoadInt32(&fired) != 0 {
		t.Fatal("callback fired despite reset")
	}
	time.Sleep(30 * time.Millisecond)
	if atomic.LoadInt32(&fired) != 1 {
		t.Fatal("expected callback to eventually fire")
	}
}

func TestStopPreventsCallback(t *testing.T) {
	var fired int32
	tm := New(10*time.Millisecond, func() { atomic.StoreInt32(&fired, 1) })
	tm.Start()
	tm.Stop()
	time.Sleep(30 * time.Millisecond)
	if atomic.LoadInt32(&fired) != 0 {
		t.Fatal("callback fired after stop")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	tm := New(10*time.Millisecond, func() {})
	tm.Start()
	tm.Stop()
	tm.Stop()
}
