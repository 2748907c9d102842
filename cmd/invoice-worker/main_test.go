package main

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestPollLoop_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var calls int32
	var missingDeadline int32
	done := make(chan struct{})
	go func() {
		pollLoop(ctx, time.Millisecond, 50*time.Millisecond, func(batchCtx context.Context) {
			if _, ok := batchCtx.Deadline(); !ok {
				atomic.AddInt32(&missingDeadline, 1)
			}
			atomic.AddInt32(&calls, 1)
		})
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pollLoop did not stop after cancellation")
	}
	if atomic.LoadInt32(&calls) == 0 {
		t.Fatal("process never invoked")
	}
	if atomic.LoadInt32(&missingDeadline) != 0 {
		t.Fatal("batch context carried no deadline")
	}
}
