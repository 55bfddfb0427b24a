package examplemodule

import (
	"context"

	"github.com/wavemaster/wavemod/hostapi"
)

// handlerFunc is the shared handler signature: content plus optional host
// context in, an operation result (with at least an "output" key) or an
// error out.
type handlerFunc func(ctx context.Context, c Content, hostCtx hostapi.Context) (map[string]any, error)

// handler is a dispatchable operation. Implementations are either plain
// synchronous calls or asynchronous tasks that the dispatcher drives to
// completion before Process returns.
type handler interface {
	run(ctx context.Context, c Content, hostCtx hostapi.Context) (map[string]any, error)
}

// syncHandler runs on the caller's goroutine.
type syncHandler handlerFunc

func (f syncHandler) run(ctx context.Context, c Content, hostCtx hostapi.Context) (map[string]any, error) {
	return f(ctx, c, hostCtx)
}

// asyncHandler runs on its own goroutine; run blocks until the task finishes
// or ctx is cancelled. This is the synchronous-with-respect-to-the-caller
// replacement for the original host's nested event loop: no partial results
// are exposed, and calling Process from inside other concurrent machinery
// cannot deadlock it.
type asyncHandler handlerFunc

type asyncResult struct {
	result map[string]any
	err    error
}

func (f asyncHandler) run(ctx context.Context, c Content, hostCtx hostapi.Context) (map[string]any, error) {
	done := make(chan asyncResult, 1)
	go func() {
		result, err := f(ctx, c, hostCtx)
		done <- asyncResult{result: result, err: err}
	}()

	select {
	case r := <-done:
		return r.result, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
