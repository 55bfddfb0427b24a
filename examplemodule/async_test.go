package examplemodule

import (
	"context"
	"testing"

	"github.com/wavemaster/wavemod/hostapi"
)

func TestSyncHandlerRunsInline(t *testing.T) {
	h := syncHandler(func(_ context.Context, c Content, _ hostapi.Context) (map[string]any, error) {
		return map[string]any{"output": c.Raw}, nil
	})
	result, err := h.run(context.Background(), Content{Raw: "hello"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result["output"] != "hello" {
		t.Errorf("expected output hello, got %v", result["output"])
	}
}

func TestAsyncHandlerDrivenToCompletion(t *testing.T) {
	h := asyncHandler(func(_ context.Context, _ Content, _ hostapi.Context) (map[string]any, error) {
		return map[string]any{"output": "done"}, nil
	})
	result, err := h.run(context.Background(), Content{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result["output"] != "done" {
		t.Errorf("expected output done, got %v", result["output"])
	}
}

func TestAsyncHandlerHonorsCancellation(t *testing.T) {
	block := make(chan struct{})
	t.Cleanup(func() { close(block) })

	h := asyncHandler(func(_ context.Context, _ Content, _ hostapi.Context) (map[string]any, error) {
		<-block
		return map[string]any{"output": "late"}, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.run(ctx, Content{}, nil)
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
