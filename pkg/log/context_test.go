package log

import (
	"context"
	"testing"
)

func TestRequestIDFromContext(t *testing.T) {
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("empty context: got %q", got)
	}
	if got := RequestIDFromContext(nil); got != "" {
		t.Errorf("nil context: got %q", got)
	}

	ctx := WithRequestID(context.Background(), "first")
	ctx = WithRequestID(ctx, "second")
	if got := RequestIDFromContext(ctx); got != "second" {
		t.Errorf("got %q, want second", got)
	}
}

func TestWithFields_MergesAndKeepsRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req")
	ctx = WithFields(ctx, "a", 1, "b", 2)
	ctx = WithFields(ctx, "b", 3)

	fields := valuesFrom(ctx).fields
	if fields["a"] != 1 || fields["b"] != 3 {
		t.Errorf("fields = %v", fields)
	}
	if RequestIDFromContext(ctx) != "req" {
		t.Error("request id lost after WithFields")
	}
}

func TestWithFields_DoesNotMutateParent(t *testing.T) {
	parent := WithFields(context.Background(), "a", 1)
	_ = WithFields(parent, "a", 2)

	if valuesFrom(parent).fields["a"] != 1 {
		t.Error("parent context fields were mutated")
	}
}
