package logs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Warn("test", "hello", "world!")
		if !strings.Contains(buf.String(), "hello=world!") {
			t.Fatalf("got %q", buf.String())
		}
	})
}

func TestToJournalKey(t *testing.T) {
	if key := toJournalKey("logs.span-id"); key != "LOGS_SPAN_ID" {
		t.Fatalf("got %s", key)
	}
}

func TestWrapSpan(t *testing.T) {
	base := errors.New("foo")
	if err := WrapSpan(context.Background(), base); err != base {
		t.Fatalf("got %v", err)
	}
	if err := WrapSpan(context.Background(), nil); err != nil {
		t.Fatalf("got %v", err)
	}
	ctx := context.WithValue(context.Background(), SpanKey, Span("abc"))
	err := WrapSpan(ctx, base)
	if !errors.Is(err, base) {
		t.Fatal()
	}
	if !strings.Contains(err.Error(), "span: abc") {
		t.Fatalf("got %v", err)
	}
}

func TestHandlerWithAttrs(t *testing.T) {
	buf := new(bytes.Buffer)
	h := &Handler{
		Handler: slog.NewTextHandler(buf, nil),
	}
	logger := slog.New(h).With("program", "x.bf")
	ctx := context.WithValue(context.Background(), SpanKey, Span("s1"))
	logger.InfoContext(ctx, "run")
	if !strings.Contains(buf.String(), "program=x.bf") {
		t.Fatalf("got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "logs.span=s1") {
		t.Fatalf("got %q", buf.String())
	}
}
