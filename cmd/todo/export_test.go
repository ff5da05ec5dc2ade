package main

import (
	"bytes"
	"errors"
	"testing"

	"todo/internal/format"
)

type failingCloser struct {
	bytes.Buffer
	closeErr error
	closed   bool
}

func (f *failingCloser) Close() error {
	f.closed = true
	return f.closeErr
}

func TestWriteAndCloseReportsCloseError(t *testing.T) {
	closeErr := errors.New("disk full")
	wc := &failingCloser{closeErr: closeErr}

	err := writeAndClose(wc, format.JSONFormatter{}, []taskView{{Index: 1, Description: "A", Priority: 1}})
	if !errors.Is(err, closeErr) {
		t.Fatalf("expected close error, got %v", err)
	}
	if !wc.closed || wc.Len() == 0 {
		t.Fatalf("expected payload written and file closed, closed=%v len=%d", wc.closed, wc.Len())
	}
}

func TestWriteAndCloseSucceeds(t *testing.T) {
	wc := &failingCloser{}
	if err := writeAndClose(wc, format.YAMLFormatter{}, []taskView{{Index: 1, Description: "A", Priority: 1}}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !wc.closed {
		t.Fatal("expected file closed")
	}
}
