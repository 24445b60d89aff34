package seqs_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"seqkit/seqs"
)

type readError struct {
	op string
}

func (e *readError) Error() string { return e.op + " failed" }

func TestWrapResourceError(t *testing.T) {
	if seqs.WrapResourceError(nil) != nil {
		t.Error("nil cause wrapped")
	}

	cause := &readError{op: "advance"}
	err := seqs.WrapResourceError(cause)
	if got, want := err.Error(), "*seqs_test.readError: advance failed"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not kept")
	}

	var re *seqs.ResourceError
	if !errors.As(err, &re) {
		t.Fatal("not a *ResourceError")
	}
	again := seqs.WrapResourceError(fmt.Errorf("reading: %w", err))
	if _, ok := again.(*seqs.ResourceError); !ok {
		t.Errorf("an error wrapping a resource error came back as %T", again)
	}
	if !errors.Is(again, cause) {
		t.Error("wrapping twice lost the cause")
	}
	if seqs.WrapResourceError(err) != err {
		t.Error("a resource error was wrapped again")
	}
}

func TestNewResourceError(t *testing.T) {
	err := seqs.NewResourceError("listing rows", fs.ErrClosed)
	if err.Error() != "listing rows" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, fs.ErrClosed) {
		t.Error("cause not kept")
	}
}
