package httpparse

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorIsMatchesByKind(t *testing.T) {
	a := newErr(KindHdrNum, "op1", "detail1")
	b := newErr(KindHdrNum, "op2", "detail2")
	if !errors.Is(a, b) {
		t.Fatal("two *Error values with the same Kind should satisfy errors.Is")
	}
}

func TestErrorIsRejectsDifferentKind(t *testing.T) {
	a := newErr(KindHdrNum, "op", "x")
	b := newErr(KindStatus, "op", "x")
	if errors.Is(a, b) {
		t.Fatal("*Error values with different Kinds must not satisfy errors.Is")
	}
}

func TestErrAgainSentinel(t *testing.T) {
	err := errAgain("some_op")
	if !errors.Is(err, ErrAgain) {
		t.Fatalf("errAgain result does not satisfy errors.Is(err, ErrAgain): %v", err)
	}
}

func TestErrorMessageIncludesOpAndDetail(t *testing.T) {
	err := newErr(KindIllseq, "quoted_string", "invalid qdtext byte")
	msg := err.Error()
	if msg == "" {
		t.Fatal("empty error message")
	}
	if !strings.Contains(msg, "quoted_string") || !strings.Contains(msg, "invalid qdtext byte") {
		t.Fatalf("error message %q does not include op and detail", msg)
	}
}

func TestKindString(t *testing.T) {
	if KindAgain.String() != "eagain" {
		t.Fatalf("KindAgain.String() = %q, want eagain", KindAgain.String())
	}
	if Kind(99).String() != "unknown" {
		t.Fatalf("unrecognized Kind should stringify to \"unknown\"")
	}
}
