package httpparse

import (
	"errors"
	"testing"
)

func TestChunkSizeSimple(t *testing.T) {
	size, n, err := ChunkSize([]byte("1a\r\nrest"), DefaultLimits(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if size != 26 || n != 4 {
		t.Fatalf("got (%d, %d), want (26, 4)", size, n)
	}
}

func TestChunkSizeBareLF(t *testing.T) {
	size, n, err := ChunkSize([]byte("ff\nrest"), DefaultLimits(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if size != 0xff || n != 3 {
		t.Fatalf("got (%d, %d), want (255, 3)", size, n)
	}
}

func TestChunkSizeExtensions(t *testing.T) {
	var ext Extensions
	size, n, err := ChunkSize([]byte(`10 ; foo=bar ; baz="q\"x"`+"\r\nrest"), DefaultLimits(), &ext)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if size != 16 {
		t.Fatalf("got size %d, want 16", size)
	}
	if n != len(`10 ; foo=bar ; baz="q\"x"`+"\r\n") {
		t.Fatalf("got consumed %d, want %d", n, len(`10 ; foo=bar ; baz="q\"x"`+"\r\n"))
	}
	if ext.Len() != 2 {
		t.Fatalf("got %d extensions, want 2", ext.Len())
	}
	if v, ok := ext.Get("foo"); !ok || v != "bar" {
		t.Fatalf("got foo=%q (ok=%v), want bar", v, ok)
	}
	if v, ok := ext.Get("baz"); !ok || v != `q"x` {
		t.Fatalf(`got baz=%q (ok=%v), want q"x`, v, ok)
	}
}

func TestChunkSizeExtensionNoValue(t *testing.T) {
	var ext Extensions
	_, _, err := ChunkSize([]byte("5;foo\r\n"), DefaultLimits(), &ext)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, ok := ext.Get("foo"); !ok || v != "" {
		t.Fatalf("got foo=%q (ok=%v), want empty value", v, ok)
	}
}

func TestChunkSizeNeedsMore(t *testing.T) {
	_, _, err := ChunkSize([]byte("1a"), DefaultLimits(), nil)
	if !errors.Is(err, ErrAgain) {
		t.Fatalf("got %v, want ErrAgain", err)
	}
}

func TestChunkSizeExtensionPartialDoesNotCommit(t *testing.T) {
	var ext Extensions
	_, _, err := ChunkSize([]byte("5;foo=bar;baz"), DefaultLimits(), &ext)
	if !errors.Is(err, ErrAgain) {
		t.Fatalf("got %v, want ErrAgain", err)
	}
	if ext.Len() != 0 {
		t.Fatalf("ext was partially committed before CRLF: %d entries", ext.Len())
	}
}

func TestChunkSizeOverflow(t *testing.T) {
	_, _, err := ChunkSize([]byte("1ffffffff\r\n"), DefaultLimits(), nil)
	if err == nil {
		t.Fatal("expected a range error")
	}
	perr, ok := err.(*Error)
	if !ok || perr.Kind != KindRange {
		t.Fatalf("got %v, want KindRange", err)
	}
}

func TestChunkSizeCRNotFollowedByLF(t *testing.T) {
	_, _, err := ChunkSize([]byte("5\rx"), DefaultLimits(), nil)
	if err == nil {
		t.Fatal("expected an EOL error")
	}
	perr, ok := err.(*Error)
	if !ok || perr.Kind != KindEOL {
		t.Fatalf("got %v, want KindEOL", err)
	}
}
