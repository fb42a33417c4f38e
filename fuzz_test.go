package httpparse

import "testing"

// FuzzRequest exercises Request against arbitrary input, checking only
// the contract every scanner in this package must honor: it must not
// panic, and a nil error must never report more bytes consumed than were
// given.
func FuzzRequest(f *testing.F) {
	seeds := []string{
		"GET / HTTP/1.1\r\nHost: x\r\n\r\n",
		"POST /a HTTP/1.0\r\n\r\n",
		"\r\n\r\nGET / HTTP/1.1\r\n\r\n",
		"",
		"GET",
		"GET / HTTP/9.9\r\n\r\n",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		var req Request
		hdr := NewHeader()
		n, err := Request(data, DefaultLimits(), &req, hdr)
		if err == nil && n > len(data) {
			t.Fatalf("Request reported consumed=%d > len(data)=%d", n, len(data))
		}
	})
}

// FuzzChunkSize does the same for ChunkSize, the scanner with the most
// intricate internal looping (chunk-extensions, quoted values).
func FuzzChunkSize(f *testing.F) {
	seeds := []string{
		"1a\r\n",
		"5;foo=bar\r\n",
		`10 ; foo=bar ; baz="q\"x"` + "\r\n",
		"",
		"ffffffff\r\n",
		"1ffffffff\r\n",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		var ext Extensions
		_, n, err := ChunkSize(data, DefaultLimits(), &ext)
		if err == nil && n > len(data) {
			t.Fatalf("ChunkSize reported consumed=%d > len(data)=%d", n, len(data))
		}
	})
}
