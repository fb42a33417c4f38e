package httpparse

import "bytes"

// Header is a caller-owned ordered multimap: keys are case-folded on
// insertion, a key's first-seen ordinal position is preserved, and both
// ordinal and keyed access are exposed.
//
// Header instances are not safe for concurrent use without external
// synchronization.
type Header struct {
	entries []HeaderEntry
	index   map[string]int // lowercased key -> index into entries
}

// HeaderEntry is one logical header field: its first-seen ordinal, the
// original-case key bytes from the first occurrence, and the ordered
// sequence of values contributed by every occurrence of that key.
type HeaderEntry struct {
	Idx    int
	Key    string
	Values []string
}

// NewHeader returns an empty Header ready for reuse across Reset calls.
func NewHeader() *Header {
	return &Header{index: make(map[string]int, 16)}
}

// Reset clears h for reuse, keeping its backing storage.
func (h *Header) Reset() {
	h.entries = h.entries[:0]
	for k := range h.index {
		delete(h.index, k)
	}
}

// Len returns the number of distinct keys stored in h.
func (h *Header) Len() int { return len(h.entries) }

// At returns the entry at ordinal position i.
func (h *Header) At(i int) HeaderEntry { return h.entries[i] }

// Get returns the value sequence for key (case-insensitive lookup), or
// nil if key was never seen.
func (h *Header) Get(key string) []string {
	lk := lowerASCII(key)
	i, ok := h.index[lk]
	if !ok {
		return nil
	}
	return h.entries[i].Values
}

// First returns the first value for key, or "" if absent.
func (h *Header) First(key string) string {
	v := h.Get(key)
	if len(v) == 0 {
		return ""
	}
	return v[0]
}

// GetBytes is the []byte-keyed counterpart to Get, for callers holding a
// key as a slice into their own scratch buffer. It does not retain key.
func (h *Header) GetBytes(key []byte) []string {
	return h.Get(b2s(key))
}

// FirstBytes is the []byte-keyed counterpart to First.
func (h *Header) FirstBytes(key []byte) string {
	return h.First(b2s(key))
}

func (h *Header) add(origKey string, lowerKey string, value string) {
	if i, ok := h.index[lowerKey]; ok {
		h.entries[i].Values = append(h.entries[i].Values, value)
		return
	}
	h.index[lowerKey] = len(h.entries)
	h.entries = append(h.entries, HeaderEntry{
		Idx:    len(h.entries),
		Key:    origKey,
		Values: []string{value},
	})
}

func lowerASCII(s string) string {
	b := []byte(s)
	changed := false
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(b)
}

// parseHkey scans a header field-name up to and including its
// terminating ':'. The returned key bytes are the original-case slice
// from buf; lowercasing happens separately when inserting into Header.
// This never mutates the caller's input buffer in place.
func parseHkey(buf []byte, maxHdrLen int) (key []byte, consumed int, err error) {
	i := 0
	for i < len(buf) {
		c := buf[i]
		if c == ':' {
			if i == 0 {
				return nil, 0, newErr(KindHdrName, "parse_hkey", "empty field-name")
			}
			return buf[:i], i + 1, nil
		}
		if tcharTable[c] <= 1 {
			return nil, 0, newErr(KindHdrName, "parse_hkey", "invalid field-name byte")
		}
		i++
		if i > maxHdrLen {
			return nil, 0, newErr(KindHdrLen, "parse_hkey", "field-name too long")
		}
	}
	return nil, 0, errAgain("parse_hkey")
}

// parseHval scans a header field-value ending at LF or CRLF (a CR must be
// followed by LF), trimming trailing SP/HT. An empty trimmed value signals "skip this
// header" via a zero-length, non-nil return.
func parseHval(buf []byte, maxHdrLen int) (val []byte, consumed int, err error) {
	i := 0
	for i < len(buf) {
		c := buf[i]
		switch vcharTable[c] {
		case 1, 2:
			i++
			if i > maxHdrLen {
				return nil, 0, newErr(KindHdrLen, "parse_hval", "field-value too long")
			}
		case 3:
			raw := buf[:i]
			raw = bytes.TrimRight(raw, " \t")
			if c == '\n' {
				return raw, i + 1, nil
			}
			// c == '\r': requires a following LF.
			if i+1 >= len(buf) {
				return nil, 0, errAgain("parse_hval")
			}
			if buf[i+1] != '\n' {
				return nil, 0, newErr(KindEOL, "parse_hval", "CR not followed by LF")
			}
			return raw, i + 2, nil
		default:
			return nil, 0, newErr(KindHdrVal, "parse_hval", "invalid field-value byte")
		}
	}
	return nil, 0, errAgain("parse_hval")
}

// isBlankLine reports whether buf begins with a header-block terminator
// (a bare LF, or CRLF) and returns the number of bytes it occupies.
func isBlankLine(buf []byte) (n int, ok bool) {
	if len(buf) == 0 {
		return 0, false
	}
	if buf[0] == '\n' {
		return 1, true
	}
	if buf[0] == '\r' {
		if len(buf) < 2 {
			return 0, false
		}
		if buf[1] == '\n' {
			return 2, true
		}
	}
	return 0, false
}

// ParseHeaderBlock consumes a sequence of header lines terminated by a
// blank line, collecting them into an ordered multimap that replaces
// hdr's previous contents once the whole block has parsed. It is exposed
// standalone (not only via Request/Response) so callers can reuse it for
// chunked-message trailers.
//
// If any line in the block fails, no partial results are committed: hdr
// is left untouched and the error is returned.
func ParseHeaderBlock(buf []byte, lim Limits, hdr *Header) (int, error) {
	scratch := NewHeader()
	n, err := parseHeaderBlockInto(buf, lim, scratch)
	if err != nil {
		return 0, err
	}
	if hdr != nil {
		*hdr = *scratch
	}
	return n, nil
}

func parseHeaderBlockInto(buf []byte, lim Limits, hdr *Header) (int, error) {
	pos := 0
	count := 0
	for {
		if n, ok := isBlankLine(buf[pos:]); ok {
			return pos + n, nil
		}
		if len(buf) == pos+1 && buf[pos] == '\r' {
			// A CR whose LF has not arrived yet may still end the block.
			return 0, errAgain("parse_header")
		}

		key, kn, err := parseHkey(buf[pos:], lim.MaxHdrLen)
		if err != nil {
			return 0, err
		}
		pos += kn

		wn, err := skipWS(buf[pos:], lim.MaxHdrLen)
		if err != nil {
			return 0, err
		}
		pos += wn

		val, vn, err := parseHval(buf[pos:], lim.MaxHdrLen)
		if err != nil {
			return 0, err
		}
		pos += vn

		if len(val) == 0 {
			continue
		}

		count++
		if count > lim.MaxHdrNum {
			return 0, newErr(KindHdrNum, "parse_header", "too many headers")
		}

		origKey := string(key)
		lowerKey := lowerASCII(origKey)
		hdr.add(origKey, lowerKey, string(val))
	}
}
