package httpparse

// Scalar validators classify a complete bytestring in one pass. Each
// reports ErrAgain on an empty slice rather than success, so they compose
// with streaming callers that may hand over a zero-length scan window.

// Tchar reports whether s is a valid RFC 7230 token: 1*tchar, with ':'
// excluded since it is reserved as the header field-name terminator.
func Tchar(s []byte) error {
	if len(s) == 0 {
		return errAgain("tchar")
	}
	for _, c := range s {
		if tcharTable[c] <= 1 {
			return newErr(KindIllseq, "tchar", "invalid token byte")
		}
	}
	return nil
}

// Vchar reports whether s is a complete field-value: every byte must be
// field-content (VCHAR class 1). SP/HT and line terminators are rejected
// in the middle of a complete value — trim those before calling Vchar.
func Vchar(s []byte) error {
	if len(s) == 0 {
		return errAgain("vchar")
	}
	for _, c := range s {
		if vcharTable[c] != 1 {
			return newErr(KindIllseq, "vchar", "invalid field-content byte")
		}
	}
	return nil
}

// CookieValue validates an RFC 6265 cookie-value: either a DQUOTE-
// delimited run of cookie-octets, or a bare run of cookie-octets.
func CookieValue(s []byte) error {
	if len(s) == 0 {
		return errAgain("cookie_value")
	}
	if s[0] == '"' {
		if len(s) < 2 || s[len(s)-1] != '"' {
			return newErr(KindIllseq, "cookie_value", "unterminated quoted cookie-value")
		}
		s = s[1 : len(s)-1]
	}
	for _, c := range s {
		if cookieOctetTable[c] == 0 {
			return newErr(KindIllseq, "cookie_value", "invalid cookie-octet")
		}
	}
	return nil
}

// QuotedString validates that s is exactly one well-formed quoted-string
// — DQUOTE *( qdtext / quoted-pair ) DQUOTE — and returns the length the
// unquoted content would occupy. It reports ELEN if that length would
// exceed max, EILSEQ on an invalid byte, and EAGAIN if the closing quote
// has not yet arrived.
func QuotedString(s []byte, maxLen int) (int, error) {
	value, n, err := scanQuotedString(s, maxLen)
	if err != nil {
		return 0, err
	}
	if n != len(s) {
		return 0, newErr(KindIllseq, "quoted_string", "trailing bytes after closing DQUOTE")
	}
	return len(value), nil
}

// scanQuotedString scans one DQUOTE-delimited quoted-string starting at
// s[0] (which must be '"'), unescaping quoted-pairs as it goes. It
// returns the unescaped value, the number of bytes of s it occupies
// (including both DQUOTEs), and reports ELEN if the unescaped content
// would exceed maxLen, EILSEQ on an invalid byte, EAGAIN if the closing
// quote has not yet arrived.
func scanQuotedString(s []byte, maxLen int) (value string, consumed int, err error) {
	if len(s) == 0 {
		return "", 0, errAgain("quoted_string")
	}
	if s[0] != '"' {
		return "", 0, newErr(KindIllseq, "quoted_string", "missing opening DQUOTE")
	}
	bb := acquireScratchBuffer()
	defer releaseScratchBuffer(bb)

	i := 1
	for i < len(s) {
		c := s[i]
		if c == '"' {
			return string(bb.B), i + 1, nil
		}
		if c == '\\' {
			if i+1 >= len(s) {
				return "", 0, errAgain("quoted_string")
			}
			nc := s[i+1]
			// quoted-pair = "\" ( HT / SP / VCHAR / obs-text )
			if nc != '\t' && nc != ' ' && vcharTable[nc] != 1 {
				return "", 0, newErr(KindIllseq, "quoted_string", "invalid quoted-pair")
			}
			bb.B = append(bb.B, nc)
			if len(bb.B) > maxLen {
				return "", 0, newErr(KindLen, "quoted_string", "exceeds max length")
			}
			i += 2
			continue
		}
		if qdtextTable[c] == 0 {
			return "", 0, newErr(KindIllseq, "quoted_string", "invalid qdtext byte")
		}
		bb.B = append(bb.B, c)
		if len(bb.B) > maxLen {
			return "", 0, newErr(KindLen, "quoted_string", "exceeds max length")
		}
		i++
	}
	return "", 0, errAgain("quoted_string")
}
