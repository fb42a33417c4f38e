package httpparse

// Primitive scanners advance through a bounded prefix of buf and report
// the number of bytes consumed on success. They never allocate beyond
// values copied into a caller-owned output.

var methods = [][]byte{
	[]byte("GET"), []byte("HEAD"), []byte("POST"), []byte("PUT"),
	[]byte("DELETE"), []byte("OPTIONS"), []byte("TRACE"), []byte("CONNECT"),
}

// parseMethod reads up to 7 bytes of method token plus a terminating SP,
// within an 8-byte window, matching exactly one of the recognized
// methods. Matching is case-sensitive.
func parseMethod(buf []byte) (method []byte, consumed int, err error) {
	const window = 8
	if len(buf) < window {
		// Still need a full window unless a shorter method's SP already
		// appeared within what we have.
		for _, m := range methods {
			n := len(m)
			if n < len(buf) && buf[n] == ' ' && string(buf[:n]) == string(m) {
				return m, n + 1, nil
			}
		}
		return nil, 0, errAgain("parse_method")
	}
	for _, m := range methods {
		n := len(m)
		if buf[n] == ' ' && string(buf[:n]) == string(m) {
			return m, n + 1, nil
		}
	}
	return nil, 0, newErr(KindMethod, "parse_method", "unrecognized method")
}

var (
	version10 = []byte("HTTP/1.0")
	version11 = []byte("HTTP/1.1")
)

// parseVersion requires exactly 8 bytes matching HTTP/1.0 or HTTP/1.1,
// returning the stable integer representation: 10 or 11.
func parseVersion(buf []byte) (version int, consumed int, err error) {
	const verLen = 8
	if len(buf) < verLen {
		return 0, 0, errAgain("parse_version")
	}
	b := buf[:verLen]
	switch {
	case string(b) == string(version11):
		return 11, verLen, nil
	case string(b) == string(version10):
		return 10, verLen, nil
	default:
		return 0, 0, newErr(KindVersion, "parse_version", "unsupported HTTP version")
	}
}

// parseStatus requires at least 4 bytes with a SP at position 3; the
// first three bytes must be ASCII digits with the first in [1..5].
func parseStatus(buf []byte) (status int, consumed int, err error) {
	if len(buf) < 4 {
		return 0, 0, errAgain("parse_status")
	}
	d0, d1, d2 := buf[0], buf[1], buf[2]
	if d0 < '1' || d0 > '5' {
		return 0, 0, newErr(KindStatus, "parse_status", "status code first digit out of range")
	}
	if d1 < '0' || d1 > '9' || d2 < '0' || d2 > '9' {
		return 0, 0, newErr(KindStatus, "parse_status", "non-digit status byte")
	}
	if buf[3] != ' ' {
		return 0, 0, newErr(KindStatus, "parse_status", "missing SP after status code")
	}
	status = int(d0-'0')*100 + int(d1-'0')*10 + int(d2-'0')
	return status, 4, nil
}

// parseReason scans a reason-phrase up to CR or LF. Intermediate bytes
// must be VCHAR class 1 or 2. Consumes through the line terminator.
func parseReason(buf []byte, maxLen int) (reason []byte, consumed int, err error) {
	i := 0
	for i < len(buf) {
		c := buf[i]
		switch vcharTable[c] {
		case 1, 2:
			i++
			if i > maxLen {
				return nil, 0, newErr(KindLen, "parse_reason", "reason-phrase too long")
			}
		case 3:
			reason = buf[:i]
			if c == '\n' {
				return reason, i + 1, nil
			}
			// c == '\r'
			if i+1 >= len(buf) {
				return nil, 0, errAgain("parse_reason")
			}
			if buf[i+1] != '\n' {
				return nil, 0, newErr(KindEOL, "parse_reason", "CR not followed by LF")
			}
			return reason, i + 2, nil
		default:
			return nil, 0, newErr(KindIllseq, "parse_reason", "invalid reason-phrase byte")
		}
	}
	return nil, 0, errAgain("parse_reason")
}

// skipWS advances past SP and HT, reporting ELEN if doing so would pass
// maxLen bytes examined.
func skipWS(buf []byte, maxLen int) (consumed int, err error) {
	i := 0
	for i < len(buf) && (buf[i] == ' ' || buf[i] == '\t') {
		i++
		if i > maxLen {
			return 0, newErr(KindLen, "skip_ws", "whitespace run too long")
		}
	}
	return i, nil
}

// SkipWS is the exported form of skipWS, reused by higher-level callers
// composing chunk-extension or parameter scanners of their own.
func SkipWS(buf []byte, maxLen int) (int, error) { return skipWS(buf, maxLen) }

const maxHexDigits = 8

// hex2size reads 1-8 hex digits from buf, accumulating into an unsigned
// value. A 9th hex digit reports ERANGE. Stops at the first non-hex byte.
func hex2size(buf []byte) (value uint64, consumed int, err error) {
	if len(buf) == 0 {
		return 0, 0, errAgain("hex2size")
	}
	i := 0
	for i < len(buf) {
		d := hexTable[buf[i]]
		if d == 0 {
			break
		}
		if i == maxHexDigits {
			return 0, 0, newErr(KindRange, "hex2size", "too many hex digits")
		}
		value = value<<4 | uint64(d-1)
		i++
	}
	if i == 0 {
		return 0, 0, errAgain("hex2size")
	}
	return value, i, nil
}
