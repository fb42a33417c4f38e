package httpparse

import "github.com/valyala/bytebufferpool"

var scratchBufferPool bytebufferpool.Pool

// acquireScratchBuffer returns an empty pooled byte buffer used to
// accumulate unescaped quoted-string content during a single scan call.
// Release it with releaseScratchBuffer once the scan is done with it —
// its backing array must not be read afterward.
func acquireScratchBuffer() *bytebufferpool.ByteBuffer {
	return scratchBufferPool.Get()
}

// releaseScratchBuffer returns b to the pool for reuse by a later scan.
func releaseScratchBuffer(b *bytebufferpool.ByteBuffer) {
	scratchBufferPool.Put(b)
}
