/*
Package httpparse provides an incremental, allocation-averse HTTP/1.x
message parser.

It decodes request-lines, status-lines, header blocks, chunk-size frame
boundaries, and the common header syntax fragments (tokens, quoted
strings, parameter lists, cookie octets) directly out of a caller-owned
byte buffer. Callers drive the parser the way a stream reader is driven:
feed it a buffer, and either get back the number of bytes consumed or an
error indicating more bytes are required.

httpparse provides the following properties:

    * Zero-copy classification. Byte tables generated ahead of time into
      constant strings (tables.go) drive every scan; no regular
      expressions, no per-call table construction.
    * No I/O. The package never reads a socket, never blocks, and never
      retains a reference to the input buffer past the call that produced
      a result.
    * EAGAIN is not an error. errors.Is(err, ErrAgain) distinguishes
      "need more bytes, try again with a longer buffer" from every
      terminal parse failure.
    * Transactional message parsing. Request and Response only write to
      the caller's output once an entire message is known parseable;
      an EAGAIN return leaves the caller's output untouched.

httpparse deliberately does not do: socket I/O, connection management,
TLS, routing, body decoding beyond chunk framing, URI normalization, or
message serialization. Those are the caller's job.
*/
package httpparse
