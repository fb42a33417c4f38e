package httpparse

// Limits bounds the scalars this package scans. All fields are plain and
// copied by value — there is no package-level mutable configuration.
type Limits struct {
	// MaxMsgLen bounds URI length (request) and reason-phrase length
	// (response).
	MaxMsgLen int
	// MaxHdrLen bounds the field-name and the field-value of each header
	// line. Each is checked against it separately, so a whole line
	// (name + value) may be longer than MaxHdrLen.
	MaxHdrLen int
	// MaxHdrNum bounds the number of headers in one block.
	MaxHdrNum int
	// MaxLen bounds each parsed scalar in Parameters, QuotedString, and
	// chunk-extension parsing.
	MaxLen int
}

// DefaultLimits returns conservative defaults: 2048 for message scalars,
// 4108 for header lines (enough to admit a full RFC 6265 Set-Cookie
// header), 255 headers per block, 4096 for param and chunk-extension
// scalars.
func DefaultLimits() Limits {
	return Limits{
		MaxMsgLen: 2048,
		MaxHdrLen: 4108,
		MaxHdrNum: 255,
		MaxLen:    4096,
	}
}

// Option mutates a Limits value. Functional options match the style the
// teacher uses for its Server/Client construction, rather than
// introducing a config-file loader this package has no use for.
type Option func(*Limits)

// WithMaxMsgLen overrides MaxMsgLen.
func WithMaxMsgLen(n int) Option { return func(l *Limits) { l.MaxMsgLen = n } }

// WithMaxHdrLen overrides MaxHdrLen.
func WithMaxHdrLen(n int) Option { return func(l *Limits) { l.MaxHdrLen = n } }

// WithMaxHdrNum overrides MaxHdrNum.
func WithMaxHdrNum(n int) Option { return func(l *Limits) { l.MaxHdrNum = n } }

// WithMaxLen overrides MaxLen.
func WithMaxLen(n int) Option { return func(l *Limits) { l.MaxLen = n } }

// NewLimits builds a Limits from DefaultLimits with opts applied.
func NewLimits(opts ...Option) Limits {
	l := DefaultLimits()
	for _, opt := range opts {
		opt(&l)
	}
	return l
}
