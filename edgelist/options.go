package edgelist

// DefaultDelimiter separates fields when no WithDelimiter option is given.
const DefaultDelimiter = ','

type options struct {
	delimiter     rune
	allowNegative bool
}

// Option configures Parse and ReadFile.
type Option func(*options)

// WithDelimiter sets the field separator. Zero keeps DefaultDelimiter.
func WithDelimiter(d rune) Option {
	return func(o *options) {
		if d != 0 {
			o.delimiter = d
		}
	}
}

// WithAllowNegative accepts negative distances instead of failing with ErrNegativeWeight.
func WithAllowNegative() Option {
	return func(o *options) { o.allowNegative = true }
}

func newOptions(opts []Option) options {
	o := options{delimiter: DefaultDelimiter}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
