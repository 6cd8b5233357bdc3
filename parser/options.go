package parser

import "github.com/sirupsen/logrus"

const defaultReadSize = 4096

type config struct {
	capacity int
	readSize int
	doctype  bool
	log      *logrus.Entry
}

// Option configures a Tokenizer.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{
		readSize: defaultReadSize,
		log:      logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithCapacity preallocates n bytes for the input buffer. Zero or a
// negative n keeps the default.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// WithReadSize sets the chunk size Tokenize reads with.
func WithReadSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.readSize = n
		}
	}
}

// WithDoctype makes the tokenizer report <!DOCTYPE ...> declarations through
// OnDoctype. They are skipped by default.
func WithDoctype(enabled bool) Option {
	return func(c *config) {
		c.doctype = enabled
	}
}

// WithLogger sets the entry used for debug output about dropped input.
func WithLogger(l *logrus.Entry) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}
