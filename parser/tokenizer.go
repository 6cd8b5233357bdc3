// Package parser tokenizes tag-delimited markup as it streams in, reporting
// tags and comments to a Handler without building a tree.
package parser

import (
	"math/bits"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrClosed is returned by Feed and Finalize once the session has been
// finalized or a handler has failed.
var ErrClosed = errors.New("tokenizer is closed")

// Tokenizer holds the state of one streaming tokenization session. Input is
// appended to an internal buffer that is never truncated, so every span
// handed to the Handler is a view into it.
//
// A Tokenizer is not safe for concurrent use.
type Tokenizer[H Handler] struct {
	buf []byte
	// cursor is the offset up to which whole blocks have been scanned.
	cursor int
	// opened is the offset of the unmatched '<', or -1.
	opened         int
	double, single bool

	attrs   []Attribute
	handler H
	cfg     config
	err     error
}

// New creates a Tokenizer that reports events to h.
func New[H Handler](h H, opts ...Option) *Tokenizer[H] {
	cfg := newConfig(opts...)
	return &Tokenizer[H]{
		buf:     make([]byte, 0, cfg.capacity),
		opened:  -1,
		handler: h,
		cfg:     cfg,
	}
}

// Feed appends chunk to the buffer and dispatches every marker found in the
// newly completed blocks. Bytes that do not fill a whole block are left for
// a later Feed or for Finalize.
func (t *Tokenizer[H]) Feed(chunk []byte) error {
	if t.err != nil {
		return t.err
	}
	t.buf = append(t.buf, chunk...)
	end := alignDown(len(t.buf))
	for i := t.cursor; i < end; i += blockSize {
		mask := markerMask(t.buf[i : i+blockSize])
		for mask != 0 {
			if err := t.dispatch(i + bits.TrailingZeros64(mask)); err != nil {
				return t.fail(err)
			}
			mask &= mask - 1
		}
	}
	t.cursor = end
	return nil
}

// FeedString is Feed for string input.
func (t *Tokenizer[H]) FeedString(chunk string) error {
	if t.err != nil {
		return t.err
	}
	t.buf = append(t.buf, chunk...)
	return t.Feed(nil)
}

// Finalize scans whatever is left after the last whole block and returns
// the handler. A tag still open at this point is dropped without an event.
// The Tokenizer can not be used afterwards.
func (t *Tokenizer[H]) Finalize() (H, error) {
	var zero H
	if t.err != nil {
		return zero, t.err
	}
	for i := t.cursor; i < len(t.buf); i++ {
		if !isMarker(t.buf[i]) {
			continue
		}
		if err := t.dispatch(i); err != nil {
			return zero, t.fail(err)
		}
	}
	t.cursor = len(t.buf)
	if t.opened >= 0 {
		t.debug(t.opened, len(t.buf), "dropping unterminated tag")
	}
	t.err = errors.Wrap(ErrClosed, "finalized")
	t.buf = nil
	return t.handler, nil
}

// Buffered returns the number of bytes fed so far.
func (t *Tokenizer[H]) Buffered() int {
	return len(t.buf)
}

// Scanned returns the offset up to which the input has been classified.
func (t *Tokenizer[H]) Scanned() int {
	return t.cursor
}

// dispatch advances the tag/quote state machine by the marker at p.
func (t *Tokenizer[H]) dispatch(p int) error {
	c := t.buf[p]
	if t.opened < 0 {
		if c == '<' {
			t.opened = p
		}
		return nil
	}
	switch c {
	case '"':
		t.double = !t.double
	case '\'':
		t.single = !t.single
	case '>':
		if t.double || t.single {
			return nil
		}
		open := t.opened
		t.opened = -1
		return t.classify(open, p)
	}
	return nil
}

// fail closes the session and hands back err untouched.
func (t *Tokenizer[H]) fail(err error) error {
	t.cfg.log.WithError(err).Debug("handler aborted tokenization")
	t.err = errors.Wrap(ErrClosed, "handler failed")
	return err
}

func (t *Tokenizer[H]) debug(from, to int, msg string) {
	if !t.cfg.log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	t.cfg.log.WithFields(logrus.Fields{
		"offset": from,
		"span":   string(t.buf[from:to]),
	}).Debug(msg)
}
