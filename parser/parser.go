package parser

import (
	"io"

	"github.com/pkg/errors"
)

// Tokenize reads r until EOF, feeding every chunk to a new Tokenizer, and
// returns the finalized handler. Errors from h are returned unchanged.
func Tokenize[H Handler](r io.Reader, h H, opts ...Option) (H, error) {
	var zero H
	t := New(h, opts...)
	chunk := make([]byte, t.cfg.readSize)
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			if ferr := t.Feed(chunk[:n]); ferr != nil {
				return zero, ferr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return zero, errors.Wrapf(err, "read input at offset %d", t.Buffered())
		}
	}
	return t.Finalize()
}
