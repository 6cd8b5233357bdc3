package parser

import "bytes"

var (
	doctypePrefix = []byte("!DOCTYPE ")
	commentPrefix = []byte("!--")
)

// classify turns the span between the '<' at open and the '>' at close into
// an event. Only bytes inside the span are inspected. Shapes that are not
// recognized are dropped.
func (t *Tokenizer[H]) classify(open, close int) error {
	body := t.buf[open+1 : close]
	if len(body) == 0 {
		t.debug(open, close+1, "ignoring empty tag")
		return nil
	}
	switch body[0] {
	case '!':
		if bytes.HasPrefix(body, doctypePrefix) {
			if !t.cfg.doctype {
				t.debug(open, close+1, "skipping doctype")
				return nil
			}
			return t.emitDoctype(open+1+len(doctypePrefix), close)
		}
		if bytes.HasPrefix(body, commentPrefix) {
			return t.handler.OnComment(CommentTag{Value: t.span(open+4, close)})
		}
	case '/':
		if len(body) > 1 && isASCIIAlpha(body[1]) {
			return t.handler.OnClosingTag(ClosingTag{Name: t.span(open+2, close)})
		}
	default:
		if isASCIIAlpha(body[0]) {
			return t.emitOpening(open, close)
		}
	}
	t.debug(open, close+1, "ignoring unrecognized tag")
	return nil
}

func (t *Tokenizer[H]) emitOpening(open, close int) error {
	name, attrs, selfClosing := scanTag(t.buf, open+1, close, t.attrs)
	t.attrs = attrs
	if err := t.handler.OnOpeningTag(OpeningTag{Name: name, Attrs: attrs}); err != nil {
		return err
	}
	if selfClosing {
		return t.handler.OnClosingTag(ClosingTag{Name: name})
	}
	return nil
}

func (t *Tokenizer[H]) emitDoctype(from, close int) error {
	name, attrs, _ := scanTag(t.buf, from, close, t.attrs)
	t.attrs = attrs
	return t.handler.OnDoctype(DoctypeTag{Name: name, Attrs: attrs})
}

// span returns buf[from:to] with its capacity clipped, so a handler
// appending to it can not overwrite input that follows.
func (t *Tokenizer[H]) span(from, to int) []byte {
	return t.buf[from:to:to]
}

// tagScan accumulates the tokens of a tag body. The first token is the
// name; later ones are attribute names, or the value of the previous
// attribute when an '=' came before them.
type tagScan struct {
	name  []byte
	attrs []Attribute
	equal bool
}

func (s *tagScan) flush(tok []byte) {
	if len(tok) == 0 {
		return
	}
	switch {
	case s.name == nil:
		s.name = tok
	case s.equal:
		if n := len(s.attrs); n > 0 {
			s.attrs[n-1].Value = tok
		}
		s.equal = false
	default:
		s.attrs = append(s.attrs, Attribute{Name: tok})
	}
}

// scanTag splits buf[from:to] into a name and attributes in one pass.
// Whitespace and '=' separate tokens unless they sit inside quotes, and an
// unquoted '/' ends the scan and marks the tag self-closing. attrs is reused
// as backing storage for the result.
func scanTag(buf []byte, from, to int, attrs []Attribute) ([]byte, []Attribute, bool) {
	s := tagScan{attrs: attrs[:0]}
	var d, q, selfClosing bool
	last, stop := from-1, to
scan:
	for i := from; i < to; i++ {
		c := buf[i]
		switch {
		case c == '"':
			d = !d
		case c == '\'':
			q = !q
		case d || q:
		case isASCIIWhitespace(c):
			s.flush(buf[last+1 : i : i])
			last = i
		case c == '=':
			s.flush(buf[last+1 : i : i])
			last = i
			s.equal = true
		case c == '/':
			selfClosing = true
			stop = i
			break scan
		}
	}
	s.flush(buf[last+1 : stop : stop])
	return s.name, s.attrs, selfClosing
}
