package parser

// Attribute is a single name/value pair found inside an opening tag. Both
// slices point into the tokenizer's buffer. Quoted values keep their quotes.
type Attribute struct {
	Name  []byte
	Value []byte
}

// HasValue reports whether the attribute had an `=value` part.
func (a Attribute) HasValue() bool {
	return a.Value != nil
}

// DoctypeTag is emitted for <!DOCTYPE ...> when enabled with WithDoctype.
type DoctypeTag struct {
	Name  []byte
	Attrs []Attribute
}

// CommentTag carries everything between `<!--` and the terminating `>`.
type CommentTag struct {
	Value []byte
}

// OpeningTag is a start tag with its attributes in source order.
type OpeningTag struct {
	Name  []byte
	Attrs []Attribute
}

// ClosingTag is an end tag, or the synthetic end of a self-closing tag.
type ClosingTag struct {
	Name []byte
}

// Text is reserved for character data between tags. The tokenizer does not
// track text spans, so OnText is never called by it.
type Text struct {
	Value []byte
}

// Handler receives the events produced by a Tokenizer. The payloads borrow
// from the tokenizer's buffer and are only valid until the method returns;
// copy anything that has to outlive the call. Returning an error aborts the
// current Feed or Finalize.
type Handler interface {
	OnDoctype(DoctypeTag) error
	OnComment(CommentTag) error
	OnOpeningTag(OpeningTag) error
	OnClosingTag(ClosingTag) error
	OnText(Text) error
}

// NopHandler ignores every event. Embed it to implement only the methods
// you care about.
type NopHandler struct{}

func (NopHandler) OnDoctype(DoctypeTag) error { return nil }
func (NopHandler) OnComment(CommentTag) error { return nil }
func (NopHandler) OnOpeningTag(OpeningTag) error { return nil }
func (NopHandler) OnClosingTag(ClosingTag) error { return nil }
func (NopHandler) OnText(Text) error { return nil }
