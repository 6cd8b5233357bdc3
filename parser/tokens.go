package parser

import (
	"strconv"
	"strings"
)

//go:generate stringer -type=TokenType
type TokenType uint

const (
	DoctypeToken TokenType = iota
	CommentToken
	StartTagToken
	EndTagToken
	TextToken
)

// TokenAttribute is an owned copy of an Attribute.
type TokenAttribute struct {
	Name     string
	Value    string
	HasValue bool
}

// Token is an owned copy of a single event.
type Token struct {
	Type       TokenType
	Name       string
	Attributes []TokenAttribute
	Data       string
}

// Equal reports whether two tokens carry the same event.
func (t *Token) Equal(o *Token) bool {
	if t.Type != o.Type || t.Name != o.Name || t.Data != o.Data {
		return false
	}
	if len(t.Attributes) != len(o.Attributes) {
		return false
	}
	for i := range t.Attributes {
		if t.Attributes[i] != o.Attributes[i] {
			return false
		}
	}
	return true
}

func (t *Token) String() string {
	var b strings.Builder
	b.WriteString(t.Type.String())
	b.WriteByte('{')
	switch t.Type {
	case CommentToken, TextToken:
		b.WriteString(strconv.Quote(t.Data))
	default:
		b.WriteString(t.Name)
		for _, a := range t.Attributes {
			b.WriteByte(' ')
			b.WriteString(a.Name)
			if a.HasValue {
				b.WriteByte('=')
				b.WriteString(a.Value)
			}
		}
	}
	b.WriteByte('}')
	return b.String()
}

// Recorder is a Handler that keeps a copy of every event it sees.
type Recorder struct {
	Tokens []Token
}

func copyAttributes(attrs []Attribute) []TokenAttribute {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]TokenAttribute, len(attrs))
	for i, a := range attrs {
		out[i] = TokenAttribute{
			Name:     string(a.Name),
			Value:    string(a.Value),
			HasValue: a.HasValue(),
		}
	}
	return out
}

func (r *Recorder) OnDoctype(d DoctypeTag) error {
	r.Tokens = append(r.Tokens, Token{
		Type:       DoctypeToken,
		Name:       string(d.Name),
		Attributes: copyAttributes(d.Attrs),
	})
	return nil
}

func (r *Recorder) OnComment(c CommentTag) error {
	r.Tokens = append(r.Tokens, Token{Type: CommentToken, Data: string(c.Value)})
	return nil
}

func (r *Recorder) OnOpeningTag(o OpeningTag) error {
	r.Tokens = append(r.Tokens, Token{
		Type:       StartTagToken,
		Name:       string(o.Name),
		Attributes: copyAttributes(o.Attrs),
	})
	return nil
}

func (r *Recorder) OnClosingTag(c ClosingTag) error {
	r.Tokens = append(r.Tokens, Token{Type: EndTagToken, Name: string(c.Name)})
	return nil
}

func (r *Recorder) OnText(x Text) error {
	r.Tokens = append(r.Tokens, Token{Type: TextToken, Data: string(x.Value)})
	return nil
}
