package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenString(t *testing.T) {
	tok := start("a", attr("href", `"x"`), bare("hidden"))
	assert.Equal(t, `StartTagToken{a href="x" hidden}`, tok.String())

	c := comment("hi--")
	assert.Equal(t, `CommentToken{"hi--"}`, c.String())

	assert.Equal(t, "TokenType(9)", TokenType(9).String())
}

func TestTokenEqual(t *testing.T) {
	a := start("a", attr("x", "1"))
	b := start("a", attr("x", "1"))
	assert.True(t, a.Equal(&b))

	c := start("a", bare("x"))
	assert.False(t, a.Equal(&c))

	d := end("a")
	assert.False(t, a.Equal(&d))
}

func TestAttributeHasValue(t *testing.T) {
	assert.False(t, Attribute{Name: []byte("x")}.HasValue())
	assert.True(t, Attribute{Name: []byte("x"), Value: []byte("1")}.HasValue())
}
