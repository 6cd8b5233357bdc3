package parser

import (
	"strings"
	"testing"
	"testing/iotest"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestTokenizeReader(t *testing.T) {
	in := longDocument()
	expected := tokenize(t, []string{in})

	for _, size := range []int{1, 3, 64, 65, 4096} {
		rec, err := Tokenize(strings.NewReader(in), &Recorder{}, WithReadSize(size))
		require.NoError(t, err)
		requireTokens(t, expected, rec.Tokens)
	}

	rec, err := Tokenize(iotest.OneByteReader(strings.NewReader(in)), &Recorder{})
	require.NoError(t, err)
	requireTokens(t, expected, rec.Tokens)
}

func TestTokenizeReadError(t *testing.T) {
	cause := errors.New("connection reset")
	r := iotest.TimeoutReader(strings.NewReader("<p>hello</p>"))

	_, err := Tokenize(r, &Recorder{}, WithReadSize(4))
	require.ErrorIs(t, err, iotest.ErrTimeout)

	_, err = Tokenize(iotest.ErrReader(cause), &Recorder{})
	require.Equal(t, cause, errors.Cause(err))
	require.Contains(t, err.Error(), "read input at offset 0")
}

func TestTokenizeHandlerError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Tokenize(strings.NewReader("<p></p>"), &failingHandler{err: boom})
	require.Equal(t, boom, err)
}
