package parser

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func naiveMask(block []byte) uint64 {
	var mask uint64
	for i := 0; i < blockSize; i++ {
		if isMarker(block[i]) {
			mask |= 1 << i
		}
	}
	return mask
}

func TestMarkerMaskEveryByte(t *testing.T) {
	block := make([]byte, blockSize)
	for c := 0; c < 256; c++ {
		for i := range block {
			block[i] = byte(c)
		}
		var expected uint64
		if isMarker(byte(c)) {
			expected = ^uint64(0)
		}
		require.Equal(t, expected, markerMask(block), "byte %#x", c)
	}
}

func TestMarkerMaskRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	alphabet := []byte(`<>"'=/ ab` + "\x00\x7f\x80\xbc\xbe\xa2\xa7\xff")
	block := make([]byte, blockSize)
	for n := 0; n < 2000; n++ {
		for i := range block {
			block[i] = alphabet[rng.Intn(len(alphabet))]
		}
		require.Equal(t, naiveMask(block), markerMask(block), "block %q", block)
	}
}

func TestMarkerMaskPositions(t *testing.T) {
	block := make([]byte, blockSize)
	for i := range block {
		block[i] = 'x'
	}
	for i := 0; i < blockSize; i++ {
		block[i] = '<'
		require.Equal(t, uint64(1)<<i, markerMask(block))
		block[i] = 'x'
	}
}

func TestZeroBytes(t *testing.T) {
	require.Equal(t, uint64(0x8080808080808080), zeroBytes(0))
	require.Equal(t, uint64(0), zeroBytes(0x0101010101010101))
	require.Equal(t, uint64(0x0000000000000080), zeroBytes(0x8080808080808000))
	require.Equal(t, uint64(0x8000000000000000), zeroBytes(0x00ffffffffffffff))
}

func TestAlignDown(t *testing.T) {
	require.Equal(t, 0, alignDown(0))
	require.Equal(t, 0, alignDown(63))
	require.Equal(t, 64, alignDown(64))
	require.Equal(t, 128, alignDown(191))
}

func BenchmarkMarkerMask(b *testing.B) {
	block := []byte(`<a href="https://example.com/" title='x'>some text here</a>.....`)
	b.SetBytes(blockSize)
	for i := 0; i < b.N; i++ {
		markerMask(block)
	}
}
