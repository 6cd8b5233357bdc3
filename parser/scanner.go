package parser

import "encoding/binary"

// blockSize is the number of bytes classified per markerMask call. Every
// block yields a 64-bit mask, one bit per byte.
const blockSize = 64

const (
	lanes    = blockSize / 8
	low7     = 0x7f7f7f7f7f7f7f7f
	lsb      = 0x0101010101010101
	// gatherHi moves the top bit of each byte into the top byte, byte k
	// landing on bit 56+k.
	gatherHi = 0x0102040810204080
)

// Marker bytes repeated across a lane.
const (
	ltLane = lsb * '<'
	gtLane = lsb * '>'
	dqLane = lsb * '"'
	sqLane = lsb * '\''
)

// zeroBytes sets 0x80 in every byte of w that is zero and clears everything
// else. Unlike the usual haszero trick it has no false positives.
func zeroBytes(w uint64) uint64 {
	return ^(((w & low7) + low7) | w | low7)
}

// laneMask returns an 8-bit mask of the marker bytes in an 8-byte lane.
func laneMask(w uint64) uint64 {
	m := zeroBytes(w^ltLane) | zeroBytes(w^gtLane) | zeroBytes(w^dqLane) | zeroBytes(w^sqLane)
	return ((m >> 7) * gatherHi) >> 56
}

// markerMask classifies one block. Bit i of the result is set when block[i]
// is one of < > " '. block must hold at least blockSize bytes.
func markerMask(block []byte) uint64 {
	_ = block[blockSize-1]
	var mask uint64
	for l := 0; l < lanes; l++ {
		mask |= laneMask(binary.LittleEndian.Uint64(block[l*8:])) << (l * 8)
	}
	return mask
}

// isMarker is the sequential counterpart of markerMask, used for the tail
// that does not fill a whole block.
func isMarker(c byte) bool {
	switch c {
	case '<', '>', '"', '\'':
		return true
	default:
		return false
	}
}

// alignDown rounds n down to a multiple of blockSize.
func alignDown(n int) int {
	return n &^ (blockSize - 1)
}

func isASCIIWhitespace(c byte) bool {
	switch c {
	case 0x09, 0x0A, 0x0C, 0x0D, 0x20:
		return true
	default:
		return false
	}
}

func isASCIIAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
