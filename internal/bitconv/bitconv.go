// Package bitconv converts between bytes and MSB-first bit slices.
package bitconv

// BytesToBools expands b into bits, most significant bit of each byte first.
func BytesToBools(b []byte) []bool {
	bits := make([]bool, len(b)*8)
	for i, bb := range b {
		for j := range 8 {
			bits[i*8+j] = bb&(0x80>>j) != 0
		}
	}
	return bits
}

// BoolsToBytes packs bits into bytes. A trailing partial byte is padded
// with zero bits.
func BoolsToBytes(bits []bool) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i, bit := range bits {
		if bit {
			out[i/8] |= 0x80 >> (i % 8)
		}
	}
	return out
}
