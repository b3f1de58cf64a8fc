package mark

import (
	"fmt"
	"math/rand"

	"github.com/yyyoichi/bitstream-go"
	"github.com/yyyoichi/golay"

	"github.com/yyyoichi/zerowidth/internal/bitconv"
)

var _ factory = (*shuffledgolay)(nil)

type shuffledgolay int64

func (sg shuffledgolay) encode(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}
	size := len(data) * 8
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range bitconv.BytesToBools(data) {
		w.WriteBool(v)
	}

	var encoded []uint64
	enc := golay.NewEncoder(&encoded)
	_ = enc.Encode(w.Data(), size)
	encodedLen := enc.Bits()

	// shuffle
	index := sg.generatePermutation(encodedLen)
	r := bitstream.NewBitReader(encoded, 0, 0)
	bits := make([]bool, encodedLen)
	for i := range encodedLen {
		bits[i], _ = r.ReadBitAt(index[i])
	}
	return bitconv.BoolsToBytes(bits)
}

func (sg shuffledgolay) decode(encoded []byte, size int) ([]byte, error) {
	if size == 0 {
		return nil, nil
	}
	encodedLen := sg.encodedLen(size)
	if want := encodedBytes(encodedLen); len(encoded) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrPayloadLength, len(encoded), want)
	}
	// the last byte is zero padded past encodedLen
	bits := bitconv.BytesToBools(encoded)[:encodedLen]

	// reverse shuffle: create same permutation then apply inverse
	index := sg.generatePermutation(encodedLen)
	w := bitstream.NewBitWriter[uint64](0, 0)
	for i := range encodedLen {
		w.WriteBitAt(index[i], bits[i])
	}

	var decoded []uint64
	dec := golay.NewDecoder(w.Data(), encodedLen)
	if err := dec.Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	r := bitstream.NewBitReader(decoded, 0, 0)
	out := make([]bool, size*8)
	for i := range out {
		out[i], _ = r.ReadBitAt(i)
	}
	return bitconv.BoolsToBytes(out), nil
}

// encodedLen returns the number of encoded bits for size payload bytes.
func (sg shuffledgolay) encodedLen(size int) int {
	return golay.EncodedBits(size * 8)
}

// encodedBytes returns the number of bytes holding bits encoded bits.
func encodedBytes(bits int) int {
	return (bits + 7) / 8
}

func (sg shuffledgolay) generatePermutation(length int) []int {
	index := make([]int, length)
	for i := range index {
		index[i] = i
	}
	seed := int64(sg)
	rd := rand.New(rand.NewSource(seed))
	rd.Shuffle(length, func(i, j int) {
		index[i], index[j] = index[j], index[i]
	})
	return index
}

var _ factory = (*withoutecc)(nil)

type withoutecc struct{}

func (we withoutecc) encode(data []byte) []byte {
	return data
}

func (we withoutecc) decode(encoded []byte, size int) ([]byte, error) {
	if len(encoded) != size {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrPayloadLength, len(encoded), size)
	}
	return encoded, nil
}

func (we withoutecc) encodedLen(size int) int {
	return size * 8
}
