package mark

var (
	DefaultShuffleSeed int64 = 1234567890
)

type (
	// Option is a function for selecting the algorithm for payload protection.
	// It allows choosing whether to use error correction codes (ECC) and which type.
	Option      func(*markFactory)
	markFactory struct {
		f factory
	}
	factory interface {
		encode(data []byte) []byte
		decode(encoded []byte, size int) ([]byte, error)
		encodedLen(size int) int
	}
)

// WithoutECC is an option that does not use error correction codes.
// Each payload byte becomes one invisible group as-is.
func WithoutECC() Option {
	return func(mf *markFactory) {
		mf.f = withoutecc{}
	}
}

// WithGolay is an option that uses Golay code for error correction.
// seed is the seed value for shuffling the encoded bits.
// Shuffling spreads a damaged group over several code words, so a single
// corrupted invisible character stays correctable.
func WithGolay(seed int64) Option {
	return func(mf *markFactory) {
		mf.f = shuffledgolay(seed)
	}
}

func newMarkFactory(opts ...Option) markFactory {
	if len(opts) == 0 {
		opts = append(opts, WithGolay(DefaultShuffleSeed))
	}
	var mf markFactory
	for _, opt := range opts {
		opt(&mf)
	}
	return mf
}
