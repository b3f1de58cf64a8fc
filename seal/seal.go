// Package seal binds text to a keyed tag hidden inside the text itself.
//
// A sealed text carries an invisible payload of
//
//	1byte version + 8bytes unix milli timestamp + 8bytes HMAC-SHA256(visible text)
//	= 17bytes
//
// Keys rotate hourly and are derived with HKDF from a master key and salt.
package seal

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/yyyoichi/zerowidth"
	"github.com/yyyoichi/zerowidth/mark"
)

const (
	// SealSize is the length of the hidden payload, in bytes.
	SealSize       = 17
	version1 uint8 = 0b10_000_000
	tagLen         = 8
)

var (
	ErrNoSeal          = errors.New("no seal")
	ErrInvalidSealSize = errors.New("invalid seal size")
	ErrInvalidVersion  = errors.New("invalid version")
)

// Option configures a Sealer.
type Option func(*Sealer)

// WithClock replaces time.Now as the source of seal timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Sealer) {
		s.now = now
	}
}

// WithMarkOptions selects the payload protection passed to mark.Hide and mark.Reveal.
func WithMarkOptions(opts ...mark.Option) Option {
	return func(s *Sealer) {
		s.markOpts = opts
	}
}

// Sealer seals texts and verifies sealed texts.
type Sealer struct {
	keyGen   keyGen
	now      func() time.Time
	markOpts []mark.Option
}

// New returns a Sealer deriving its keys from masterKey and salt.
func New(masterKey, salt []byte, opts ...Option) *Sealer {
	s := &Sealer{
		keyGen: newHmacKeygen(masterKey, salt),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seal hides a tag of the visible text of carrier inside it.
// Invisible characters already present in carrier are removed first, so
// sealing a sealed text replaces its seal.
func (s *Sealer) Seal(carrier string) (string, error) {
	visible := zerowidth.Strip(carrier)
	now := s.now()
	tag, err := s.tag(now, visible)
	if err != nil {
		return "", err
	}

	payload := make([]byte, SealSize)
	payload[0] = version1
	binary.BigEndian.PutUint64(payload[1:9], uint64(now.UnixMilli()))
	copy(payload[9:], tag)

	sealed, err := mark.Hide(visible, payload, zerowidth.DefaultPositionOf(visible), s.markOpts...)
	if err != nil {
		return "", fmt.Errorf("failed to hide seal: %w", err)
	}
	return sealed, nil
}

// Verify reports whether the seal hidden in text matches its visible text.
// A seal made with another key or over other text yields ok == false and no error.
func (s *Sealer) Verify(text string) (ok bool, sealedAt time.Time, err error) {
	payload, err := mark.Reveal(text, s.markOpts...)
	if err != nil {
		if errors.Is(err, mark.ErrNoPayload) {
			err = ErrNoSeal
			return
		}
		err = fmt.Errorf("failed to reveal seal: %w", err)
		return
	}
	if len(payload) != SealSize {
		err = fmt.Errorf("%w: %d", ErrInvalidSealSize, len(payload))
		return
	}
	if payload[0] != version1 {
		err = fmt.Errorf("%w: %d", ErrInvalidVersion, payload[0])
		return
	}
	sealedAt = time.UnixMilli(int64(binary.BigEndian.Uint64(payload[1:9])))

	exp, err := s.tag(sealedAt, zerowidth.Strip(text))
	if err != nil {
		return
	}
	ok = hmac.Equal(payload[9:], exp)
	return
}

// tag computes the truncated HMAC of visible with the key for keyClock.
func (s *Sealer) tag(keyClock time.Time, visible string) ([]byte, error) {
	key, err := s.keyGen.Generate(keyClock)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HMAC key: %w", err)
	}
	mac := hmac.New(sha256.New, key)
	_, _ = mac.Write([]byte(visible))
	return mac.Sum(nil)[:tagLen], nil
}
