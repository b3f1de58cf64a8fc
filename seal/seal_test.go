package seal

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yyyoichi/zerowidth"
	"github.com/yyyoichi/zerowidth/mark"
)

type keyGenMock struct {
	calls []time.Time
	key   []byte
}

func (k *keyGenMock) Generate(timestamp time.Time) ([]byte, error) {
	k.calls = append(k.calls, timestamp)
	return k.key, nil
}

type keyGenErr struct{}

func (keyGenErr) Generate(time.Time) ([]byte, error) {
	return nil, errors.New("no key")
}

func TestSealer(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 6_000_000, time.UTC)
	clock := WithClock(func() time.Time { return now })

	t.Run("seal and verify", func(t *testing.T) {
		s := New([]byte("master"), []byte("salt"), clock)
		sealed, err := s.Seal("Hello World")
		require.NoError(t, err)
		assert.Equal(t, "Hello World", zerowidth.Strip(sealed))
		assert.True(t, zerowidth.Contains(sealed))

		ok, sealedAt, err := s.Verify(sealed)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, sealedAt.Equal(now))
	})

	t.Run("tampered text", func(t *testing.T) {
		s := New([]byte("master"), []byte("salt"), clock)
		sealed, err := s.Seal("Hello World")
		require.NoError(t, err)

		ok, _, err := s.Verify(sealed + "!")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("other key", func(t *testing.T) {
		sealed, err := New([]byte("master"), []byte("salt"), clock).Seal("Hello World")
		require.NoError(t, err)

		ok, _, err := New([]byte("other"), []byte("salt"), clock).Verify(sealed)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("reseal replaces seal", func(t *testing.T) {
		s := New([]byte("master"), []byte("salt"), clock)
		once, err := s.Seal("Hello World")
		require.NoError(t, err)
		twice, err := s.Seal(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	})

	t.Run("key clock", func(t *testing.T) {
		kg := &keyGenMock{key: []byte("0123456789abcdef0123456789abcdef")}
		s := &Sealer{keyGen: kg, now: func() time.Time { return now }}
		sealed, err := s.Seal("text")
		require.NoError(t, err)
		_, _, err = s.Verify(sealed)
		require.NoError(t, err)
		require.Len(t, kg.calls, 2)
		assert.True(t, kg.calls[0].Equal(now))
		assert.True(t, kg.calls[1].Equal(now))
	})

	t.Run("key failure", func(t *testing.T) {
		s := &Sealer{keyGen: keyGenErr{}, now: time.Now}
		_, err := s.Seal("text")
		assert.Error(t, err)
	})

	t.Run("mark options", func(t *testing.T) {
		s := New([]byte("master"), []byte("salt"), clock, WithMarkOptions(mark.WithoutECC()))
		sealed, err := s.Seal("Hello World")
		require.NoError(t, err)
		ok, _, err := s.Verify(sealed)
		require.NoError(t, err)
		assert.True(t, ok)

		_, _, err = New([]byte("master"), []byte("salt"), clock).Verify(sealed)
		assert.Error(t, err)
	})
}

func TestVerifyErrors(t *testing.T) {
	s := New([]byte("master"), []byte("salt"), WithMarkOptions(mark.WithoutECC()))
	hide := func(payload []byte) string {
		text, err := mark.Hide("Hello World", payload, 5, mark.WithoutECC())
		require.NoError(t, err)
		return text
	}
	badVersion := make([]byte, SealSize)

	test := []struct {
		name    string
		text    string
		wantErr error
	}{
		{"no seal", "Hello World", ErrNoSeal},
		{"short", hide([]byte{version1, 1, 2}), ErrInvalidSealSize},
		{"version", hide(badVersion), ErrInvalidVersion},
		{"malformed", "Hello" + string(zerowidth.Separator), mark.ErrInvalidPayload},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			ok, _, err := s.Verify(tt.text)
			assert.False(t, ok)
			assert.True(t, errors.Is(err, tt.wantErr), "error should wrap expected: %v", err)
		})
	}
}
