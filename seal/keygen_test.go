package seal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHKDFKeyGen(t *testing.T) {
	masterKey := []byte("this_is_a_test_master_key")
	salt := []byte("system_wide_salt_value")
	keyGen := newHmacKeygen(masterKey, salt)

	timestamp := time.Date(2025, 11, 12, 9, 0, 0, 0, time.UTC)
	key, err := keyGen.Generate(timestamp)
	require.NoError(t, err)
	require.Len(t, key, keyLen)

	// same parameters, same key
	key2, err := keyGen.Generate(timestamp)
	require.NoError(t, err)
	require.Equal(t, key, key2)

	// another hour rotates the key
	key3, err := keyGen.Generate(time.Date(2025, 11, 12, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotEqual(t, key, key3)

	// same hour keeps it
	key4, err := keyGen.Generate(time.Date(2025, 11, 12, 9, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Equal(t, key, key4)

	// the hour is taken in UTC
	key5, err := keyGen.Generate(timestamp.In(time.FixedZone("JST", 9*60*60)))
	require.NoError(t, err)
	require.Equal(t, key, key5)

	key6, err := newHmacKeygen([]byte("a_different_master_key"), salt).Generate(timestamp)
	require.NoError(t, err)
	require.NotEqual(t, key, key6)

	key7, err := newHmacKeygen(masterKey, []byte("different_salt")).Generate(timestamp)
	require.NoError(t, err)
	require.NotEqual(t, key, key7)
}
