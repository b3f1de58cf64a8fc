package seal

import (
	"crypto/sha256"
	"fmt"
	"io"
	"time"

	"golang.org/x/crypto/hkdf"
)

type keyGen interface {
	Generate(timestamp time.Time) ([]byte, error)
}

var _ keyGen = (*hkdfKeyGen)(nil)

type hkdfKeyGen struct {
	ikm        []byte
	salt       []byte
	infoPrefix string
}

const (
	hmacKey = "zerowidth-Seal-HMAC-Key-V1"
	keyLen  = 32
)

func newHmacKeygen(masterKey, salt []byte) *hkdfKeyGen {
	return &hkdfKeyGen{
		ikm:        masterKey,
		salt:       salt,
		infoPrefix: hmacKey,
	}
}

// Generate derives the key for the hour containing timestamp.
func (k *hkdfKeyGen) Generate(timestamp time.Time) ([]byte, error) {
	info := fmt.Sprintf("%s-%s", k.infoPrefix, timestamp.UTC().Format("2006010215"))
	key := make([]byte, keyLen)
	if _, err := io.ReadFull(hkdf.New(sha256.New, k.ikm, k.salt, []byte(info)), key); err != nil {
		return nil, err
	}
	return key, nil
}
