package utils

import (
    "crypto/rand"
    "encoding/base64"
    "errors"
    "io"

    "golang.org/x/crypto/nacl/secretbox"
)

// ErrUnseal is returned when a sealed value cannot be opened with the key.
var ErrUnseal = errors.New("cannot open sealed value")

const nonceSize = 24

// Seal encrypts plain with key using NaCl secretbox and returns
// base64(nonce || box).  Each call uses a fresh random nonce.
func Seal(key *[32]byte, plain string) (string, error) {
    var nonce [nonceSize]byte
    if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
        return "", err
    }
    out := secretbox.Seal(nonce[:], []byte(plain), &nonce, key)
    return base64.StdEncoding.EncodeToString(out), nil
}

// Open reverses Seal.
func Open(key *[32]byte, sealed string) (string, error) {
    b, err := base64.StdEncoding.DecodeString(sealed)
    if err != nil || len(b) < nonceSize+secretbox.Overhead {
        return "", ErrUnseal
    }
    var nonce [nonceSize]byte
    copy(nonce[:], b[:nonceSize])
    plain, ok := secretbox.Open(nil, b[nonceSize:], &nonce, key)
    if !ok {
        return "", ErrUnseal
    }
    return string(plain), nil
}
