package utils

import (
    "testing"
    "time"

    "github.com/golang-jwt/jwt/v5"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
    tok, err := NewAccessToken("s3cret", "user-1", "dj", 15)
    require.NoError(t, err)
    assert.WithinDuration(t, time.Now().Add(15*time.Minute), tok.Exp, 5*time.Second)

    id, role, err := ParseAccessToken("s3cret", tok.Token)
    require.NoError(t, err)
    assert.Equal(t, "user-1", id)
    assert.Equal(t, "dj", role)
}

func TestAccessTokenWithoutRole(t *testing.T) {
    tok, err := NewAccessToken("s3cret", "user-2", "", 15)
    require.NoError(t, err)
    id, role, err := ParseAccessToken("s3cret", tok.Token)
    require.NoError(t, err)
    assert.Equal(t, "user-2", id)
    assert.Empty(t, role)
}

func TestParseAccessTokenRejects(t *testing.T) {
    good, err := NewAccessToken("s3cret", "user-1", "admin", 15)
    require.NoError(t, err)
    expired, err := NewAccessToken("s3cret", "user-1", "admin", -1)
    require.NoError(t, err)
    none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "user-1", "role": "admin"}).
        SignedString(jwt.UnsafeAllowNoneSignatureType)
    require.NoError(t, err)

    cases := map[string]struct{ secret, raw string }{
        "wrong secret": {"other", good.Token},
        "expired":      {"s3cret", expired.Token},
        "alg none":     {"s3cret", none},
        "garbage":      {"s3cret", "not.a.jwt"},
    }
    for name, tc := range cases {
        t.Run(name, func(t *testing.T) {
            _, _, err := ParseAccessToken(tc.secret, tc.raw)
            assert.ErrorIs(t, err, ErrInvalidToken)
        })
    }
}

func TestRefreshTokenHash(t *testing.T) {
    rt, err := NewRefreshToken(7)
    require.NoError(t, err)
    assert.Len(t, rt.Raw, 96)
    assert.Equal(t, HashRefreshRaw(rt.Raw), HashRefreshRaw(rt.Raw))
    assert.Len(t, HashRefreshRaw(rt.Raw), 64)
}

func TestPasswordHash(t *testing.T) {
    h, err := HashPassword("hunter22", 4)
    require.NoError(t, err)
    assert.True(t, VerifyPassword(h, "hunter22"))
    assert.False(t, VerifyPassword(h, "hunter23"))
}

func TestSealOpen(t *testing.T) {
    var key [32]byte
    copy(key[:], "0123456789abcdef0123456789abcdef")

    a, err := Seal(&key, "123-45-6789")
    require.NoError(t, err)
    b, err := Seal(&key, "123-45-6789")
    require.NoError(t, err)
    assert.NotEqual(t, a, b, "nonce must differ per call")
    assert.NotContains(t, a, "6789")

    plain, err := Open(&key, a)
    require.NoError(t, err)
    assert.Equal(t, "123-45-6789", plain)

    var other [32]byte
    _, err = Open(&other, a)
    assert.ErrorIs(t, err, ErrUnseal)
    _, err = Open(&key, "short")
    assert.ErrorIs(t, err, ErrUnseal)
}
