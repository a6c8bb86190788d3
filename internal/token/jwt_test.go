package token

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/quill-server/internal/config"
	"github.com/dtroode/quill-server/internal/model"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func testConfig() config.JWT {
	return config.JWT{Secret: "secret", AccessTTL: 15 * time.Minute, RefreshTTL: 7 * 24 * time.Hour}
}

func testClaims() model.Claims {
	return model.Claims{
		SubjectID:   uuid.New(),
		Email:       "ada@example.com",
		Role:        model.RoleUser,
		DisplayName: "Ada",
	}
}

func TestJWT_AccessToken_Roundtrip(t *testing.T) {
	j := NewJWT(testConfig())
	in := testClaims()

	access, err := j.Issue(in, model.TokenKindAccess)
	require.NoError(t, err)

	got, err := j.Verify(access, model.TokenKindAccess)
	require.NoError(t, err)
	assert.Equal(t, in.SubjectID, got.SubjectID)
	assert.Equal(t, in.Email, got.Email)
	assert.Equal(t, in.Role, got.Role)
	assert.Equal(t, in.DisplayName, got.DisplayName)
	assert.Equal(t, model.TokenKindAccess, got.Kind)
	assert.Equal(t, 15*time.Minute, got.ExpiresAt.Sub(got.IssuedAt))
}

func TestJWT_RefreshToken_Roundtrip(t *testing.T) {
	j := NewJWT(testConfig())
	in := testClaims()

	refresh, err := j.Issue(in, model.TokenKindRefresh)
	require.NoError(t, err)

	got, err := j.Verify(refresh, model.TokenKindRefresh)
	require.NoError(t, err)
	assert.Equal(t, in.SubjectID, got.SubjectID)
	assert.Equal(t, 7*24*time.Hour, got.ExpiresAt.Sub(got.IssuedAt))
}

func TestJWT_TokenType_Mismatch(t *testing.T) {
	j := NewJWT(testConfig())

	access, err := j.Issue(testClaims(), model.TokenKindAccess)
	require.NoError(t, err)
	_, err = j.Verify(access, model.TokenKindRefresh)
	require.ErrorIs(t, err, model.ErrInvalidToken)

	refresh, err := j.Issue(testClaims(), model.TokenKindRefresh)
	require.NoError(t, err)
	_, err = j.Verify(refresh, model.TokenKindAccess)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestJWT_UnknownKind(t *testing.T) {
	j := NewJWT(testConfig())

	_, err := j.Issue(testClaims(), model.TokenKind("session"))
	require.Error(t, err)
}

func TestJWT_ExpiryValidation(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)}
	j := NewJWT(testConfig(), WithClock(clock.Now))

	access, err := j.Issue(testClaims(), model.TokenKindAccess)
	require.NoError(t, err)

	clock.t = clock.t.Add(14*time.Minute + 59*time.Second)
	_, err = j.Verify(access, model.TokenKindAccess)
	require.NoError(t, err)

	clock.t = clock.t.Add(2 * time.Second)
	_, err = j.Verify(access, model.TokenKindAccess)
	require.ErrorIs(t, err, model.ErrInvalidToken)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)

	_, ok := j.TryVerify(access)
	assert.False(t, ok)
}

func TestJWT_TamperedSignature(t *testing.T) {
	j := NewJWT(testConfig())

	access, err := j.Issue(testClaims(), model.TokenKindAccess)
	require.NoError(t, err)

	parts := strings.Split(access, ".")
	require.Len(t, parts, 3)

	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	require.NoError(t, err)

	for i := range sig {
		tampered := make([]byte, len(sig))
		copy(tampered, sig)
		tampered[i] ^= 0x01
		token := parts[0] + "." + parts[1] + "." + base64.RawURLEncoding.EncodeToString(tampered)

		_, err := j.Verify(token, model.TokenKindAccess)
		require.ErrorIs(t, err, model.ErrInvalidToken, "signature byte %d", i)
	}
}

func TestJWT_TamperedPayload(t *testing.T) {
	j := NewJWT(testConfig())

	access, err := j.Issue(testClaims(), model.TokenKindAccess)
	require.NoError(t, err)

	other, err := j.Issue(model.Claims{SubjectID: uuid.New(), Role: model.RoleAdmin}, model.TokenKindAccess)
	require.NoError(t, err)

	a := strings.Split(access, ".")
	o := strings.Split(other, ".")
	_, err = j.Verify(a[0]+"."+o[1]+"."+a[2], model.TokenKindAccess)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestJWT_WrongSecret(t *testing.T) {
	issuer := NewJWT(testConfig())
	cfg := testConfig()
	cfg.Secret = "other"
	verifier := NewJWT(cfg)

	access, err := issuer.Issue(testClaims(), model.TokenKindAccess)
	require.NoError(t, err)

	_, err = verifier.Verify(access, model.TokenKindAccess)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestJWT_RejectsNoneAlgorithm(t *testing.T) {
	j := NewJWT(testConfig())

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		TokenType: string(model.TokenKindAccess),
	})
	s, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = j.Verify(s, model.TokenKindAccess)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestJWT_TryVerify(t *testing.T) {
	j := NewJWT(testConfig())
	in := testClaims()

	access, err := j.Issue(in, model.TokenKindAccess)
	require.NoError(t, err)
	refresh, err := j.Issue(in, model.TokenKindRefresh)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		wantOK bool
	}{
		{name: "valid access token", token: access, wantOK: true},
		{name: "empty", token: "", wantOK: false},
		{name: "malformed", token: "not.a.jwt", wantOK: false},
		{name: "garbage", token: "%%%", wantOK: false},
		{name: "refresh token", token: refresh, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, ok := j.TryVerify(tt.token)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, in.SubjectID, claims.SubjectID)
			} else {
				assert.Equal(t, model.Claims{}, claims)
			}
		})
	}
}
