package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/quill-server/internal/config"
	"github.com/dtroode/quill-server/internal/model"
)

// Claims represents JWT claims carrying the session identity.
type Claims struct {
	jwt.RegisteredClaims
	Email       string `json:"email"`
	Role        string `json:"role"`
	DisplayName string `json:"name"`
	TokenType   string `json:"typ"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

var _ model.TokenManager = (*JWT)(nil)

// Option configures a JWT manager.
type Option func(*JWT)

// WithClock overrides the time source used for issuing and validating tokens.
func WithClock(now func() time.Time) Option {
	return func(j *JWT) {
		j.now = now
	}
}

// NewJWT creates a new JWT token manager from the signing configuration.
func NewJWT(cfg config.JWT, opts ...Option) *JWT {
	j := &JWT{
		secretKey:  []byte(cfg.Secret),
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

func (j *JWT) lifetime(kind model.TokenKind) (time.Duration, error) {
	switch kind {
	case model.TokenKindAccess:
		return j.accessTTL, nil
	case model.TokenKindRefresh:
		return j.refreshTTL, nil
	default:
		return 0, fmt.Errorf("unknown token kind %q", kind)
	}
}

// Issue signs a token of the given kind for the identity in claims.
// Timestamps in claims are ignored and derived from the clock.
func (j *JWT) Issue(claims model.Claims, kind model.TokenKind) (string, error) {
	ttl, err := j.lifetime(kind)
	if err != nil {
		return "", err
	}

	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.SubjectID.String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email:       claims.Email,
		Role:        string(claims.Role),
		DisplayName: claims.DisplayName,
		TokenType:   string(kind),
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", kind, err)
	}

	return tokenString, nil
}

// Verify validates signature, expiry and kind and returns the embedded claims.
// Every failure wraps model.ErrInvalidToken.
func (j *JWT) Verify(tokenString string, kind model.TokenKind) (model.Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return model.Claims{}, fmt.Errorf("%w: %w", model.ErrInvalidToken, err)
	}
	if !token.Valid {
		return model.Claims{}, fmt.Errorf("%w: token is invalid", model.ErrInvalidToken)
	}
	if claims.TokenType != string(kind) {
		return model.Claims{}, fmt.Errorf("%w: token type mismatch: %s", model.ErrInvalidToken, claims.TokenType)
	}

	subjectID, err := uuid.Parse(claims.Subject)
	if err != nil || subjectID == uuid.Nil {
		return model.Claims{}, fmt.Errorf("%w: bad subject", model.ErrInvalidToken)
	}

	out := model.Claims{
		SubjectID:   subjectID,
		Email:       claims.Email,
		Role:        model.Role(claims.Role),
		DisplayName: claims.DisplayName,
		Kind:        kind,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}

	return out, nil
}

// TryVerify verifies an access token and reports whether it was valid.
func (j *JWT) TryVerify(tokenString string) (model.Claims, bool) {
	if tokenString == "" {
		return model.Claims{}, false
	}
	claims, err := j.Verify(tokenString, model.TokenKindAccess)
	if err != nil {
		return model.Claims{}, false
	}
	return claims, true
}
