package auth

import (
	"testing"
	"time"

	"profiled/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-access-secret"

func newTestSessionService(t *testing.T) *jwtSessionService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	svc, err := NewJWTSessionService(cfg)
	require.NoError(t, err)

	return svc.(*jwtSessionService)
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestNewJWTSessionService_RequiresSecret(t *testing.T) {
	_, err := NewJWTSessionService(&config.Config{})

	assert.Error(t, err)
}

func TestVerifySession_Success(t *testing.T) {
	svc := newTestSessionService(t)
	ownerID := uuid.New()

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub":   ownerID.String(),
		"name":  "Alice Chen",
		"email": "alice@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	identity, err := svc.VerifySession(tokenString)

	require.NoError(t, err)
	assert.Equal(t, ownerID, identity.ID)
	assert.Equal(t, "Alice Chen", identity.Name)
	assert.Equal(t, "alice@example.com", identity.Email)
}

func TestVerifySession_Expired(t *testing.T) {
	svc := newTestSessionService(t)

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := svc.VerifySession(tokenString)

	assert.Error(t, err)
}

func TestVerifySession_WrongSecret(t *testing.T) {
	svc := newTestSessionService(t)

	tokenString := signToken(t, "other-secret", jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.VerifySession(tokenString)

	assert.Error(t, err)
}

func TestVerifySession_MissingSubject(t *testing.T) {
	svc := newTestSessionService(t)

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.VerifySession(tokenString)

	assert.Error(t, err)
}

func TestVerifySession_MalformedSubject(t *testing.T) {
	svc := newTestSessionService(t)

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub": "not-a-uuid",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.VerifySession(tokenString)

	assert.Error(t, err)
}

func TestVerifySession_Garbage(t *testing.T) {
	svc := newTestSessionService(t)

	_, err := svc.VerifySession("not.a.token")

	assert.Error(t, err)
}
