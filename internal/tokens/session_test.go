package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-session-secret")

func TestSignSession_SetsExpectedClaims(t *testing.T) {
	t.Parallel()

	exp := time.Now().Add(SessionTTL).UTC()
	token, err := SignSession(42, testSecret, exp)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := SessionClaimsFromToken(token, testSecret)
	require.NoError(t, err)

	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, exp, claims.ExpiresAt.Time, time.Second)
}

func TestSessionClaimsFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := SignSession(1, testSecret, time.Now().Add(time.Hour))
	require.NoError(t, err)

	claims, err := SessionClaimsFromToken(token, []byte("other-secret"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSession)
	assert.Nil(t, claims)
}

func TestSessionClaimsFromToken_Expired(t *testing.T) {
	t.Parallel()

	token, err := SignSession(1, testSecret, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = SessionClaimsFromToken(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionClaimsFromToken_Garbage(t *testing.T) {
	t.Parallel()

	_, err := SessionClaimsFromToken("not-a-jwt", testSecret)
	assert.ErrorIs(t, err, ErrInvalidSession)
}
