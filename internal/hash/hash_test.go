package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("pw123")
	require.NoError(t, err)
	require.NotEmpty(t, h)
	assert.NotEqual(t, "pw123", h)

	assert.True(t, CheckPassword(h, "pw123"))
	assert.False(t, CheckPassword(h, "wrong"))
}

func TestCheckPassword_InvalidHash(t *testing.T) {
	t.Parallel()

	assert.False(t, CheckPassword("not-a-bcrypt-hash", "pw123"))
}
