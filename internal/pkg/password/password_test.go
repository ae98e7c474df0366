package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := Hash("Admin@123")
	require.NoError(t, err)
	assert.NotEqual(t, "Admin@123", hash)

	assert.NoError(t, Compare(hash, "Admin@123"))
	assert.ErrorIs(t, Compare(hash, "wrong"), ErrMismatch)
}
