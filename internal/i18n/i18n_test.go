package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestT(t *testing.T) {
	require.NoError(t, Initialize())
	require.NoError(t, Initialize())

	assert.Equal(t, "Welcome, Asha", T(KeyAuthLoginSuccess, "Asha"))
	assert.Equal(t, "3 products found", T(KeySearchResultsFound, 3))
	assert.Equal(t, "Product not found", T(KeyProduct+".not_found"))
	assert.Equal(t, "missing.key", T("missing.key"))
}

func TestEveryKeyHasAMessage(t *testing.T) {
	require.NoError(t, Initialize())

	keys := []string{
		KeySessionRequired, KeySessionInvalid, KeySessionCreated,
		KeyAuthLoginSuccess, KeyAuthLogoutSuccess, KeyAuthGuestGreeting,
		KeyProductNotFound,
		KeyCartItemAdded, KeyCartItemRemoved, KeyCartUpdated, KeyCartCleared,
		KeySearchNoResults, KeySearchResultsFound,
		KeyValidationInvalid, KeyRateLimited,
	}
	for _, key := range keys {
		assert.NotEqual(t, key, T(key), "no message for %s", key)
	}
}
