package urlify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/urlify"
)

// Configure mutates process-wide state, so these tests are deliberately
// not parallel.
func TestConfigure(t *testing.T) {
	t.Cleanup(urlify.ResetConfiguration)

	t.Run("changes process defaults", func(t *testing.T) {
		require.NoError(t, urlify.Configure(urlify.Separator("_")))
		assert.Equal(t, "hello_world", urlify.ToURL("Hello World"))
	})

	t.Run("per-call options still win", func(t *testing.T) {
		require.NoError(t, urlify.Configure(urlify.Separator("_")))
		assert.Equal(t, "hello.world", urlify.ToURL("Hello World", urlify.Separator(".")))
	})

	t.Run("reset restores built-in defaults", func(t *testing.T) {
		require.NoError(t, urlify.Configure(urlify.Separator("_"), urlify.Lowercase(false)))
		urlify.ResetConfiguration()
		assert.Equal(t, "hello-world", urlify.ToURL("Hello World"))
	})

	t.Run("invalid setting is reported and nothing applies", func(t *testing.T) {
		urlify.ResetConfiguration()
		err := urlify.Configure(urlify.Lowercase(false), urlify.Separator(""))
		require.ErrorIs(t, err, urlify.ErrEmptySeparator)
		// The valid option in the same call must not have leaked.
		assert.Equal(t, "hello-world", urlify.ToURL("Hello World"))
	})

	t.Run("rejects negative lengths", func(t *testing.T) {
		urlify.ResetConfiguration()
		require.ErrorIs(t, urlify.Configure(urlify.MaxLength(-1)), urlify.ErrInvalidLength)
		require.ErrorIs(t, urlify.Configure(urlify.WithSuffix(-1)), urlify.ErrInvalidLength)
	})

	t.Run("rejects empty locale", func(t *testing.T) {
		urlify.ResetConfiguration()
		require.ErrorIs(t, urlify.Configure(urlify.Locale("")), urlify.ErrEmptyLocale)
	})

	t.Run("invalid per-call option keeps the default", func(t *testing.T) {
		urlify.ResetConfiguration()
		assert.Equal(t, "a-b", urlify.ToURL("a b", urlify.Separator("")))
	})
}
