package checkkit_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/checkkit"
)

func TestMatches(t *testing.T) {
	t.Parallel()

	t.Run("passes on a full match", func(t *testing.T) {
		assert.Empty(t, errorsOf(checkkit.Matches("code", "abc123", `[a-z]+[0-9]+`)))
	})

	t.Run("substring matches are not enough", func(t *testing.T) {
		// The source is anchored, so a partial hit must fail.
		errs := errorsOf(checkkit.Matches("code", "abc123!", `[a-z]+[0-9]+`))
		require.Len(t, errs, 1)
		assert.Equal(t, "must match pattern '[a-z]+[0-9]+', but it was 'abc123!'", errs[0].Message)
	})

	t.Run("email pattern example", func(t *testing.T) {
		pattern := `(?i)[\w._%+-]+@[\w.-]+\.[A-Z]{2,}`
		assert.Empty(t, errorsOf(checkkit.Matches("email", "john@example.com", pattern)))
		assert.Len(t, errorsOf(checkkit.Matches("email", "invalid-email", pattern)), 1)
	})

	t.Run("invalid pattern source panics", func(t *testing.T) {
		defer func() {
			r := recover()
			require.NotNil(t, r)
			err, ok := r.(error)
			require.True(t, ok)
			assert.ErrorIs(t, err, checkkit.ErrInvalidPattern)
		}()
		checkkit.Matches("code", "x", `[unclosed`)
	})
}

func TestMatchesPattern(t *testing.T) {
	t.Parallel()

	t.Run("uses the compiled pattern as given", func(t *testing.T) {
		re := regexp.MustCompile(`[0-9]+`)
		// Unanchored: a substring hit passes.
		assert.Empty(t, errorsOf(checkkit.MatchesPattern("code", "abc123", re)))
	})

	t.Run("fails with the pattern source in the message", func(t *testing.T) {
		re := regexp.MustCompile(`^[0-9]+$`)
		errs := errorsOf(checkkit.MatchesPattern("code", "abc", re))
		require.Len(t, errs, 1)
		assert.Equal(t, "must match pattern '^[0-9]+$', but it was 'abc'", errs[0].Message)
	})

	t.Run("nil pattern panics", func(t *testing.T) {
		assert.PanicsWithValue(t, checkkit.ErrNilPattern, func() {
			checkkit.MatchesPattern("code", "x", nil)
		})
	})
}

func TestNilOrMatches(t *testing.T) {
	t.Parallel()

	t.Run("nil passes for any pattern", func(t *testing.T) {
		assert.Empty(t, errorsOf(checkkit.NilOrMatches("code", nil, `[0-9]+`)))
	})

	t.Run("present value is matched", func(t *testing.T) {
		ok := "123"
		bad := "abc"
		assert.Empty(t, errorsOf(checkkit.NilOrMatches("code", &ok, `[0-9]+`)))

		errs := errorsOf(checkkit.NilOrMatches("code", &bad, `[0-9]+`))
		require.Len(t, errs, 1)
		assert.Equal(t, "must be null or match pattern '[0-9]+', but it was 'abc'", errs[0].Message)
	})

	t.Run("nil pattern panics for compiled variant", func(t *testing.T) {
		assert.PanicsWithValue(t, checkkit.ErrNilPattern, func() {
			checkkit.NilOrMatchesPattern("code", nil, nil)
		})
	})
}
