package checkkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/checkkit"
)

func TestInRange(t *testing.T) {
	t.Parallel()

	t.Run("passes inside the range", func(t *testing.T) {
		assert.Empty(t, errorsOf(checkkit.InRange("age", 25, 18, 65)))
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		assert.Empty(t, errorsOf(
			checkkit.InRange("age", 18, 18, 65),
			checkkit.InRange("age", 65, 18, 65),
		))
	})

	t.Run("fails outside the range with value shown", func(t *testing.T) {
		errs := errorsOf(checkkit.InRange("age", 17, 18, 65))
		require.Len(t, errs, 1)
		assert.Equal(t, "must be between 18 and 65, but it was 17", errs[0].Message)
	})

	t.Run("works for floats", func(t *testing.T) {
		errs := errorsOf(checkkit.InRange("ratio", 1.5, 0.0, 1.0))
		require.Len(t, errs, 1)
		assert.Equal(t, "must be between 0 and 1, but it was 1.5", errs[0].Message)
	})

	t.Run("min greater than max panics before any value is examined", func(t *testing.T) {
		assert.PanicsWithValue(t, checkkit.ErrMinGreaterThanMax, func() {
			checkkit.InRange("age", 7, 10, 5)
		})
	})
}

func TestMinMax(t *testing.T) {
	t.Parallel()

	t.Run("min passes at the bound", func(t *testing.T) {
		assert.Empty(t, errorsOf(checkkit.Min("age", 18, 18)))
	})

	t.Run("min fails below the bound", func(t *testing.T) {
		errs := errorsOf(checkkit.Min("age", 17, 18))
		require.Len(t, errs, 1)
		assert.Equal(t, "must be at least 18, but it was 17", errs[0].Message)
	})

	t.Run("max passes at the bound", func(t *testing.T) {
		assert.Empty(t, errorsOf(checkkit.Max("retries", 3, 3)))
	})

	t.Run("max fails above the bound", func(t *testing.T) {
		errs := errorsOf(checkkit.Max("retries", 4, 3))
		require.Len(t, errs, 1)
		assert.Equal(t, "must be at most 3, but it was 4", errs[0].Message)
	})
}

func TestSigns(t *testing.T) {
	t.Parallel()

	t.Run("positive", func(t *testing.T) {
		assert.Empty(t, errorsOf(checkkit.Positive("n", 1)))
		errs := errorsOf(checkkit.Positive("n", 0))
		require.Len(t, errs, 1)
		assert.Equal(t, "must be positive, but it was 0", errs[0].Message)
	})

	t.Run("negative", func(t *testing.T) {
		assert.Empty(t, errorsOf(checkkit.Negative("n", -1)))
		assert.Len(t, errorsOf(checkkit.Negative("n", 0)), 1)
	})

	t.Run("non-negative", func(t *testing.T) {
		assert.Empty(t, errorsOf(checkkit.NonNegative("n", 0)))
		errs := errorsOf(checkkit.NonNegative("n", -3))
		require.Len(t, errs, 1)
		assert.Equal(t, "must be non-negative, but it was -3", errs[0].Message)
	})

	t.Run("non-positive", func(t *testing.T) {
		assert.Empty(t, errorsOf(checkkit.NonPositive("n", 0)))
		assert.Len(t, errorsOf(checkkit.NonPositive("n", 3)), 1)
	})

	t.Run("works across numeric types", func(t *testing.T) {
		assert.Empty(t, errorsOf(
			checkkit.Positive("a", int8(1)),
			checkkit.Positive("b", uint32(1)),
			checkkit.Positive("c", float32(0.5)),
			checkkit.NonPositive("d", int64(-9)),
		))
	})
}

func TestNilOrNumeric(t *testing.T) {
	t.Parallel()

	t.Run("nil always passes", func(t *testing.T) {
		assert.Empty(t, errorsOf(
			checkkit.NilOrInRange[int]("a", nil, 1, 10),
			checkkit.NilOrMin[int]("b", nil, 1),
			checkkit.NilOrMax[int]("c", nil, 1),
			checkkit.NilOrPositive[int]("d", nil),
			checkkit.NilOrNegative[int]("e", nil),
			checkkit.NilOrNonNegative[int]("f", nil),
			checkkit.NilOrNonPositive[int]("g", nil),
		))
	})

	t.Run("present value is checked", func(t *testing.T) {
		n := 42
		assert.Empty(t, errorsOf(checkkit.NilOrInRange("n", &n, 1, 100)))

		out := 200
		errs := errorsOf(checkkit.NilOrInRange("n", &out, 1, 100))
		require.Len(t, errs, 1)
		assert.Equal(t, "must be null or between 1 and 100, but it was 200", errs[0].Message)
	})

	t.Run("present value failing min", func(t *testing.T) {
		n := 0
		errs := errorsOf(checkkit.NilOrMin("n", &n, 1))
		require.Len(t, errs, 1)
		assert.Equal(t, "must be null or at least 1, but it was 0", errs[0].Message)
	})

	t.Run("present value failing sign", func(t *testing.T) {
		n := -1
		errs := errorsOf(checkkit.NilOrPositive("n", &n))
		require.Len(t, errs, 1)
		assert.Equal(t, "must be null or positive, but it was -1", errs[0].Message)
	})

	t.Run("min greater than max panics", func(t *testing.T) {
		assert.PanicsWithValue(t, checkkit.ErrMinGreaterThanMax, func() {
			checkkit.NilOrInRange[int]("n", nil, 10, 5)
		})
	})
}
