package optional

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSomeAndNone(t *testing.T) {
	t.Parallel()

	t.Run("Some", func(t *testing.T) {
		t.Parallel()

		opt := Some("a")
		assert.True(t, opt.NonEmpty())
		assert.False(t, opt.Empty())

		val, ok := opt.Get()
		assert.True(t, ok)
		assert.Equal(t, "a", val)
		assert.Equal(t, "a", opt.GetOrPanic())
		assert.Equal(t, "Some(a)", opt.String())
	})

	t.Run("None", func(t *testing.T) {
		t.Parallel()

		opt := None[string]()
		assert.False(t, opt.NonEmpty())
		assert.True(t, opt.Empty())

		val, ok := opt.Get()
		assert.False(t, ok)
		assert.Empty(t, val)
		assert.Equal(t, "fallback", opt.GetOrElse("fallback"))
		assert.Equal(t, "None", opt.String())
		assert.Panics(t, func() {
			opt.GetOrPanic()
		})
	})
}

func TestAll(t *testing.T) {
	t.Parallel()

	var seen []int

	for v := range Some(7).All() {
		seen = append(seen, v)
	}

	for v := range None[int]().All() {
		seen = append(seen, v)
	}

	assert.Equal(t, []int{7}, seen)
}

func TestEquals(t *testing.T) {
	t.Parallel()

	eq := func(a, b int) bool { return a == b }

	assert.True(t, None[int]().Equals(None[int](), eq))
	assert.True(t, Some(1).Equals(Some(1), eq))
	assert.False(t, Some(1).Equals(Some(2), eq))
	assert.False(t, Some(1).Equals(None[int](), eq))
}

func TestMapAndFlatMap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some("3"), Map(Some(3), strconv.Itoa))
	assert.Equal(t, None[string](), Map(None[int](), strconv.Itoa))

	half := func(n int) Value[int] {
		if n%2 != 0 {
			return None[int]()
		}

		return Some(n / 2)
	}

	assert.Equal(t, Some(2), FlatMap(Some(4), half))
	assert.Equal(t, None[int](), FlatMap(Some(3), half))
	assert.Equal(t, None[int](), FlatMap(None[int](), half))
}
