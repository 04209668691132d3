package reorderable_test

import (
	"testing"

	"github.com/amp-labs/reorderable/optional"
	"github.com/amp-labs/reorderable/reorderable"
	"github.com/stretchr/testify/assert"
)

func TestToKeyedSlice(t *testing.T) {
	t.Parallel()

	t.Run("keys are stable under reordering", func(t *testing.T) {
		t.Parallel()

		requireKeyed(t, keyed("2", "c", "1", "b", "0", "a"), abc().Swap(0, 2))
	})

	t.Run("inserted values get the next key", func(t *testing.T) {
		t.Parallel()

		r := reorderable.FromSlice([]string{"a", "b", "c", "d"}).InsertAt(2, "foo")
		requireKeyed(t, keyed("0", "a", "1", "b", "4", "foo", "2", "c", "3", "d"), r)
	})

	t.Run("keys are plain decimal", func(t *testing.T) {
		t.Parallel()

		r := reorderable.Empty[int]()
		for i := range 12 {
			r = r.Push(i)
		}

		kv := r.ToKeyedSlice()
		assert.Equal(t, "0", kv[0].Key)
		assert.Equal(t, "9", kv[9].Key)
		assert.Equal(t, "11", kv[11].Key)
	})
}

func TestKeyLookups(t *testing.T) {
	t.Parallel()

	r := abc().Swap(0, 2).Drop(1) // [2:c 0:a]

	assert.Equal(t, optional.Some(reorderable.ID(2)), r.IDAt(0))
	assert.Equal(t, optional.Some("0"), r.KeyAt(1))
	assert.True(t, r.KeyAt(2).Empty())
	assert.True(t, r.IDAt(-1).Empty())

	assert.Equal(t, optional.Some(1), r.IndexOfID(0))
	assert.True(t, r.IndexOfID(1).Empty(), "dropped id must not be found")

	assert.Equal(t, optional.Some(0), r.IndexOfKey("2"))
	assert.Equal(t, optional.Some("a"), r.GetByKey("0"))
	assert.True(t, r.GetByKey("1").Empty())

	for _, bad := range []string{"", "x", "-0", "+2", "02", " 2", "-1"} {
		assert.True(t, r.IndexOfKey(bad).Empty(), "key %q", bad)
	}
}
