package orderedmap_test

import (
	"testing"

	"github.com/lestrrat-go/dtd/internal/orderedmap"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	t.Run("insertion order", func(t *testing.T) {
		m := orderedmap.New[string, int]()
		require.NoError(t, m.Set("c", 3))
		require.NoError(t, m.Set("a", 1))
		require.NoError(t, m.Set("b", 2))

		require.Equal(t, 3, m.Len())
		require.Equal(t, []int{3, 1, 2}, m.Values())

		var seen []string
		for k := range m.Range() {
			seen = append(seen, k)
		}
		require.Equal(t, []string{"c", "a", "b"}, seen)
	})
	t.Run("first value wins", func(t *testing.T) {
		m := orderedmap.New[string, int]()
		require.NoError(t, m.Set("a", 1))
		require.ErrorIs(t, m.Set("a", 2), orderedmap.ErrDuplicateEntry)

		v, ok := m.Get("a")
		require.True(t, ok)
		require.Equal(t, 1, v)
		require.Equal(t, 1, m.Len())
	})
	t.Run("early break", func(t *testing.T) {
		m := orderedmap.New[int, int]()
		for i := range 5 {
			require.NoError(t, m.Set(i, i*i))
		}
		var count int
		for range m.Range() {
			count++
			if count == 2 {
				break
			}
		}
		require.Equal(t, 2, count)
		require.True(t, m.Has(4))
		require.False(t, m.Has(5))
	})
}
