package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(n int) time.Time {
	return time.Date(2024, 3, n, 12, 0, 0, 0, time.UTC)
}

func names(flavors []Flavor) []string {
	out := make([]string, len(flavors))
	for i, f := range flavors {
		out[i] = f.Flavor
	}
	return out
}

func TestCatalog_Mutations(t *testing.T) {
	t.Run("SetAll copies the input", func(t *testing.T) {
		catalog := NewCatalog()
		input := []Flavor{{ID: 1, Flavor: "Mango"}}
		catalog.SetAll(input)

		input[0].Flavor = "mutated"
		assert.Equal(t, "Mango", catalog.All()[0].Flavor)
	})

	t.Run("Append adds at the end", func(t *testing.T) {
		catalog := NewCatalog()
		catalog.Append(Flavor{ID: 1, Flavor: "Mango"})
		catalog.Append(Flavor{ID: 2, Flavor: "Lime"})

		assert.Equal(t, []string{"Mango", "Lime"}, names(catalog.All()))
	})

	t.Run("ReplaceByID swaps the matching row", func(t *testing.T) {
		catalog := NewCatalog()
		catalog.SetAll([]Flavor{{ID: 1, Flavor: "Mango"}, {ID: 2, Flavor: "Lime"}})

		assert.True(t, catalog.ReplaceByID(Flavor{ID: 2, Flavor: "Key Lime"}))
		assert.Equal(t, []string{"Mango", "Key Lime"}, names(catalog.All()))

		assert.False(t, catalog.ReplaceByID(Flavor{ID: 99, Flavor: "Ghost"}))
		assert.Equal(t, 2, catalog.Len())
	})

	t.Run("RemoveByID deletes the matching row", func(t *testing.T) {
		catalog := NewCatalog()
		catalog.SetAll([]Flavor{{ID: 1, Flavor: "Mango"}, {ID: 2, Flavor: "Lime"}})

		assert.True(t, catalog.RemoveByID(1))
		assert.Equal(t, []string{"Lime"}, names(catalog.All()))

		assert.False(t, catalog.RemoveByID(99))
		assert.Equal(t, 1, catalog.Len())
	})
}

func TestCatalog_Sorted(t *testing.T) {
	newCatalog := func() *Catalog {
		catalog := NewCatalog()
		catalog.SetAll([]Flavor{
			{ID: 1, Flavor: "Piña Colada", DateAdded: day(1)},
			{ID: 2, Flavor: "Mango", DateAdded: day(3)},
			{ID: 3, Flavor: "Lime", DateAdded: day(2)},
		})
		return catalog
	}

	t.Run("name ascending is locale aware", func(t *testing.T) {
		catalog := newCatalog()
		sorted := catalog.Sorted(SortNameAsc)
		assert.Equal(t, []string{"Lime", "Mango", "Piña Colada"}, names(sorted))
	})

	t.Run("name descending reverses the ascending order", func(t *testing.T) {
		catalog := newCatalog()
		sorted := catalog.Sorted(SortNameDesc)
		assert.Equal(t, []string{"Piña Colada", "Mango", "Lime"}, names(sorted))
	})

	t.Run("date newest puts the latest first", func(t *testing.T) {
		catalog := newCatalog()
		sorted := catalog.Sorted(SortDateNewest)
		assert.Equal(t, []string{"Mango", "Lime", "Piña Colada"}, names(sorted))
	})

	t.Run("date oldest puts the earliest first", func(t *testing.T) {
		catalog := newCatalog()
		sorted := catalog.Sorted(SortDateOldest)
		assert.Equal(t, []string{"Piña Colada", "Lime", "Mango"}, names(sorted))
	})

	t.Run("date ties keep their original relative order", func(t *testing.T) {
		catalog := NewCatalog()
		catalog.SetAll([]Flavor{
			{ID: 1, Flavor: "First", DateAdded: day(1)},
			{ID: 2, Flavor: "Second", DateAdded: day(1)},
			{ID: 3, Flavor: "Third", DateAdded: day(1)},
		})

		sorted := catalog.Sorted(SortDateNewest)
		assert.Equal(t, []string{"First", "Second", "Third"}, names(sorted))
	})

	t.Run("sorting does not reorder the held list", func(t *testing.T) {
		catalog := newCatalog()
		_ = catalog.Sorted(SortNameAsc)
		assert.Equal(t, []string{"Piña Colada", "Mango", "Lime"}, names(catalog.All()))
	})

	t.Run("sorting a sorted list is idempotent", func(t *testing.T) {
		catalog := newCatalog()
		once := catalog.Sorted(SortNameAsc)

		resorted := NewCatalog()
		resorted.SetAll(once)
		twice := resorted.Sorted(SortNameAsc)

		require.Equal(t, names(once), names(twice))
	})
}
