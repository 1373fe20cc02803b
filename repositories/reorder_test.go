package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderedRows() []DisplayRow {
	return []DisplayRow{
		{ID: "a", DisplayOrder: 1},
		{ID: "b", DisplayOrder: 2},
		{ID: "c", DisplayOrder: 3},
	}
}

func TestPlanReorder(t *testing.T) {
	t.Run("up at the first position is a no-op", func(t *testing.T) {
		current, swap := PlanReorder(orderedRows(), "a", "up")
		assert.Nil(t, current)
		assert.Nil(t, swap)
	})

	t.Run("down at the last position is a no-op", func(t *testing.T) {
		current, swap := PlanReorder(orderedRows(), "c", "down")
		assert.Nil(t, current)
		assert.Nil(t, swap)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		current, swap := PlanReorder(orderedRows(), "zzz", "up")
		assert.Nil(t, current)
		assert.Nil(t, swap)
	})

	t.Run("up swaps with the previous sibling", func(t *testing.T) {
		current, swap := PlanReorder(orderedRows(), "b", "up")
		require.NotNil(t, current)
		require.NotNil(t, swap)
		assert.Equal(t, "b", current.ID)
		assert.Equal(t, "a", swap.ID)
	})

	t.Run("down swaps with the next sibling", func(t *testing.T) {
		current, swap := PlanReorder(orderedRows(), "b", "down")
		require.NotNil(t, current)
		require.NotNil(t, swap)
		assert.Equal(t, "b", current.ID)
		assert.Equal(t, "c", swap.ID)
	})

	t.Run("exactly two rows are involved", func(t *testing.T) {
		rows := orderedRows()
		current, swap := PlanReorder(rows, "a", "down")
		require.NotNil(t, current)

		touched := map[string]bool{current.ID: true, swap.ID: true}
		for _, row := range rows {
			if !touched[row.ID] {
				assert.Equal(t, "c", row.ID)
			}
		}
	})

	t.Run("empty list", func(t *testing.T) {
		current, swap := PlanReorder(nil, "a", "up")
		assert.Nil(t, current)
		assert.Nil(t, swap)
	})
}
