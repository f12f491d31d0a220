package checkout

import (
	"testing"

	"storefront/internal/cart"

	"github.com/stretchr/testify/assert"
)

func testLines() []cart.Line {
	return []cart.Line{
		{CartID: "a", Price: 100, Quantity: 2},
		{CartID: "b", Price: 50, Quantity: 1},
		{CartID: "c", Price: 250, Quantity: 4},
	}
}

func TestNewSelection(t *testing.T) {
	sel := NewSelection(testLines())

	assert.True(t, sel.AllSelected)
	assert.Len(t, sel.Picked, 3)
	for id, picked := range sel.Picked {
		assert.True(t, picked, "line %s should start selected", id)
	}
}

func TestSelection_ToggleAll(t *testing.T) {
	sel := NewSelection(testLines())

	sel.ToggleAll()
	assert.False(t, sel.AllSelected)
	for _, picked := range sel.Picked {
		assert.False(t, picked)
	}

	sel.ToggleAll()
	assert.True(t, sel.AllSelected)
	for _, picked := range sel.Picked {
		assert.True(t, picked)
	}
}

func TestSelection_Toggle(t *testing.T) {
	sel := NewSelection(testLines())

	t.Run("UnselectingOneClearsAllFlag", func(t *testing.T) {
		sel.Toggle("b")
		assert.False(t, sel.Picked["b"])
		assert.False(t, sel.AllSelected)
	})

	t.Run("ReselectingRestoresAllFlag", func(t *testing.T) {
		sel.Toggle("b")
		assert.True(t, sel.Picked["b"])
		assert.True(t, sel.AllSelected)
	})

	t.Run("UnknownIDIsIgnored", func(t *testing.T) {
		before := len(sel.Picked)
		sel.Toggle("nope")
		assert.Len(t, sel.Picked, before)
	})
}

func TestSelection_Sync(t *testing.T) {
	lines := testLines()
	sel := NewSelection(lines)
	sel.Toggle("b")

	t.Run("PrunesRemovedLines", func(t *testing.T) {
		// Line "c" was removed from the cart; its stale entry must go.
		sel.Sync(lines[:2])
		_, ok := sel.Picked["c"]
		assert.False(t, ok)
	})

	t.Run("NewLinesDefaultSelected", func(t *testing.T) {
		withNew := append(lines[:2], cart.Line{CartID: "d", Price: 10, Quantity: 1})
		sel.Sync(withNew)
		assert.True(t, sel.Picked["d"])
		// "b" keeps its unselected state across the sync.
		assert.False(t, sel.Picked["b"])
	})
}

func TestSelection_SelectedIDs(t *testing.T) {
	lines := testLines()
	sel := NewSelection(lines)
	sel.Toggle("b")

	ids := sel.SelectedIDs(lines)
	assert.Equal(t, []string{"a", "c"}, ids)
}

func TestSelection_Reset(t *testing.T) {
	lines := testLines()
	sel := NewSelection(lines)
	sel.Reset()

	assert.False(t, sel.AllSelected)
	for _, picked := range sel.Picked {
		assert.False(t, picked)
	}

	// Syncing against the surviving lines keeps them unselected instead of
	// defaulting them back on.
	sel.Sync(lines)
	assert.False(t, sel.AllSelected)
	for _, picked := range sel.Picked {
		assert.False(t, picked)
	}
}

func TestSelectedSubtotal(t *testing.T) {
	lines := []cart.Line{
		{CartID: "a", Price: 100, Quantity: 2},
		{CartID: "b", Price: 50, Quantity: 1},
	}

	t.Run("ExcludesUnselectedLines", func(t *testing.T) {
		sel := NewSelection(lines)
		sel.Toggle("b")

		assert.Equal(t, 200.0, SelectedSubtotal(lines, sel))
	})

	t.Run("AllSelected", func(t *testing.T) {
		sel := NewSelection(lines)
		assert.Equal(t, 250.0, SelectedSubtotal(lines, sel))
	})

	t.Run("NoneSelected", func(t *testing.T) {
		sel := NewSelection(lines)
		sel.ToggleAll()
		assert.Equal(t, 0.0, SelectedSubtotal(lines, sel))
	})
}
