package services

import (
	"burger-house/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartAddItem(t *testing.T) {
	carts := NewCartService()

	t.Run("assigns fresh ids", func(t *testing.T) {
		a := carts.AddItem("s1", models.CartItem{Name: "X-BURGUER", Price: 18.90})
		b := carts.AddItem("s1", models.CartItem{Name: "X-BURGUER", Price: 18.90})

		assert.NotEmpty(t, a.ID)
		assert.NotEmpty(t, b.ID)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("same product twice yields two lines", func(t *testing.T) {
		assert.Equal(t, 2, carts.ItemCount("s1"))
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		assert.Zero(t, carts.ItemCount("s2"))
	})
}

func TestCartRemoveItem(t *testing.T) {
	carts := NewCartService()
	a := carts.AddItem("s1", models.CartItem{Name: "A", Price: 1})
	carts.AddItem("s1", models.CartItem{Name: "B", Price: 2})

	t.Run("removes matching line", func(t *testing.T) {
		carts.RemoveItem("s1", a.ID)
		assert.Equal(t, 1, carts.ItemCount("s1"))
		assert.Equal(t, "B", carts.Items("s1")[0].Name)
	})

	t.Run("missing id is a no-op", func(t *testing.T) {
		carts.RemoveItem("s1", "does-not-exist")
		carts.RemoveItem("s1", a.ID)
		assert.Equal(t, 1, carts.ItemCount("s1"))
	})
}

func TestCartUpdateItem(t *testing.T) {
	carts := NewCartService()
	item := carts.AddItem("s1", models.CartItem{Name: "X-BURGUER", Price: 18.90})

	t.Run("merges observations", func(t *testing.T) {
		obs := "sem cebola"
		carts.UpdateItem("s1", item.ID, &obs, nil)

		got := carts.Items("s1")[0]
		assert.Equal(t, "sem cebola", got.Observations)
		assert.Empty(t, got.Extras)
	})

	t.Run("merges extras without touching observations", func(t *testing.T) {
		extras := []string{"e1", "e2"}
		carts.UpdateItem("s1", item.ID, nil, &extras)

		got := carts.Items("s1")[0]
		assert.Equal(t, "sem cebola", got.Observations)
		assert.Equal(t, []string{"e1", "e2"}, got.Extras)
	})

	t.Run("missing id changes nothing", func(t *testing.T) {
		obs := "ghost"
		carts.UpdateItem("s1", "does-not-exist", &obs, nil)

		assert.Equal(t, 1, carts.ItemCount("s1"))
		assert.Equal(t, "sem cebola", carts.Items("s1")[0].Observations)
	})
}

func TestCartCountInvariant(t *testing.T) {
	// Count equals adds minus successful removes, whatever the interleaving.
	carts := NewCartService()

	ids := []string{}
	for i := 0; i < 5; i++ {
		item := carts.AddItem("s1", models.CartItem{Name: "item", Price: 1})
		ids = append(ids, item.ID)
	}
	carts.RemoveItem("s1", ids[0])
	carts.RemoveItem("s1", ids[0]) // already gone
	carts.RemoveItem("s1", "never-existed")
	obs := "x"
	carts.UpdateItem("s1", "never-existed", &obs, nil)
	carts.RemoveItem("s1", ids[3])

	assert.Equal(t, 3, carts.ItemCount("s1"))
}

func TestCartClear(t *testing.T) {
	carts := NewCartService()
	carts.AddItem("s1", models.CartItem{Name: "A", Price: 1})
	carts.AddItem("s1", models.CartItem{Name: "B", Price: 2})

	carts.ClearCart("s1")

	assert.Zero(t, carts.ItemCount("s1"))
	assert.Empty(t, carts.Items("s1"))
}

func TestCartItemsReturnsCopy(t *testing.T) {
	carts := NewCartService()
	carts.AddItem("s1", models.CartItem{Name: "A", Price: 1})

	items := carts.Items("s1")
	items[0].Name = "mutated"

	assert.Equal(t, "A", carts.Items("s1")[0].Name)
}
