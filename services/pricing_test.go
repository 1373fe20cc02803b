package services

import (
	"burger-house/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testExtras() []models.Extra {
	return []models.Extra{
		{ID: "e1", Name: "Bacon", Price: 4.50},
		{ID: "e2", Name: "Cheddar", Price: 3.00},
		{ID: "e3", Name: "Ovo", Price: 2.00},
	}
}

func TestExtrasPrice(t *testing.T) {
	extras := testExtras()

	t.Run("sums matched extras", func(t *testing.T) {
		assert.InDelta(t, 7.50, ExtrasPrice([]string{"e1", "e2"}, extras), 0.001)
	})

	t.Run("missing ids contribute zero", func(t *testing.T) {
		assert.InDelta(t, 4.50, ExtrasPrice([]string{"e1", "gone"}, extras), 0.001)
		assert.Zero(t, ExtrasPrice([]string{"gone"}, extras))
	})

	t.Run("empty selection", func(t *testing.T) {
		assert.Zero(t, ExtrasPrice(nil, extras))
		assert.Zero(t, ExtrasPrice([]string{"e1"}, nil))
	})
}

func TestItemTotalPrice(t *testing.T) {
	extras := testExtras()

	item := models.CartItem{Name: "X-BURGUER", Price: 18.90, Extras: []string{"e1", "e3"}}
	assert.InDelta(t, 25.40, ItemTotalPrice(item, extras), 0.001)

	plain := models.CartItem{Name: "X-SALADA", Price: 20.00}
	assert.InDelta(t, 20.00, ItemTotalPrice(plain, extras), 0.001)
}

func TestOrderTotal(t *testing.T) {
	extras := testExtras()

	items := []models.CartItem{
		{Name: "X-BURGUER", Price: 18.90, Extras: []string{"e1"}},
		{Name: "X-SALADA", Price: 20.00, Extras: []string{"e2", "missing"}},
		{Name: "REFRIGERANTE", Price: 6.00},
	}

	// 18.90+4.50 + 20.00+3.00 + 6.00
	assert.InDelta(t, 52.40, OrderTotal(items, extras), 0.001)
	assert.Zero(t, OrderTotal(nil, extras))
}

func TestExtraNames(t *testing.T) {
	extras := testExtras()

	t.Run("resolves names in selection order", func(t *testing.T) {
		assert.Equal(t, []string{"Cheddar", "Bacon"}, ExtraNames([]string{"e2", "e1"}, extras))
	})

	t.Run("skips stale ids", func(t *testing.T) {
		assert.Equal(t, []string{"Bacon"}, ExtraNames([]string{"gone", "e1"}, extras))
		assert.Empty(t, ExtraNames([]string{"gone"}, extras))
	})
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "18,90", FormatBRL(18.9))
	assert.Equal(t, "0,00", FormatBRL(0))
	assert.Equal(t, "1234,50", FormatBRL(1234.5))
}
