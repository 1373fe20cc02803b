package services

import (
	"burger-house/models"
	"fmt"
	"strings"
)

// ExtrasPrice sums the prices of the matched extras. Ids that no longer
// resolve (extra removed or deactivated after being added to a cart)
// contribute zero instead of failing the whole calculation.
func ExtrasPrice(extraIDs []string, allExtras []models.Extra) float64 {
	total := 0.0
	for _, id := range extraIDs {
		for _, extra := range allExtras {
			if extra.ID == id {
				total += extra.Price
				break
			}
		}
	}
	return total
}

// ItemTotalPrice is the line total: captured unit price plus selected extras.
func ItemTotalPrice(item models.CartItem, allExtras []models.Extra) float64 {
	return item.Price + ExtrasPrice(item.Extras, allExtras)
}

// OrderTotal sums line totals over the whole cart.
func OrderTotal(items []models.CartItem, allExtras []models.Extra) float64 {
	total := 0.0
	for _, item := range items {
		total += ItemTotalPrice(item, allExtras)
	}
	return total
}

// ExtraNames resolves extra ids to display names, skipping stale ids.
func ExtraNames(extraIDs []string, allExtras []models.Extra) []string {
	names := []string{}
	for _, id := range extraIDs {
		for _, extra := range allExtras {
			if extra.ID == id {
				names = append(names, extra.Name)
				break
			}
		}
	}
	return names
}

// FormatBRL renders an amount the Brazilian way: two decimals, comma separator.
func FormatBRL(amount float64) string {
	return strings.ReplaceAll(fmt.Sprintf("%.2f", amount), ".", ",")
}
