package repositories

import (
	"burger-house/config"
	"context"
	"fmt"
)

// DisplayRow is the slice of a catalog row the reorder operation cares about.
type DisplayRow struct {
	ID           string
	DisplayOrder int
}

// PlanReorder picks the pair of rows whose display_order values must swap to
// move id one position in the given direction. rows must already be sorted by
// display order. A move past either end, or an unknown id, returns nil, nil:
// reordering at a boundary is a no-op, not an error.
func PlanReorder(rows []DisplayRow, id, direction string) (*DisplayRow, *DisplayRow) {
	currentIndex := -1
	for i, row := range rows {
		if row.ID == id {
			currentIndex = i
			break
		}
	}
	if currentIndex == -1 {
		return nil, nil
	}

	if (direction == "up" && currentIndex == 0) ||
		(direction == "down" && currentIndex == len(rows)-1) {
		return nil, nil
	}

	swapIndex := currentIndex - 1
	if direction == "down" {
		swapIndex = currentIndex + 1
	}

	current := rows[currentIndex]
	swap := rows[swapIndex]
	return &current, &swap
}

// reorderRow swaps display_order with the adjacent sibling. table is always a
// compile-time constant supplied by the per-entity repositories.
func reorderRow(ctx context.Context, table, id, direction string) error {
	query := fmt.Sprintf(
		`SELECT id, COALESCE(display_order, 0) FROM %s ORDER BY display_order NULLS LAST, created_at`,
		table,
	)

	dbRows, err := config.DB.Query(ctx, query)
	if err != nil {
		return err
	}
	defer dbRows.Close()

	rows := []DisplayRow{}
	for dbRows.Next() {
		var row DisplayRow
		if err := dbRows.Scan(&row.ID, &row.DisplayOrder); err != nil {
			return err
		}
		rows = append(rows, row)
	}
	if err := dbRows.Err(); err != nil {
		return err
	}

	current, swap := PlanReorder(rows, id, direction)
	if current == nil {
		return nil
	}

	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	update := fmt.Sprintf(`UPDATE %s SET display_order = $1, updated_at = now() WHERE id = $2`, table)

	if _, err := tx.Exec(ctx, update, swap.DisplayOrder, current.ID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, update, current.DisplayOrder, swap.ID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// nextDisplayOrder computes max+1 so freshly created rows land at the end of
// the admin-controlled sort.
func nextDisplayOrder(ctx context.Context, table string) (int, error) {
	query := fmt.Sprintf(`SELECT COALESCE(MAX(display_order), 0) + 1 FROM %s`, table)

	var order int
	if err := config.DB.QueryRow(ctx, query).Scan(&order); err != nil {
		return 0, err
	}
	return order, nil
}
