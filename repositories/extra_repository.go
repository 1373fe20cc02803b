package repositories

import (
	"burger-house/config"
	"burger-house/models"
	"context"
)

type ExtraRepository struct{}

func NewExtraRepository() *ExtraRepository {
	return &ExtraRepository{}
}

const extraColumns = `id, name, description, price, COALESCE(active, true), COALESCE(display_order, 0), created_at, updated_at`

func (r *ExtraRepository) find(ctx context.Context, query string) ([]models.Extra, error) {
	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	extras := []models.Extra{}
	for rows.Next() {
		var e models.Extra
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.Price, &e.Active, &e.DisplayOrder, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		extras = append(extras, e)
	}
	return extras, rows.Err()
}

// FindActive feeds the storefront extra selector. Deactivated extras stay in
// the table so ids already sitting in a cart still resolve for pricing.
func (r *ExtraRepository) FindActive(ctx context.Context) ([]models.Extra, error) {
	return r.find(ctx, `SELECT `+extraColumns+` FROM extras WHERE active = true ORDER BY display_order NULLS LAST, created_at`)
}

func (r *ExtraRepository) FindAll(ctx context.Context) ([]models.Extra, error) {
	return r.find(ctx, `SELECT `+extraColumns+` FROM extras ORDER BY display_order NULLS LAST, created_at`)
}

func (r *ExtraRepository) Create(ctx context.Context, req models.ExtraRequest) (*models.Extra, error) {
	order, err := nextDisplayOrder(ctx, "extras")
	if err != nil {
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	query := `
		INSERT INTO extras (name, description, price, active, display_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + extraColumns

	var e models.Extra
	err = config.DB.QueryRow(ctx, query, req.Name, req.Description, req.Price, active, order).Scan(
		&e.ID, &e.Name, &e.Description, &e.Price, &e.Active, &e.DisplayOrder, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *ExtraRepository) Update(ctx context.Context, id string, req models.ExtraRequest) error {
	query := `
		UPDATE extras
		SET name = $1, description = $2, price = $3,
		    active = COALESCE($4, active), updated_at = now()
		WHERE id = $5
	`
	_, err := config.DB.Exec(ctx, query, req.Name, req.Description, req.Price, req.Active, id)
	return err
}

func (r *ExtraRepository) Delete(ctx context.Context, id string) error {
	_, err := config.DB.Exec(ctx, `DELETE FROM extras WHERE id = $1`, id)
	return err
}

func (r *ExtraRepository) Reorder(ctx context.Context, id, direction string) error {
	return reorderRow(ctx, "extras", id, direction)
}
