package repositories

import (
	"burger-house/config"
	"burger-house/models"
	"context"
)

type CategoryRepository struct{}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	query := `
		SELECT id, name, description, COALESCE(display_order, 0), created_at, updated_at
		FROM categories
		ORDER BY display_order NULLS LAST, created_at
	`

	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Description, &cat.DisplayOrder, &cat.CreatedAt, &cat.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) Create(ctx context.Context, req models.CategoryRequest) (*models.Category, error) {
	order, err := nextDisplayOrder(ctx, "categories")
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO categories (name, description, display_order)
		VALUES ($1, $2, $3)
		RETURNING id, name, description, display_order, created_at, updated_at
	`

	var cat models.Category
	err = config.DB.QueryRow(ctx, query, req.Name, req.Description, order).Scan(
		&cat.ID, &cat.Name, &cat.Description, &cat.DisplayOrder, &cat.CreatedAt, &cat.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) Update(ctx context.Context, id string, req models.CategoryRequest) error {
	query := `
		UPDATE categories
		SET name = $1, description = $2, updated_at = now()
		WHERE id = $3
	`
	_, err := config.DB.Exec(ctx, query, req.Name, req.Description, id)
	return err
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	_, err := config.DB.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	return err
}

func (r *CategoryRepository) Reorder(ctx context.Context, id, direction string) error {
	return reorderRow(ctx, "categories", id, direction)
}
