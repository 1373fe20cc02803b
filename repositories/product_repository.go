package repositories

import (
	"burger-house/config"
	"burger-house/models"
	"context"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

const productColumns = `id, name, description, category_id, price, image, COALESCE(active, true), COALESCE(display_order, 0), created_at, updated_at`

func scanProduct(row interface{ Scan(...any) error }) (models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.Price, &p.Image, &p.Active, &p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// FindActive returns the storefront view: active products only, optionally
// narrowed to one category.
func (r *ProductRepository) FindActive(ctx context.Context, categoryID string) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE active = true`
	args := []interface{}{}

	if categoryID != "" {
		query += ` AND category_id = $1`
		args = append(args, categoryID)
	}
	query += ` ORDER BY display_order NULLS LAST, created_at`

	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY display_order NULLS LAST, created_at`

	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(config.DB.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Create(ctx context.Context, req models.ProductRequest) (*models.Product, error) {
	order, err := nextDisplayOrder(ctx, "products")
	if err != nil {
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	query := `
		INSERT INTO products (name, description, category_id, price, active, display_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + productColumns

	p, err := scanProduct(config.DB.QueryRow(ctx, query,
		req.Name, req.Description, req.CategoryID, req.Price, active, order))
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Update(ctx context.Context, id string, req models.ProductRequest) error {
	query := `
		UPDATE products
		SET name = $1, description = $2, category_id = $3, price = $4,
		    active = COALESCE($5, active), updated_at = now()
		WHERE id = $6
	`
	_, err := config.DB.Exec(ctx, query, req.Name, req.Description, req.CategoryID, req.Price, req.Active, id)
	return err
}

func (r *ProductRepository) UpdateImage(ctx context.Context, id, imageURL string) error {
	_, err := config.DB.Exec(ctx, `UPDATE products SET image = $1, updated_at = now() WHERE id = $2`, imageURL, id)
	return err
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	_, err := config.DB.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	return err
}

func (r *ProductRepository) Reorder(ctx context.Context, id, direction string) error {
	return reorderRow(ctx, "products", id, direction)
}
