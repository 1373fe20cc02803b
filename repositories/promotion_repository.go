package repositories

import (
	"burger-house/config"
	"burger-house/models"
	"context"
	"time"
)

type PromotionRepository struct{}

func NewPromotionRepository() *PromotionRepository {
	return &PromotionRepository{}
}

const promotionColumns = `id, name, description, price, image, COALESCE(active, true), valid_until, created_at, updated_at`

func (r *PromotionRepository) find(ctx context.Context, query string, args ...interface{}) ([]models.Promotion, error) {
	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	promotions := []models.Promotion{}
	for rows.Next() {
		var p models.Promotion
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Image, &p.Active, &p.ValidUntil, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		promotions = append(promotions, p)
	}
	return promotions, rows.Err()
}

// FindCurrent returns active promotions still inside their validity window.
func (r *PromotionRepository) FindCurrent(ctx context.Context) ([]models.Promotion, error) {
	query := `
		SELECT ` + promotionColumns + `
		FROM promotions
		WHERE active = true AND (valid_until IS NULL OR valid_until >= $1)
		ORDER BY created_at DESC
	`
	return r.find(ctx, query, time.Now())
}

func (r *PromotionRepository) FindAll(ctx context.Context) ([]models.Promotion, error) {
	return r.find(ctx, `SELECT `+promotionColumns+` FROM promotions ORDER BY created_at DESC`)
}

func (r *PromotionRepository) Create(ctx context.Context, req models.PromotionRequest, validUntil *time.Time) (*models.Promotion, error) {
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	query := `
		INSERT INTO promotions (name, description, price, active, valid_until)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + promotionColumns

	var p models.Promotion
	err := config.DB.QueryRow(ctx, query, req.Name, req.Description, req.Price, active, validUntil).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Image, &p.Active, &p.ValidUntil, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PromotionRepository) Update(ctx context.Context, id string, req models.PromotionRequest, validUntil *time.Time) error {
	query := `
		UPDATE promotions
		SET name = $1, description = $2, price = $3,
		    active = COALESCE($4, active), valid_until = $5, updated_at = now()
		WHERE id = $6
	`
	_, err := config.DB.Exec(ctx, query, req.Name, req.Description, req.Price, req.Active, validUntil, id)
	return err
}

func (r *PromotionRepository) UpdateImage(ctx context.Context, id, imageURL string) error {
	_, err := config.DB.Exec(ctx, `UPDATE promotions SET image = $1, updated_at = now() WHERE id = $2`, imageURL, id)
	return err
}

func (r *PromotionRepository) Delete(ctx context.Context, id string) error {
	_, err := config.DB.Exec(ctx, `DELETE FROM promotions WHERE id = $1`, id)
	return err
}
