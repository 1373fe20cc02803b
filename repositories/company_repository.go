package repositories

import (
	"burger-house/config"
	"burger-house/models"
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

type CompanyRepository struct{}

func NewCompanyRepository() *CompanyRepository {
	return &CompanyRepository{}
}

const companyColumns = `id, name, description, phone, email, address, logo_url, banner_url, opening_hours, social_media, webhook_url, created_at, updated_at`

// Get returns the singleton company row, or nil when none has been configured
// yet. Missing company info is a normal state for a fresh install.
func (r *CompanyRepository) Get(ctx context.Context) (*models.CompanyInfo, error) {
	query := `SELECT ` + companyColumns + ` FROM company_info ORDER BY created_at LIMIT 1`

	var info models.CompanyInfo
	err := config.DB.QueryRow(ctx, query).Scan(
		&info.ID, &info.Name, &info.Description, &info.Phone, &info.Email, &info.Address,
		&info.LogoURL, &info.BannerURL, &info.OpeningHours, &info.SocialMedia, &info.WebhookURL,
		&info.CreatedAt, &info.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// Upsert creates the singleton on first save and patches it afterwards.
func (r *CompanyRepository) Upsert(ctx context.Context, req models.CompanyInfoRequest) (*models.CompanyInfo, error) {
	existing, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}

	var row pgx.Row
	if existing == nil {
		query := `
			INSERT INTO company_info (name, description, phone, email, address, logo_url, banner_url, opening_hours, social_media, webhook_url)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING ` + companyColumns
		row = config.DB.QueryRow(ctx, query,
			req.Name, req.Description, req.Phone, req.Email, req.Address,
			req.LogoURL, req.BannerURL, req.OpeningHours, req.SocialMedia, req.WebhookURL)
	} else {
		query := `
			UPDATE company_info
			SET name = $1, description = $2, phone = $3, email = $4, address = $5,
			    logo_url = $6, banner_url = $7, opening_hours = $8, social_media = $9,
			    webhook_url = $10, updated_at = now()
			WHERE id = $11
			RETURNING ` + companyColumns
		row = config.DB.QueryRow(ctx, query,
			req.Name, req.Description, req.Phone, req.Email, req.Address,
			req.LogoURL, req.BannerURL, req.OpeningHours, req.SocialMedia, req.WebhookURL,
			existing.ID)
	}

	var info models.CompanyInfo
	err = row.Scan(
		&info.ID, &info.Name, &info.Description, &info.Phone, &info.Email, &info.Address,
		&info.LogoURL, &info.BannerURL, &info.OpeningHours, &info.SocialMedia, &info.WebhookURL,
		&info.CreatedAt, &info.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &info, nil
}
