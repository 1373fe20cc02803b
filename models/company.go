package models

import (
	"encoding/json"
	"time"
)

// CompanyInfo is a singleton row: storefront display data plus the merchant
// webhook that receives submitted orders.
type CompanyInfo struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  *string         `json:"description,omitempty"`
	Phone        *string         `json:"phone,omitempty"`
	Email        *string         `json:"email,omitempty"`
	Address      *string         `json:"address,omitempty"`
	LogoURL      *string         `json:"logo_url,omitempty"`
	BannerURL    *string         `json:"banner_url,omitempty"`
	OpeningHours json.RawMessage `json:"opening_hours,omitempty"`
	SocialMedia  json.RawMessage `json:"social_media,omitempty"`
	WebhookURL   *string         `json:"webhook_url,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
