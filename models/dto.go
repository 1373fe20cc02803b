package models

import "encoding/json"

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AddCartItemRequest struct {
	Name         string   `json:"name" binding:"required"`
	Price        float64  `json:"price" binding:"required,gte=0"`
	Image        string   `json:"image"`
	Observations string   `json:"observations"`
	Extras       []string `json:"extras"`
}

// UpdateCartItemRequest merges into an existing line; nil fields are left
// untouched.
type UpdateCartItemRequest struct {
	Observations *string   `json:"observations"`
	Extras       *[]string `json:"extras"`
}

type CheckoutRequest struct {
	PaymentMethod  string `json:"payment_method"`
	DeliveryMethod string `json:"delivery_method"`
	Address        string `json:"address"`
	Email          string `json:"email"`
	ChangeAmount   string `json:"change_amount"`
}

type CategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	CategoryID  *string `json:"category_id"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Active      *bool   `json:"active"`
}

type ExtraRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
	Active      *bool   `json:"active"`
}

type PromotionRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Active      *bool   `json:"active"`
	ValidUntil  *string `json:"valid_until"`
}

type CompanyInfoRequest struct {
	Name         string          `json:"name" binding:"required"`
	Description  *string         `json:"description"`
	Phone        *string         `json:"phone"`
	Email        *string         `json:"email"`
	Address      *string         `json:"address"`
	LogoURL      *string         `json:"logo_url"`
	BannerURL    *string         `json:"banner_url"`
	OpeningHours json.RawMessage `json:"opening_hours"`
	SocialMedia  json.RawMessage `json:"social_media"`
	WebhookURL   *string         `json:"webhook_url"`
}

type ReorderRequest struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

type UpdateUserRequest struct {
	Role     *string `json:"role"`
	Status   *string `json:"status"`
	UserType *string `json:"user_type"`
}
