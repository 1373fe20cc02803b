package models

import "time"

const (
	OrderStatusCreating  = "creating"
	OrderStatusConfirmed = "confirmed"
)

const (
	PaymentPix     = "Pix"
	PaymentCash    = "Dinheiro"
	PaymentCard    = "Cartão"
	DeliveryHome   = "delivery"
	DeliveryPickup = "pickup"
)

type Order struct {
	ID              string    `json:"id"`
	SessionToken    string    `json:"session_token"`
	Status          string    `json:"status"`
	PaymentMethod   *string   `json:"payment_method,omitempty"`
	DeliveryAddress *string   `json:"delivery_address,omitempty"`
	TotalPrice      float64   `json:"total_price"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// SessionIdentifiers are the opaque correlation tokens threaded from the
// messaging bot into every order submission.
type SessionIdentifiers struct {
	Bot          *string `json:"bot"`
	Cliente      *string `json:"cliente"`
	Instancia    *string `json:"instancia"`
	SessionToken string  `json:"session_token"`
}

// OrderPayload is the write-once JSON body posted to the merchant webhook.
// Field names (including the accented ones) are part of the wire contract
// consumed by the merchant's automation flow.
type OrderPayload struct {
	ItemsMessage   []map[string]PayloadItem `json:"itemsMessage"`
	PaymentMethod  PayloadPayment           `json:"paymentMethod"`
	DeliveryMethod PayloadDelivery          `json:"deliveryMethod"`
	Bot            *string                  `json:"bot"`
	Cliente        *string                  `json:"cliente"`
	Instancia      *string                  `json:"instancia"`
	SessionToken   string                   `json:"session_token"`
	Timestamp      string                   `json:"timestamp"`
}

type PayloadItem struct {
	Preco PayloadItemPrice `json:"preço"`
}

type PayloadItemPrice struct {
	Valor      float64  `json:"valor"`
	Extras     []string `json:"extras"`
	Observacao string   `json:"observação"`
}

type PayloadPayment struct {
	TotalAmount float64  `json:"totalAmount"`
	Troco       *float64 `json:"troco"`
	Email       *string  `json:"email"`
}

type PayloadDelivery struct {
	Address *string `json:"address"`
}
