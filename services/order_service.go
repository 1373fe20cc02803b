package services

import (
	"burger-house/models"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ValidationError is a user-correctable checkout problem. The message is
// shown to the shopper as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ErrSubmissionInFlight guards against double-clicking submit: one attempt
// per session at a time, no idempotency keys.
var ErrSubmissionInFlight = errors.New("order submission already in progress")

// OrderConfirmer is the slice of the order repository the pipeline needs.
type OrderConfirmer interface {
	Confirm(ctx context.Context, token, paymentMethod string, deliveryAddress *string, total float64) error
}

// CompanyProvider supplies the merchant configuration, including the webhook URL.
type CompanyProvider interface {
	Get(ctx context.Context) (*models.CompanyInfo, error)
}

// IdentifierSource supplies the correlation identifiers resolved for a session.
type IdentifierSource interface {
	Identifiers(ctx context.Context, token string) models.SessionIdentifiers
}

// ExtrasSource supplies the current add-on price list.
type ExtrasSource interface {
	FindAll(ctx context.Context) ([]models.Extra, error)
}

type SubmitResult struct {
	Total   float64              `json:"total"`
	Message string               `json:"message"`
	Payload *models.OrderPayload `json:"payload"`
}

// OrderService drives checkout: validate, build the write-once payload,
// best-effort persist the order status, fire the merchant webhook, clear the
// cart.
type OrderService struct {
	carts    *CartService
	sessions IdentifierSource
	orders   OrderConfirmer
	company  CompanyProvider
	extras   ExtrasSource
	mail     *EmailService
	client   *http.Client

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewOrderService(carts *CartService, sessions IdentifierSource, orders OrderConfirmer, company CompanyProvider, extras ExtrasSource, mail *EmailService) *OrderService {
	return &OrderService{
		carts:    carts,
		sessions: sessions,
		orders:   orders,
		company:  company,
		extras:   extras,
		mail:     mail,
		client:   &http.Client{Timeout: 15 * time.Second},
		inFlight: make(map[string]bool),
	}
}

// Validate applies the checkout rules in order, short-circuiting on the first
// failure. It has no side effects.
func (s *OrderService) Validate(req models.CheckoutRequest, total float64) error {
	if req.PaymentMethod == "" || req.DeliveryMethod == "" {
		return &ValidationError{Message: "Por favor, selecione a forma de pagamento e entrega."}
	}

	if req.DeliveryMethod == models.DeliveryHome && trimEmpty(req.Address) {
		return &ValidationError{Message: "Por favor, informe o endereço para entrega."}
	}

	if req.PaymentMethod == models.PaymentPix && trimEmpty(req.Email) {
		return &ValidationError{Message: "Por favor, informe o email para o Pix."}
	}

	if req.PaymentMethod == models.PaymentCash && req.ChangeAmount != "" {
		change, err := strconv.ParseFloat(req.ChangeAmount, 64)
		if err != nil {
			return &ValidationError{Message: "Valor de troco inválido."}
		}
		if change < total {
			return &ValidationError{Message: "O valor do troco deve ser maior ou igual ao total do pedido."}
		}
	}

	return nil
}

// Submit runs the whole pipeline for one checkout. The remote status update
// and the webhook POST are both best-effort: their failures are logged, never
// surfaced, and never block order completion. Only an empty cart or a payload
// construction failure leaves the cart intact for retry.
func (s *OrderService) Submit(ctx context.Context, token string, req models.CheckoutRequest) (*SubmitResult, error) {
	if !s.acquire(token) {
		return nil, ErrSubmissionInFlight
	}
	defer s.release(token)

	items := s.carts.Items(token)
	if len(items) == 0 {
		return nil, &ValidationError{Message: "Seu carrinho está vazio."}
	}

	allExtras, err := s.extras.FindAll(ctx)
	if err != nil {
		// Stale ids price at zero; an empty list keeps base prices intact.
		log.Println("Failed to load extras for pricing:", err)
		allExtras = []models.Extra{}
	}

	total := OrderTotal(items, allExtras)

	if err := s.Validate(req, total); err != nil {
		return nil, err
	}

	ids := s.sessions.Identifiers(ctx, token)
	payload := BuildOrderPayload(items, allExtras, req, ids)
	message := FormatOrderMessage(items, allExtras, req, ids.Bot)

	// Status update first, webhook second; neither gates the other.
	if s.orders != nil {
		var address *string
		if req.DeliveryMethod == models.DeliveryHome {
			address = &req.Address
		}
		if err := s.orders.Confirm(ctx, token, req.PaymentMethod, address, total); err != nil {
			log.Println("Failed to update order status:", err)
		}
	}

	s.dispatchWebhook(ctx, payload)

	if s.mail != nil && req.PaymentMethod == models.PaymentPix && req.Email != "" {
		if err := s.mail.SendOrderConfirmation(req.Email, message, total); err != nil {
			log.Println("Failed to send confirmation email:", err)
		}
	}

	log.Println("Order submitted:\n" + message)

	s.carts.ClearCart(token)

	return &SubmitResult{
		Total:   total,
		Message: message,
		Payload: payload,
	}, nil
}

func (s *OrderService) dispatchWebhook(ctx context.Context, payload *models.OrderPayload) {
	info, err := s.company.Get(ctx)
	if err != nil {
		log.Println("Failed to load company info for webhook:", err)
		return
	}
	if info == nil || info.WebhookURL == nil || *info.WebhookURL == "" {
		log.Println("No webhook URL configured")
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Println("Failed to encode webhook payload:", err)
		return
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, *info.WebhookURL, bytes.NewReader(body))
	if err != nil {
		log.Println("Failed to build webhook request:", err)
		return
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		log.Println("Failed to deliver webhook:", err)
		return
	}
	defer resp.Body.Close()

	log.Printf("Webhook delivered to %s, status: %d", *info.WebhookURL, resp.StatusCode)
}

func (s *OrderService) acquire(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[token] {
		return false
	}
	s.inFlight[token] = true
	return true
}

func (s *OrderService) release(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, token)
}

func trimEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// BuildOrderPayload assembles the write-once JSON structure posted to the
// merchant webhook. Extra names and prices are resolved at current catalog
// values.
func BuildOrderPayload(items []models.CartItem, allExtras []models.Extra, req models.CheckoutRequest, ids models.SessionIdentifiers) *models.OrderPayload {
	itemsMessage := make([]map[string]models.PayloadItem, 0, len(items))
	for _, item := range items {
		itemsMessage = append(itemsMessage, map[string]models.PayloadItem{
			item.Name: {
				Preco: models.PayloadItemPrice{
					Valor:      ItemTotalPrice(item, allExtras),
					Extras:     ExtraNames(item.Extras, allExtras),
					Observacao: item.Observations,
				},
			},
		})
	}

	var troco *float64
	if req.PaymentMethod == models.PaymentCash && req.ChangeAmount != "" {
		if change, err := strconv.ParseFloat(req.ChangeAmount, 64); err == nil {
			troco = &change
		}
	}

	var email *string
	if req.PaymentMethod == models.PaymentPix {
		email = &req.Email
	}

	var address *string
	if req.DeliveryMethod == models.DeliveryHome {
		address = &req.Address
	}

	return &models.OrderPayload{
		ItemsMessage: itemsMessage,
		PaymentMethod: models.PayloadPayment{
			TotalAmount: OrderTotal(items, allExtras),
			Troco:       troco,
			Email:       email,
		},
		DeliveryMethod: models.PayloadDelivery{Address: address},
		Bot:            ids.Bot,
		Cliente:        ids.Cliente,
		Instancia:      ids.Instancia,
		SessionToken:   ids.SessionToken,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}
}

// FormatOrderMessage renders the human-readable summary forwarded to the
// merchant's chat channel.
func FormatOrderMessage(items []models.CartItem, allExtras []models.Extra, req models.CheckoutRequest, bot *string) string {
	var b bytes.Buffer

	b.WriteString("🍔 NOVO PEDIDO\n\n")

	for _, item := range items {
		b.WriteString("• " + item.Name)

		if names := ExtraNames(item.Extras, allExtras); len(names) > 0 {
			b.WriteString(" (+ " + strings.Join(names, ", ") + ")")
		}
		if item.Observations != "" {
			b.WriteString(" - Obs: " + item.Observations)
		}
		b.WriteString(" - R$ " + FormatBRL(ItemTotalPrice(item, allExtras)) + "\n")
	}

	if req.DeliveryMethod == models.DeliveryHome {
		b.WriteString("\n📍 Entrega: Entregar\n")
		b.WriteString("📌 Endereço: " + req.Address + "\n")
	} else {
		b.WriteString("\n📍 Entrega: Retirar na loja\n")
	}

	b.WriteString("💳 Pagamento: " + req.PaymentMethod + "\n")

	if req.PaymentMethod == models.PaymentPix {
		b.WriteString("📧 Email: " + req.Email + "\n")
	}
	if req.PaymentMethod == models.PaymentCash && req.ChangeAmount != "" {
		if change, err := strconv.ParseFloat(req.ChangeAmount, 64); err == nil {
			b.WriteString("💰 Troco para: R$ " + FormatBRL(change) + "\n")
		}
	}
	if bot != nil && *bot != "" {
		b.WriteString("👤 Bot: " + *bot + "\n")
	}

	b.WriteString("\n💰 Total: R$ " + FormatBRL(OrderTotal(items, allExtras)))

	return b.String()
}
