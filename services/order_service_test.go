package services

import (
	"burger-house/models"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type confirmCall struct {
	Token         string
	PaymentMethod string
	Address       *string
	Total         float64
}

type stubConfirmer struct {
	mu    sync.Mutex
	calls []confirmCall
	err   error
}

func (s *stubConfirmer) Confirm(_ context.Context, token, paymentMethod string, address *string, total float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, confirmCall{token, paymentMethod, address, total})
	return s.err
}

type stubCompany struct {
	info *models.CompanyInfo
	err  error
}

func (s *stubCompany) Get(context.Context) (*models.CompanyInfo, error) {
	return s.info, s.err
}

type stubIdentifiers struct {
	ids models.SessionIdentifiers
}

func (s *stubIdentifiers) Identifiers(_ context.Context, token string) models.SessionIdentifiers {
	ids := s.ids
	ids.SessionToken = token
	return ids
}

type stubExtras struct {
	extras []models.Extra
	err    error
}

func (s *stubExtras) FindAll(context.Context) ([]models.Extra, error) {
	return s.extras, s.err
}

func newTestOrderService(carts *CartService, confirmer *stubConfirmer, webhookURL string, extras []models.Extra) *OrderService {
	var info *models.CompanyInfo
	if webhookURL != "" {
		info = &models.CompanyInfo{Name: "Burger House", WebhookURL: &webhookURL}
	}
	bot := "5511999998888"
	return NewOrderService(
		carts,
		&stubIdentifiers{ids: models.SessionIdentifiers{Bot: &bot}},
		confirmer,
		&stubCompany{info: info},
		&stubExtras{extras: extras},
		nil,
	)
}

func TestValidateCheckout(t *testing.T) {
	svc := newTestOrderService(NewCartService(), &stubConfirmer{}, "", nil)

	valid := models.CheckoutRequest{
		PaymentMethod:  models.PaymentPix,
		DeliveryMethod: models.DeliveryPickup,
		Email:          "a@b.com",
	}

	t.Run("accepts a complete request", func(t *testing.T) {
		assert.NoError(t, svc.Validate(valid, 18.90))
	})

	t.Run("payment and delivery method are required", func(t *testing.T) {
		req := valid
		req.PaymentMethod = ""
		assert.Error(t, svc.Validate(req, 18.90))

		req = valid
		req.DeliveryMethod = ""
		assert.Error(t, svc.Validate(req, 18.90))
	})

	t.Run("delivery requires an address", func(t *testing.T) {
		req := valid
		req.DeliveryMethod = models.DeliveryHome
		req.Address = "   "
		assert.Error(t, svc.Validate(req, 18.90))

		req.Address = "Rua A, 123"
		assert.NoError(t, svc.Validate(req, 18.90))
	})

	t.Run("pix requires an email", func(t *testing.T) {
		req := valid
		req.Email = ""
		assert.Error(t, svc.Validate(req, 18.90))
	})

	t.Run("cash change must cover the total", func(t *testing.T) {
		req := models.CheckoutRequest{
			PaymentMethod:  models.PaymentCash,
			DeliveryMethod: models.DeliveryPickup,
			ChangeAmount:   "15",
		}
		assert.Error(t, svc.Validate(req, 18.90))

		req.ChangeAmount = "18.90"
		assert.NoError(t, svc.Validate(req, 18.90))

		req.ChangeAmount = "50"
		assert.NoError(t, svc.Validate(req, 18.90))

		// No change requested is fine too.
		req.ChangeAmount = ""
		assert.NoError(t, svc.Validate(req, 18.90))
	})
}

func TestSubmitValidationPrecedesSideEffects(t *testing.T) {
	webhookCalls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		webhookCalls++
	}))
	defer server.Close()

	carts := NewCartService()
	carts.AddItem("s1", models.CartItem{Name: "X-BURGUER", Price: 18.90})

	confirmer := &stubConfirmer{}
	svc := newTestOrderService(carts, confirmer, server.URL, nil)

	_, err := svc.Submit(context.Background(), "s1", models.CheckoutRequest{
		PaymentMethod:  "",
		DeliveryMethod: models.DeliveryPickup,
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Zero(t, webhookCalls)
	assert.Empty(t, confirmer.calls)
	assert.Equal(t, 1, carts.ItemCount("s1"), "cart must stay intact on rejection")
}

func TestSubmitDeliveryWithoutAddress(t *testing.T) {
	carts := NewCartService()
	carts.AddItem("s1", models.CartItem{Name: "X-BURGUER", Price: 18.90})

	svc := newTestOrderService(carts, &stubConfirmer{}, "", nil)

	_, err := svc.Submit(context.Background(), "s1", models.CheckoutRequest{
		PaymentMethod:  models.PaymentCard,
		DeliveryMethod: models.DeliveryHome,
		Address:        "",
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, 1, carts.ItemCount("s1"))
}

func TestSubmitSuccess(t *testing.T) {
	var payload models.OrderPayload
	webhookCalls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		webhookCalls++
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
	}))
	defer server.Close()

	carts := NewCartService()
	carts.AddItem("s1", models.CartItem{Name: "X-BURGUER", Price: 18.90})

	confirmer := &stubConfirmer{}
	svc := newTestOrderService(carts, confirmer, server.URL, nil)

	result, err := svc.Submit(context.Background(), "s1", models.CheckoutRequest{
		PaymentMethod:  models.PaymentPix,
		DeliveryMethod: models.DeliveryPickup,
		Email:          "a@b.com",
	})

	require.NoError(t, err)
	assert.InDelta(t, 18.90, result.Total, 0.001)
	assert.Contains(t, result.Message, "X-BURGUER")

	assert.Equal(t, 1, webhookCalls, "exactly one webhook POST")
	assert.InDelta(t, 18.90, payload.PaymentMethod.TotalAmount, 0.001)
	require.NotNil(t, payload.PaymentMethod.Email)
	assert.Equal(t, "a@b.com", *payload.PaymentMethod.Email)
	assert.Nil(t, payload.PaymentMethod.Troco)
	assert.Nil(t, payload.DeliveryMethod.Address)
	require.NotNil(t, payload.Bot)
	assert.Equal(t, "5511999998888", *payload.Bot)
	assert.Equal(t, "s1", payload.SessionToken)
	require.Len(t, payload.ItemsMessage, 1)
	require.Contains(t, payload.ItemsMessage[0], "X-BURGUER")
	assert.InDelta(t, 18.90, payload.ItemsMessage[0]["X-BURGUER"].Preco.Valor, 0.001)

	require.Len(t, confirmer.calls, 1)
	assert.Equal(t, models.PaymentPix, confirmer.calls[0].PaymentMethod)
	assert.Equal(t, "s1", confirmer.calls[0].Token)
	assert.Nil(t, confirmer.calls[0].Address)
	assert.InDelta(t, 18.90, confirmer.calls[0].Total, 0.001)

	assert.Zero(t, carts.ItemCount("s1"), "cart cleared after success")
}

func TestSubmitWithExtrasAndDelivery(t *testing.T) {
	var payload models.OrderPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
	}))
	defer server.Close()

	extras := []models.Extra{
		{ID: "e1", Name: "Bacon", Price: 4.50},
		{ID: "e2", Name: "Cheddar", Price: 3.00},
	}

	carts := NewCartService()
	carts.AddItem("s1", models.CartItem{
		Name:         "X-BURGUER",
		Price:        18.90,
		Extras:       []string{"e1", "e2", "stale"},
		Observations: "sem cebola",
	})

	svc := newTestOrderService(carts, &stubConfirmer{}, server.URL, extras)

	result, err := svc.Submit(context.Background(), "s1", models.CheckoutRequest{
		PaymentMethod:  models.PaymentCash,
		DeliveryMethod: models.DeliveryHome,
		Address:        "Rua A, 123",
		ChangeAmount:   "30",
	})

	require.NoError(t, err)
	assert.InDelta(t, 26.40, result.Total, 0.001)

	detail := payload.ItemsMessage[0]["X-BURGUER"]
	assert.Equal(t, []string{"Bacon", "Cheddar"}, detail.Preco.Extras)
	assert.Equal(t, "sem cebola", detail.Preco.Observacao)
	assert.InDelta(t, 26.40, detail.Preco.Valor, 0.001)

	require.NotNil(t, payload.DeliveryMethod.Address)
	assert.Equal(t, "Rua A, 123", *payload.DeliveryMethod.Address)
	require.NotNil(t, payload.PaymentMethod.Troco)
	assert.InDelta(t, 30, *payload.PaymentMethod.Troco, 0.001)
	assert.Nil(t, payload.PaymentMethod.Email)
}

func TestSubmitBestEffortFailures(t *testing.T) {
	t.Run("order status update failure does not block", func(t *testing.T) {
		carts := NewCartService()
		carts.AddItem("s1", models.CartItem{Name: "X-BURGUER", Price: 18.90})

		confirmer := &stubConfirmer{err: errors.New("db down")}
		svc := newTestOrderService(carts, confirmer, "", nil)

		_, err := svc.Submit(context.Background(), "s1", models.CheckoutRequest{
			PaymentMethod:  models.PaymentCard,
			DeliveryMethod: models.DeliveryPickup,
		})

		require.NoError(t, err)
		assert.Zero(t, carts.ItemCount("s1"))
	})

	t.Run("webhook failure does not block", func(t *testing.T) {
		carts := NewCartService()
		carts.AddItem("s1", models.CartItem{Name: "X-BURGUER", Price: 18.90})

		// Nothing is listening here.
		svc := newTestOrderService(carts, &stubConfirmer{}, "http://127.0.0.1:1/webhook", nil)

		_, err := svc.Submit(context.Background(), "s1", models.CheckoutRequest{
			PaymentMethod:  models.PaymentCard,
			DeliveryMethod: models.DeliveryPickup,
		})

		require.NoError(t, err)
		assert.Zero(t, carts.ItemCount("s1"))
	})
}

func TestSubmitEmptyCart(t *testing.T) {
	svc := newTestOrderService(NewCartService(), &stubConfirmer{}, "", nil)

	_, err := svc.Submit(context.Background(), "s1", models.CheckoutRequest{
		PaymentMethod:  models.PaymentCard,
		DeliveryMethod: models.DeliveryPickup,
	})

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestSubmitInFlightGuard(t *testing.T) {
	carts := NewCartService()
	carts.AddItem("s1", models.CartItem{Name: "X-BURGUER", Price: 18.90})

	svc := newTestOrderService(carts, &stubConfirmer{}, "", nil)

	require.True(t, svc.acquire("s1"))
	_, err := svc.Submit(context.Background(), "s1", models.CheckoutRequest{
		PaymentMethod:  models.PaymentCard,
		DeliveryMethod: models.DeliveryPickup,
	})
	assert.ErrorIs(t, err, ErrSubmissionInFlight)
	assert.Equal(t, 1, carts.ItemCount("s1"))

	svc.release("s1")
	_, err = svc.Submit(context.Background(), "s1", models.CheckoutRequest{
		PaymentMethod:  models.PaymentCard,
		DeliveryMethod: models.DeliveryPickup,
	})
	assert.NoError(t, err)
}
