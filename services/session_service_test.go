package services

import (
	"burger-house/models"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrderFinder struct {
	order *models.Order
	err   error
	calls []string
}

func (s *stubOrderFinder) FindOrCreateBySessionToken(_ context.Context, token string) (*models.Order, error) {
	s.calls = append(s.calls, token)
	return s.order, s.err
}

// Redis is nil in these tests: the resolver must still produce usable
// identifiers from the URL alone.
func TestSessionResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps the URL token", func(t *testing.T) {
		finder := &stubOrderFinder{order: &models.Order{ID: "o1", SessionToken: "tok-1", Status: models.OrderStatusCreating}}
		svc := NewSessionService(nil, finder, time.Hour)

		ids, order := svc.Resolve(ctx, SessionParams{SessionToken: "tok-1"})

		assert.Equal(t, "tok-1", ids.SessionToken)
		require.NotNil(t, order)
		assert.Equal(t, "o1", order.ID)
		assert.Equal(t, []string{"tok-1"}, finder.calls)
	})

	t.Run("generates a token when none is supplied", func(t *testing.T) {
		svc := NewSessionService(nil, &stubOrderFinder{order: &models.Order{ID: "o2"}}, time.Hour)

		ids, _ := svc.Resolve(ctx, SessionParams{})

		assert.NotEmpty(t, ids.SessionToken, "correlation must never fail for lack of a token")
	})

	t.Run("normalizes the bot identifier to digits", func(t *testing.T) {
		svc := NewSessionService(nil, &stubOrderFinder{}, time.Hour)

		ids, _ := svc.Resolve(ctx, SessionParams{
			SessionToken: "tok-1",
			Bot:          "+55 (11) 99999-8888",
			Cliente:      "maria",
			Instancia:    "inst-1",
		})

		require.NotNil(t, ids.Bot)
		assert.Equal(t, "5511999998888", *ids.Bot)
		require.NotNil(t, ids.Cliente)
		assert.Equal(t, "maria", *ids.Cliente)
		require.NotNil(t, ids.Instancia)
		assert.Equal(t, "inst-1", *ids.Instancia)
	})

	t.Run("absent identifiers stay nil", func(t *testing.T) {
		svc := NewSessionService(nil, &stubOrderFinder{}, time.Hour)

		ids, _ := svc.Resolve(ctx, SessionParams{SessionToken: "tok-1"})

		assert.Nil(t, ids.Bot)
		assert.Nil(t, ids.Cliente)
		assert.Nil(t, ids.Instancia)
	})

	t.Run("order lookup failure does not break resolution", func(t *testing.T) {
		finder := &stubOrderFinder{err: errors.New("db down")}
		svc := NewSessionService(nil, finder, time.Hour)

		ids, order := svc.Resolve(ctx, SessionParams{SessionToken: "tok-1"})

		assert.Equal(t, "tok-1", ids.SessionToken)
		assert.Nil(t, order)
	})
}

func TestSessionIdentifiersWithoutStore(t *testing.T) {
	svc := NewSessionService(nil, nil, time.Hour)

	ids := svc.Identifiers(context.Background(), "tok-9")

	assert.Equal(t, "tok-9", ids.SessionToken)
	assert.Nil(t, ids.Bot)
}
