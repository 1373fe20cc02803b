package services

import (
	"burger-house/models"
	"burger-house/utils"
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// OrderFinder is the slice of the order repository the resolver needs.
type OrderFinder interface {
	FindOrCreateBySessionToken(ctx context.Context, token string) (*models.Order, error)
}

// SessionParams carries the raw correlation identifiers from the storefront
// entry URL. Empty string means the parameter was absent.
type SessionParams struct {
	Bot          string
	Cliente      string
	Instancia    string
	SessionToken string
}

// SessionService reconciles URL-provided correlation identifiers with the
// values persisted for the session. URL values always win and overwrite what
// was stored; stored values fill the gaps on later page loads.
type SessionService struct {
	redis  *redis.Client
	orders OrderFinder
	ttl    time.Duration
}

func NewSessionService(redisClient *redis.Client, orders OrderFinder, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionService{
		redis:  redisClient,
		orders: orders,
		ttl:    ttl,
	}
}

func sessionKey(token string) string {
	return "session:" + token
}

// Resolve runs once per page load. It always produces a usable session token:
// URL value, then previously issued value, then a freshly generated one, so
// order correlation never fails outright.
func (s *SessionService) Resolve(ctx context.Context, params SessionParams) (models.SessionIdentifiers, *models.Order) {
	token := params.SessionToken
	if token == "" {
		token = uuid.NewString()
	}

	stored := s.load(ctx, token)

	fromURL := map[string]string{
		"bot":       utils.FormatPhoneNumber(params.Bot),
		"cliente":   params.Cliente,
		"instancia": params.Instancia,
	}

	resolved := map[string]string{}
	overwrite := map[string]interface{}{}
	for field, urlValue := range fromURL {
		if urlValue != "" {
			resolved[field] = urlValue
			overwrite[field] = urlValue
		} else if storedValue, ok := stored[field]; ok {
			resolved[field] = storedValue
		}
	}

	s.store(ctx, token, overwrite)

	ids := models.SessionIdentifiers{SessionToken: token}
	if v, ok := resolved["bot"]; ok {
		ids.Bot = &v
	}
	if v, ok := resolved["cliente"]; ok {
		ids.Cliente = &v
	}
	if v, ok := resolved["instancia"]; ok {
		ids.Instancia = &v
	}

	var order *models.Order
	if s.orders != nil {
		var err error
		order, err = s.orders.FindOrCreateBySessionToken(ctx, token)
		if err != nil {
			log.Println("Failed to find or create order for session:", err)
			order = nil
		}
	}

	return ids, order
}

// Identifiers returns what is currently known about a session. Used by the
// submission pipeline to tag the outgoing payload.
func (s *SessionService) Identifiers(ctx context.Context, token string) models.SessionIdentifiers {
	ids := models.SessionIdentifiers{SessionToken: token}

	stored := s.load(ctx, token)
	if v, ok := stored["bot"]; ok && v != "" {
		ids.Bot = &v
	}
	if v, ok := stored["cliente"]; ok && v != "" {
		ids.Cliente = &v
	}
	if v, ok := stored["instancia"]; ok && v != "" {
		ids.Instancia = &v
	}

	return ids
}

func (s *SessionService) load(ctx context.Context, token string) map[string]string {
	if s.redis == nil {
		return map[string]string{}
	}

	stored, err := s.redis.HGetAll(ctx, sessionKey(token)).Result()
	if err != nil {
		log.Println("Failed to read session identifiers:", err)
		return map[string]string{}
	}
	return stored
}

func (s *SessionService) store(ctx context.Context, token string, values map[string]interface{}) {
	if s.redis == nil {
		return
	}

	key := sessionKey(token)
	if len(values) > 0 {
		if err := s.redis.HSet(ctx, key, values).Err(); err != nil {
			log.Println("Failed to persist session identifiers:", err)
			return
		}
	}
	if err := s.redis.Expire(ctx, key, s.ttl).Err(); err != nil {
		log.Println("Failed to refresh session TTL:", err)
	}
}
