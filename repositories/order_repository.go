package repositories

import (
	"burger-house/config"
	"burger-house/models"
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

const orderColumns = `id, session_token, status, payment_method, delivery_address, total_price, created_at, updated_at`

func scanOrder(row pgx.Row) (*models.Order, error) {
	var o models.Order
	err := row.Scan(&o.ID, &o.SessionToken, &o.Status, &o.PaymentMethod, &o.DeliveryAddress, &o.TotalPrice, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// FindOrCreateBySessionToken resolves the order row tracking a browsing
// session, creating it with status "creating" on first contact.
func (r *OrderRepository) FindOrCreateBySessionToken(ctx context.Context, token string) (*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE session_token = $1`

	order, err := scanOrder(config.DB.QueryRow(ctx, query, token))
	if err == nil {
		return order, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	insert := `
		INSERT INTO orders (session_token, status, total_price)
		VALUES ($1, $2, 0)
		RETURNING ` + orderColumns

	return scanOrder(config.DB.QueryRow(ctx, insert, token, models.OrderStatusCreating))
}

// Confirm stamps the session's order with the final checkout details.
func (r *OrderRepository) Confirm(ctx context.Context, token, paymentMethod string, deliveryAddress *string, total float64) error {
	query := `
		UPDATE orders
		SET status = $1, payment_method = $2, delivery_address = $3, total_price = $4, updated_at = now()
		WHERE session_token = $5
	`
	_, err := config.DB.Exec(ctx, query, models.OrderStatusConfirmed, paymentMethod, deliveryAddress, total, token)
	return err
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`

	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.SessionToken, &o.Status, &o.PaymentMethod, &o.DeliveryAddress, &o.TotalPrice, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
