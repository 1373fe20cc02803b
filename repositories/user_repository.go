package repositories

import (
	"burger-house/config"
	"burger-house/models"
	"context"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (email, password, role, status, user_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	return config.DB.QueryRow(ctx, query,
		user.Email, user.Password, user.Role, user.Status, user.UserType,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, password, role, status, user_type, created_at, updated_at
		FROM users WHERE email = $1
	`

	user := &models.User{}
	err := config.DB.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.Role,
		&user.Status, &user.UserType, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, email, password, role, status, user_type, created_at, updated_at
		FROM users WHERE id = $1
	`

	user := &models.User{}
	err := config.DB.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.Password, &user.Role,
		&user.Status, &user.UserType, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	query := `
		SELECT id, email, password, role, status, user_type, created_at, updated_at
		FROM users ORDER BY created_at DESC
	`

	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID, &user.Email, &user.Password, &user.Role,
			&user.Status, &user.UserType, &user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) Update(ctx context.Context, id string, req models.UpdateUserRequest) error {
	query := `
		UPDATE users
		SET role = COALESCE($1, role),
		    status = COALESCE($2, status),
		    user_type = COALESCE($3, user_type),
		    updated_at = now()
		WHERE id = $4
	`
	_, err := config.DB.Exec(ctx, query, req.Role, req.Status, req.UserType, id)
	return err
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	_, err := config.DB.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}
