package repositories

import (
	"context"

	"forklift-backend/internal/apperrors"
	"forklift-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO users(username, full_name, role)
         VALUES($1, $2, $3)
         RETURNING id, created_at`,
		u.Username, u.FullName, u.Role,
	).Scan(&u.ID, &u.CreatedAt)
	return apperrors.FromStorage(err, "user")
}

func (r *UserRepository) Get(ctx context.Context, id int) (*models.User, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, username, full_name, role, created_at
         FROM users WHERE id=$1`, id)

	var user models.User
	err := row.Scan(&user.ID, &user.Username, &user.FullName, &user.Role, &user.CreatedAt)
	if err != nil {
		return nil, apperrors.FromStorage(err, "user")
	}
	return &user, nil
}

// Exists reports whether a user with the given id exists.
func (r *UserRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE id=$1)`, id).Scan(&exists)
	if err != nil {
		return false, apperrors.FromStorage(err, "user")
	}
	return exists, nil
}

// List returns all users, newest first
func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, username, full_name, role, created_at
         FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, apperrors.FromStorage(err, "users")
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username, &user.FullName, &user.Role, &user.CreatedAt); err != nil {
			return nil, apperrors.FromStorage(err, "users")
		}
		users = append(users, &user)
	}
	return users, rows.Err()
}
