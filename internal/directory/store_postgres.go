package directory

import (
	"context"
	"database/sql"
	"fmt"

	"warebell/internal/domain"
)

// PostgresStore reads the user directory from the users table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) ActiveByWarehouse(ctx context.Context, warehouse string) ([]domain.User, error) {
	query := `
		SELECT name, full_name, email, default_warehouse
		FROM users
		WHERE default_warehouse = $1 AND enabled = TRUE
	`

	rows, err := s.db.QueryContext(ctx, query, warehouse)
	if err != nil {
		return nil, fmt.Errorf("query users by warehouse: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u := domain.User{Enabled: true}
		if err := rows.Scan(&u.Name, &u.FullName, &u.Email, &u.DefaultWarehouse); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}
