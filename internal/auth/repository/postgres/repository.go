package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/WilsonnnTan/auth-backend/internal/auth/domain"
	autherror "github.com/WilsonnnTan/auth-backend/internal/errors"
)

// DB is the subset of pgxpool.Pool the repository uses. Tests substitute a
// pgxmock pool.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindByUsernameOrEmail(ctx context.Context, key string) (*domain.User, error) {
	query := `
		SELECT id, username, email, password_hash, full_name, disabled, created_at, updated_at
		FROM users
		WHERE username = $1 OR email = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, key)

	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.FullName, &user.Disabled, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	return &user, nil
}

// Create inserts the identity in a single statement, so a failure leaves no
// partial record. The unique indexes on username and email are authoritative;
// a violation of either surfaces as ErrConflict.
func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (id, username, email, password_hash, full_name, disabled, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, user.ID, user.Username, user.Email, user.PasswordHash,
		user.FullName, user.Disabled, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return autherror.ErrConflict
		}

		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}
