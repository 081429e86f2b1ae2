package repositories

import (
	"context"
	"fmt"

	"estateportal/src/domain"
	"estateportal/src/domain/entities"
	"estateportal/src/infra/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, name, email, password, role, created_at`

// PostgresUserRepository relies on the UNIQUE constraint on users.email for uniqueness.
type PostgresUserRepository struct {
	readPool  *pgxpool.Pool
	writePool *pgxpool.Pool
}

func NewPostgresUserRepository(readPool *pgxpool.Pool, writePool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{readPool: readPool, writePool: writePool}
}

func (r *PostgresUserRepository) List(ctx context.Context) ([]entities.User, error) {
	rows, err := r.readPool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	user, err := scanUser(r.readPool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if postgres.IsNoRows(err) {
		return entities.User{}, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return user, err
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	user, err := scanUser(r.readPool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if postgres.IsNoRows(err) {
		return entities.User{}, fmt.Errorf("user with email %s: %w", email, domain.ErrNotFound)
	}
	return user, err
}

func (r *PostgresUserRepository) Insert(ctx context.Context, u entities.User) error {
	_, err := r.writePool.Exec(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID, u.Name, u.Email, u.Password, string(u.Role), u.CreatedAt,
	)
	if postgres.IsUniqueViolation(err) {
		return fmt.Errorf("user with email %s: %w", u.Email, domain.ErrDuplicateEmail)
	}
	if err != nil {
		return fmt.Errorf("failed to insert user %s: %w", u.ID, err)
	}
	return nil
}

func (r *PostgresUserRepository) Replace(ctx context.Context, u entities.User) error {
	tag, err := r.writePool.Exec(ctx,
		`UPDATE users SET name = $2, email = $3, password = $4, role = $5 WHERE id = $1`,
		u.ID, u.Name, u.Email, u.Password, string(u.Role),
	)
	if postgres.IsUniqueViolation(err) {
		return fmt.Errorf("user with email %s: %w", u.Email, domain.ErrDuplicateEmail)
	}
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", u.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", u.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *PostgresUserRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.writePool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanUser(row pgx.Row) (entities.User, error) {
	var (
		u    entities.User
		role string
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &role, &u.CreatedAt); err != nil {
		return entities.User{}, err
	}
	u.Role = entities.Role(role)
	u.CreatedAt = u.CreatedAt.UTC()
	return u, nil
}
