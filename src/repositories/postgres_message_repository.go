package repositories

import (
	"context"
	"fmt"

	"estateportal/src/domain"
	"estateportal/src/domain/entities"
	"estateportal/src/infra/postgres"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const messageColumns = `id, name, email, phone, subject, message, property_id, read, created_at`

type PostgresMessageRepository struct {
	readPool  *pgxpool.Pool
	writePool *pgxpool.Pool
}

func NewPostgresMessageRepository(readPool *pgxpool.Pool, writePool *pgxpool.Pool) *PostgresMessageRepository {
	return &PostgresMessageRepository{readPool: readPool, writePool: writePool}
}

// List devolve a mais recente primeiro; seq desempata mensagens com o mesmo created_at.
func (r *PostgresMessageRepository) List(ctx context.Context) ([]entities.Message, error) {
	rows, err := r.readPool.Query(ctx, `SELECT `+messageColumns+` FROM messages ORDER BY created_at DESC, seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	messages := make([]entities.Message, 0)
	for rows.Next() {
		message, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, rows.Err()
}

func (r *PostgresMessageRepository) GetByID(ctx context.Context, id string) (entities.Message, error) {
	message, err := scanMessage(r.readPool.QueryRow(ctx, `SELECT `+messageColumns+` FROM messages WHERE id = $1`, id))
	if postgres.IsNoRows(err) {
		return entities.Message{}, fmt.Errorf("message %s: %w", id, domain.ErrNotFound)
	}
	return message, err
}

func (r *PostgresMessageRepository) Insert(ctx context.Context, m entities.Message) error {
	_, err := r.writePool.Exec(ctx,
		`INSERT INTO messages (`+messageColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.ID, m.Name, m.Email, postgres.NewNullString(&m.Phone), m.Subject, m.Message,
		postgres.NewNullString(m.PropertyID), m.Read, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert message %s: %w", m.ID, err)
	}
	return nil
}

func (r *PostgresMessageRepository) Replace(ctx context.Context, m entities.Message) error {
	tag, err := r.writePool.Exec(ctx, `
		UPDATE messages SET name = $2, email = $3, phone = $4, subject = $5, message = $6, property_id = $7, read = $8
		WHERE id = $1`,
		m.ID, m.Name, m.Email, postgres.NewNullString(&m.Phone), m.Subject, m.Message,
		postgres.NewNullString(m.PropertyID), m.Read,
	)
	if err != nil {
		return fmt.Errorf("failed to update message %s: %w", m.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("message %s: %w", m.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *PostgresMessageRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.writePool.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete message %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("message %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanMessage(row pgx.Row) (entities.Message, error) {
	var (
		m          entities.Message
		phone      pgtype.Text
		propertyID pgtype.Text
	)
	err := row.Scan(&m.ID, &m.Name, &m.Email, &phone, &m.Subject, &m.Message, &propertyID, &m.Read, &m.CreatedAt)
	if err != nil {
		return entities.Message{}, err
	}

	if v := postgres.StringPtr(phone); v != nil {
		m.Phone = *v
	}
	m.PropertyID = postgres.StringPtr(propertyID)
	m.CreatedAt = m.CreatedAt.UTC()
	return m, nil
}
