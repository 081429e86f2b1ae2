package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"estateportal/src/domain"
	"estateportal/src/domain/entities"
	"estateportal/src/infra/postgres"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const propertyColumns = `id, title, description, price, type, status, bedrooms, bathrooms, garage, size,
	year_built, address, location, features, images, video_url, highlighted, agent, created_at, updated_at`

type PostgresPropertyRepository struct {
	readPool  *pgxpool.Pool
	writePool *pgxpool.Pool
}

func NewPostgresPropertyRepository(readPool *pgxpool.Pool, writePool *pgxpool.Pool) *PostgresPropertyRepository {
	return &PostgresPropertyRepository{readPool: readPool, writePool: writePool}
}

func (r *PostgresPropertyRepository) List(ctx context.Context) ([]entities.Property, error) {
	rows, err := r.readPool.Query(ctx, `SELECT `+propertyColumns+` FROM properties ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	properties := make([]entities.Property, 0)
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, property)
	}

	return properties, rows.Err()
}

func (r *PostgresPropertyRepository) GetByID(ctx context.Context, id string) (entities.Property, error) {
	row := r.readPool.QueryRow(ctx, `SELECT `+propertyColumns+` FROM properties WHERE id = $1`, id)

	property, err := scanProperty(row)
	if postgres.IsNoRows(err) {
		return entities.Property{}, fmt.Errorf("property %s: %w", id, domain.ErrNotFound)
	}
	return property, err
}

func (r *PostgresPropertyRepository) Insert(ctx context.Context, p entities.Property) error {
	location, agent, err := marshalPropertyJSON(p)
	if err != nil {
		return err
	}

	_, err = r.writePool.Exec(ctx, `
		INSERT INTO properties (`+propertyColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`,
		p.ID, p.Title, p.Description, p.Price, p.Type, string(p.Status), p.Bedrooms, p.Bathrooms, p.Garage, p.Size,
		p.YearBuilt, p.Address, location, nonNil(p.Features), nonNil(p.Images), postgres.NewNullString(&p.VideoURL),
		p.Highlighted, agent, p.CreatedAt, postgres.NewNullTime(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert property %s: %w", p.ID, err)
	}
	return nil
}

func (r *PostgresPropertyRepository) Replace(ctx context.Context, p entities.Property) error {
	location, agent, err := marshalPropertyJSON(p)
	if err != nil {
		return err
	}

	tag, err := r.writePool.Exec(ctx, `
		UPDATE properties SET
			title = $2, description = $3, price = $4, type = $5, status = $6, bedrooms = $7, bathrooms = $8,
			garage = $9, size = $10, year_built = $11, address = $12, location = $13, features = $14,
			images = $15, video_url = $16, highlighted = $17, agent = $18, updated_at = $19
		WHERE id = $1`,
		p.ID, p.Title, p.Description, p.Price, p.Type, string(p.Status), p.Bedrooms, p.Bathrooms,
		p.Garage, p.Size, p.YearBuilt, p.Address, location, nonNil(p.Features),
		nonNil(p.Images), postgres.NewNullString(&p.VideoURL), p.Highlighted, agent, postgres.NewNullTime(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to update property %s: %w", p.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("property %s: %w", p.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *PostgresPropertyRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.writePool.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete property %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("property %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanProperty(row pgx.Row) (entities.Property, error) {
	var (
		p         entities.Property
		status    string
		location  []byte
		agent     []byte
		videoURL  pgtype.Text
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Price, &p.Type, &status, &p.Bedrooms, &p.Bathrooms, &p.Garage, &p.Size,
		&p.YearBuilt, &p.Address, &location, &p.Features, &p.Images, &videoURL, &p.Highlighted, &agent,
		&p.CreatedAt, &updatedAt,
	)
	if err != nil {
		return entities.Property{}, err
	}

	if err := json.Unmarshal(location, &p.Location); err != nil {
		return entities.Property{}, fmt.Errorf("property %s has invalid location: %w", p.ID, err)
	}
	if err := json.Unmarshal(agent, &p.Agent); err != nil {
		return entities.Property{}, fmt.Errorf("property %s has invalid agent: %w", p.ID, err)
	}

	p.Status = entities.PropertyStatus(status)
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = postgres.TimePtr(updatedAt)
	if v := postgres.StringPtr(videoURL); v != nil {
		p.VideoURL = *v
	}

	return p, nil
}

func marshalPropertyJSON(p entities.Property) ([]byte, []byte, error) {
	location, err := json.Marshal(p.Location)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal location: %w", err)
	}
	agent, err := json.Marshal(p.Agent)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal agent: %w", err)
	}
	return location, agent, nil
}

// TEXT[] NOT NULL não aceita nil.
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
