package test_seeder

import (
	"context"
	"fmt"

	"estateportal/src/domain/entities"
)

// InsertUser grava direto na tabela, sem passar pelo repositório.
func (ts TestSeeder) InsertUser(ctx context.Context, user entities.User) {
	query := `
		INSERT INTO users (id, name, email, password, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := ts.pool.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.Password,
		string(user.Role),
		user.CreatedAt,
	)
	if err != nil {
		panic(fmt.Sprintf("Seeder.InsertUser failed: %v", err))
	}
}

func (ts TestSeeder) InsertMessage(ctx context.Context, message entities.Message) {
	query := `
		INSERT INTO messages (id, name, email, phone, subject, message, property_id, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := ts.pool.Exec(ctx, query,
		message.ID,
		message.Name,
		message.Email,
		message.Phone,
		message.Subject,
		message.Message,
		message.PropertyID,
		message.Read,
		message.CreatedAt,
	)
	if err != nil {
		panic(fmt.Sprintf("Seeder.InsertMessage failed: %v", err))
	}
}
