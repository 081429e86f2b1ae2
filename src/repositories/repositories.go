package repositories

import (
	"context"
	"estateportal/src/domain/entities"
)

// Os repositórios são a única autoridade sobre as coleções. Todo valor que entra ou sai é cópia.

type PropertyRepository interface {
	List(ctx context.Context) ([]entities.Property, error)
	GetByID(ctx context.Context, id string) (entities.Property, error)
	Insert(ctx context.Context, property entities.Property) error
	Replace(ctx context.Context, property entities.Property) error
	Delete(ctx context.Context, id string) error
}

type UserRepository interface {
	List(ctx context.Context) ([]entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	Insert(ctx context.Context, user entities.User) error
	Replace(ctx context.Context, user entities.User) error
	Delete(ctx context.Context, id string) error
}

// MessageRepository keeps the newest message first: Insert prepends.
type MessageRepository interface {
	List(ctx context.Context) ([]entities.Message, error)
	GetByID(ctx context.Context, id string) (entities.Message, error)
	Insert(ctx context.Context, message entities.Message) error
	Replace(ctx context.Context, message entities.Message) error
	Delete(ctx context.Context, id string) error
}
