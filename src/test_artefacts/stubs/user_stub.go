package stubs

import (
	"time"

	"github.com/go-faker/faker/v4"

	"estateportal/src/domain/entities"
)

type UserStub struct {
	user entities.User
}

func NewUserStub() UserStub {
	user := entities.User{
		ID:        faker.UUIDHyphenated(),
		Name:      faker.Name(),
		Email:     faker.Email(),
		Password:  faker.Password(),
		Role:      entities.RoleUser,
		CreatedAt: time.Now().UTC(),
	}

	return UserStub{user: user}
}

func (us UserStub) WithID(id string) UserStub {
	us.user.ID = id
	return us
}

func (us UserStub) WithName(name string) UserStub {
	us.user.Name = name
	return us
}

func (us UserStub) WithEmail(email string) UserStub {
	us.user.Email = email
	return us
}

func (us UserStub) WithPassword(password string) UserStub {
	us.user.Password = password
	return us
}

func (us UserStub) WithRole(role entities.Role) UserStub {
	us.user.Role = role
	return us
}

func (us UserStub) Get() entities.User {
	return us.user
}
