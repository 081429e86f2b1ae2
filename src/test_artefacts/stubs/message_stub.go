package stubs

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"estateportal/src/domain/entities"
)

type MessageStub struct {
	message entities.Message
}

func NewMessageStub() MessageStub {
	message := entities.Message{
		ID:        gofakeit.UUID(),
		Name:      gofakeit.Name(),
		Email:     gofakeit.Email(),
		Phone:     gofakeit.Phone(),
		Subject:   gofakeit.Sentence(4),
		Message:   gofakeit.Paragraph(1, 3, 12, " "),
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}

	return MessageStub{message: message}
}

func (ms MessageStub) WithID(id string) MessageStub {
	ms.message.ID = id
	return ms
}

func (ms MessageStub) WithSubject(subject string) MessageStub {
	ms.message.Subject = subject
	return ms
}

func (ms MessageStub) WithPropertyID(propertyID string) MessageStub {
	ms.message.PropertyID = &propertyID
	return ms
}

func (ms MessageStub) WithRead(read bool) MessageStub {
	ms.message.Read = read
	return ms
}

func (ms MessageStub) WithCreatedAt(createdAt time.Time) MessageStub {
	ms.message.CreatedAt = createdAt
	return ms
}

func (ms MessageStub) Get() entities.Message {
	return ms.message.Clone()
}
