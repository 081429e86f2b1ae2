package messages_test

import (
	"context"
	"log/slog"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"estateportal/src/domain"
	"estateportal/src/helper/latency"
	"estateportal/src/repositories"
	"estateportal/src/services/events"
	"estateportal/src/services/messages"
	"estateportal/src/services/properties"
)

var _ = Describe("MessageService", func() {
	var (
		ctx            context.Context
		publisher      *events.RecordingPublisher
		messageService *messages.MessageService
		fixedNow       time.Time
	)

	validInput := func() domain.MessageInput {
		return domain.MessageInput{
			Name:    "Carla Mendes",
			Email:   "carla@example.com",
			Subject: "Visit",
			Message: "Can I visit on Saturday?",
		}
	}

	BeforeEach(func() {
		ctx = context.Background()
		fixedNow = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		publisher = &events.RecordingPublisher{}
		messageService = messages.NewMessageService(
			slog.New(slog.DiscardHandler),
			repositories.NewMemoryMessageRepository(repositories.SeedMessages()...),
			latency.None(),
			publisher,
		).WithClock(func() time.Time { return fixedNow })
	})

	Context("SendMessage", func() {
		It("should store an unread message at the top of the inbox", func() {
			// ACT
			sent, err := messageService.SendMessage(ctx, validInput())

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(sent.ID).NotTo(BeEmpty())
			Expect(sent.Read).To(BeFalse())
			Expect(sent.CreatedAt).To(Equal(fixedNow))

			inbox, _ := messageService.ListMessages(ctx)
			Expect(inbox[0].ID).To(Equal(sent.ID))
			Expect(publisher.Types()).To(Equal([]string{domain.EventMessageSent}))
		})

		It("should accept a reference to a property that does not exist", func() {
			// ARRANGE
			input := validInput()
			ghost := "deleted-property"
			input.PropertyID = &ghost

			// ACT
			sent, err := messageService.SendMessage(ctx, input)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(sent.PropertyID).To(HaveValue(Equal(ghost)))
			Expect(publisher.Events()[0].Data.Properties).To(HaveKeyWithValue("property_id", ghost))
		})

		It("should treat an empty property id as no reference", func() {
			// ARRANGE
			input := validInput()
			empty := ""
			input.PropertyID = &empty

			// ACT
			sent, err := messageService.SendMessage(ctx, input)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(sent.PropertyID).To(BeNil())
		})

		It("should reject missing required fields", func() {
			// ARRANGE
			input := validInput()
			input.Subject = ""

			// ACT
			_, err := messageService.SendMessage(ctx, input)

			// ASSERT
			Expect(err).To(MatchError(domain.ErrValidation))
			Expect(publisher.Events()).To(BeEmpty())
		})
	})

	Context("MarkMessageRead", func() {
		It("should flip the flag once and be idempotent afterwards", func() {
			// ACT
			first, err := messageService.MarkMessageRead(ctx, "msg5")
			Expect(err).NotTo(HaveOccurred())
			second, err := messageService.MarkMessageRead(ctx, "msg5")

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(first.Read).To(BeTrue())
			Expect(second).To(BeComparableTo(first))
			Expect(publisher.Types()).To(Equal([]string{domain.EventMessageRead}))
		})

		It("should return NotFound for an unknown id", func() {
			// ACT
			_, err := messageService.MarkMessageRead(ctx, "nope")

			// ASSERT
			Expect(err).To(MatchError(domain.ErrNotFound))
		})
	})

	Context("DeleteMessage", func() {
		It("should remove the message", func() {
			// ACT
			err := messageService.DeleteMessage(ctx, "msg4")

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			_, err = messageService.GetMessage(ctx, "msg4")
			Expect(err).To(MatchError(domain.ErrNotFound))
		})

		It("should return NotFound for an unknown id", func() {
			Expect(messageService.DeleteMessage(ctx, "nope")).To(MatchError(domain.ErrNotFound))
		})
	})

	Context("weak reference to properties", func() {
		It("should keep messages when the referenced property is deleted", func() {
			// ARRANGE
			propertyService := properties.NewPropertyService(
				slog.New(slog.DiscardHandler),
				repositories.NewMemoryPropertyRepository(repositories.SeedProperties()...),
				latency.None(),
				publisher,
			)

			// ACT
			err := propertyService.DeleteProperty(ctx, "prop6")

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			message, err := messageService.GetMessage(ctx, "msg4")
			Expect(err).NotTo(HaveOccurred())
			Expect(message.PropertyID).To(HaveValue(Equal("prop6")))
		})
	})

	Context("SearchMessages", func() {
		It("should find messages by sender name", func() {
			// ACT
			found, err := messageService.SearchMessages(ctx, "jennifer")

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(HaveLen(1))
			Expect(found[0].ID).To(Equal("msg4"))
		})
	})
})
