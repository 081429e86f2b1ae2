package events

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"estateportal/src/domain"
)

var _ = Describe("domain events", func() {
	It("should fill id, source and time", func() {
		// ACT
		event := New(domain.EventPropertyCreated, "property", "prop1", map[string]interface{}{"title": "X"})

		// ASSERT
		Expect(event.ID).NotTo(BeEmpty())
		Expect(event.Source).To(Equal(sourceService))
		Expect(event.OccurredAt).NotTo(BeZero())
		Expect(event.Data.Reference).To(Equal("prop1"))
	})

	It("should build headers consumers can filter on", func() {
		// ARRANGE
		event := New(domain.EventMessageSent, "message", "m1", map[string]interface{}{
			"subject": "Visit",
			"email":   "a@example.com",
		})

		// ACT
		headers := createEventHeaders(event)

		// ASSERT
		Expect(headers).To(HaveKeyWithValue("event_type", domain.EventMessageSent))
		Expect(headers).To(HaveKeyWithValue("entity_type", "message"))
		Expect(headers).To(HaveKeyWithValue("schema_version", "v1"))
		Expect(headers).To(HaveKeyWithValue("fields_changed", "email,subject"))
	})

	It("should leave out fields_changed when there are no properties", func() {
		headers := createEventHeaders(New(domain.EventPropertyDeleted, "property", "prop1", nil))
		Expect(headers).NotTo(HaveKey("fields_changed"))
	})

	Context("RecordingPublisher", func() {
		It("should keep events in publish order", func() {
			// ARRANGE
			publisher := &RecordingPublisher{}

			// ACT
			Expect(publisher.Publish(context.Background(),
				New(domain.EventUserCreated, "user", "u1", nil),
				New(domain.EventUserDeleted, "user", "u1", nil),
			)).To(Succeed())

			// ASSERT
			Expect(publisher.Types()).To(Equal([]string{domain.EventUserCreated, domain.EventUserDeleted}))
		})

		It("should return the configured error and record nothing", func() {
			// ARRANGE
			publisher := &RecordingPublisher{Err: errors.New("broker down")}

			// ACT
			err := publisher.Publish(context.Background(), New(domain.EventUserCreated, "user", "u1", nil))

			// ASSERT
			Expect(err).To(HaveOccurred())
			Expect(publisher.Events()).To(BeEmpty())
		})
	})

	It("should accept anything with the nop publisher", func() {
		Expect(NopPublisher{}.Publish(context.Background(), New("x", "y", "z", nil))).To(Succeed())
	})
})
