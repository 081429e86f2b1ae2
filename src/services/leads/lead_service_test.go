package leads_test

import (
	"context"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"estateportal/src/domain"
	"estateportal/src/domain/entities"
	"estateportal/src/helper/latency"
	"estateportal/src/repositories"
	"estateportal/src/services/events"
	"estateportal/src/services/leads"
	"estateportal/src/services/messages"
	"estateportal/src/test_artefacts/stubs"
)

var _ = Describe("Lead wizard steps", func() {
	DescribeTable("IsStepValid",
		func(lead entities.Lead, step leads.Step, expected bool) {
			Expect(leads.IsStepValid(lead, step)).To(Equal(expected))
		},
		Entry("complete lead, intent", stubs.NewLeadStub().Get(), leads.StepIntent, true),
		Entry("unknown intent", stubs.NewLeadStub().WithIntent("rent").Get(), leads.StepIntent, false),
		Entry("unknown property type", stubs.NewLeadStub().WithPropertyType("castle").Get(), leads.StepPropertyType, false),
		Entry("unknown price range", stubs.NewLeadStub().WithPriceRange("free").Get(), leads.StepPriceRange, false),
		Entry("missing timeline", stubs.NewLeadStub().WithTimeline("").Get(), leads.StepTimeline, false),
		Entry("complete contact", stubs.NewLeadStub().Get(), leads.StepContact, true),
		Entry("phone left at the placeholder", stubs.NewLeadStub().WithContact("Ana", "ana@example.com", leads.PhonePlaceholder).Get(), leads.StepContact, false),
		Entry("invalid email", stubs.NewLeadStub().WithContact("Ana", "ana-at-example", "+55 11 98888-7777").Get(), leads.StepContact, false),
		Entry("blank name", stubs.NewLeadStub().WithContact("  ", "ana@example.com", "+55 11 98888-7777").Get(), leads.StepContact, false),
		Entry("unknown step", stubs.NewLeadStub().Get(), leads.Step("extra"), false),
	)

	It("should list incomplete steps in wizard order", func() {
		// ARRANGE
		lead := stubs.NewLeadStub().WithPropertyType("").WithContact("Ana", "ana@example.com", leads.PhonePlaceholder).Get()

		// ACT
		invalid := leads.InvalidSteps(lead)

		// ASSERT
		Expect(invalid).To(Equal([]leads.Step{leads.StepPropertyType, leads.StepContact}))
	})
})

var _ = Describe("LeadService", func() {
	var (
		ctx            context.Context
		publisher      *events.RecordingPublisher
		messageService *messages.MessageService
		leadService    *leads.LeadService
	)

	BeforeEach(func() {
		ctx = context.Background()
		publisher = &events.RecordingPublisher{}
		messageService = messages.NewMessageService(
			slog.New(slog.DiscardHandler),
			repositories.NewMemoryMessageRepository(),
			latency.None(),
			publisher,
		)
		leadService = leads.NewLeadService(slog.New(slog.DiscardHandler), messageService)
	})

	It("should turn a complete lead into an unread contact message", func() {
		// ARRANGE
		lead := stubs.NewLeadStub().WithContact("Ana Lima", "ana@example.com", "+55 (11) 98888-7777").Get()

		// ACT
		message, err := leadService.Submit(ctx, lead)

		// ASSERT
		Expect(err).NotTo(HaveOccurred())
		Expect(message.Subject).To(Equal("Buy inquiry"))
		Expect(message.Name).To(Equal("Ana Lima"))
		Expect(message.Read).To(BeFalse())
		Expect(message.Message).To(Equal(
			"Looking to buy a condo.\n" +
				"Price range: $1,000,000 to $3,000,000\n" +
				"Bedrooms: 3\n" +
				"Bathrooms: 2\n" +
				"Timeline: Soon"))

		inbox, _ := messageService.ListMessages(ctx)
		Expect(inbox).To(HaveLen(1))
		Expect(publisher.Types()).To(Equal([]string{domain.EventMessageSent}))
	})

	It("should not send anything while a step is incomplete", func() {
		// ARRANGE
		lead := stubs.NewLeadStub().WithContact("Ana", "ana@example.com", leads.PhonePlaceholder).Get()

		// ACT
		_, err := leadService.Submit(ctx, lead)

		// ASSERT
		Expect(err).To(MatchError(domain.ErrValidation))
		Expect(err.Error()).To(ContainSubstring("contact"))
		inbox, _ := messageService.ListMessages(ctx)
		Expect(inbox).To(BeEmpty())
	})

	DescribeTable("Summary price labels",
		func(priceRange string, expected string) {
			lead := stubs.NewLeadStub().WithIntent(entities.LeadSell).WithPriceRange(priceRange).Get()
			Expect(leads.Summary(lead)).To(ContainSubstring("Price range: " + expected))
		},
		Entry("open below", "below-1m", "below $1,000,000"),
		Entry("closed range", "3m-5m", "$3,000,000 to $5,000,000"),
		Entry("open above", "5m-plus", "$5,000,000+"),
	)

	It("should use the sell subject for sellers", func() {
		Expect(leads.Subject(entities.LeadSell)).To(Equal("Sell inquiry"))
	})
})
