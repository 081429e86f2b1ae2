package dashboard_test

import (
	"context"
	"errors"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"estateportal/src/domain"
	"estateportal/src/domain/entities"
	"estateportal/src/helper/latency"
	"estateportal/src/repositories"
	"estateportal/src/services/dashboard"
	"estateportal/src/services/events"
	"estateportal/src/services/messages"
	"estateportal/src/services/properties"
	"estateportal/src/services/users"
	"estateportal/src/test_artefacts/stubs"
)

type failingMessages struct{}

func (failingMessages) ListMessages(context.Context) ([]entities.Message, error) {
	return nil, errors.New("inbox offline")
}

var _ = Describe("DashboardService", func() {
	var (
		ctx             context.Context
		logger          *slog.Logger
		propertyService *properties.PropertyService
		userService     *users.UserService
		messageService  *messages.MessageService
	)

	BeforeEach(func() {
		ctx = context.Background()
		logger = slog.New(slog.DiscardHandler)
		publisher := &events.RecordingPublisher{}

		propertyService = properties.NewPropertyService(logger, repositories.NewMemoryPropertyRepository(
			stubs.NewPropertyStub().WithStatus(entities.StatusForSale).Get(),
			stubs.NewPropertyStub().WithStatus(entities.StatusForRent).Get(),
			stubs.NewPropertyStub().WithStatus(entities.StatusSold).Get(),
			stubs.NewPropertyStub().WithStatus(entities.StatusPending).Get(),
		), latency.None(), publisher)
		userService = users.NewUserService(logger, repositories.NewMemoryUserRepository(repositories.SeedUsers()...), latency.None(), publisher)
		messageService = messages.NewMessageService(logger, repositories.NewMemoryMessageRepository(
			stubs.NewMessageStub().WithRead(false).Get(),
			stubs.NewMessageStub().WithRead(true).Get(),
			stubs.NewMessageStub().WithRead(false).Get(),
		), latency.None(), publisher)
	})

	It("should count every collection", func() {
		// ARRANGE
		dashboardService := dashboard.NewDashboardService(logger, propertyService, userService, messageService)

		// ACT
		stats, err := dashboardService.Stats(ctx)

		// ASSERT
		Expect(err).NotTo(HaveOccurred())
		Expect(stats).To(Equal(domain.DashboardStats{
			TotalProperties: 4,
			ActiveListings:  2,
			TotalUsers:      3,
			TotalMessages:   3,
			UnreadMessages:  2,
		}))
	})

	It("should fail when one of the lists fails", func() {
		// ARRANGE
		dashboardService := dashboard.NewDashboardService(logger, propertyService, userService, failingMessages{})

		// ACT
		_, err := dashboardService.Stats(ctx)

		// ASSERT
		Expect(err).To(MatchError(ContainSubstring("inbox offline")))
	})
})
