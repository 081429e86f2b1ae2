package clients_test

import (
	"context"
	"log/slog"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"estateportal/src/domain"
	"estateportal/src/helper/latency"
	"estateportal/src/infra/kvstore"
	"estateportal/src/repositories"
	"estateportal/src/services/clients"
	"estateportal/src/services/events"
	"estateportal/src/services/session"
	"estateportal/src/services/users"
	"estateportal/src/test_artefacts/stubs"
)

var _ = Describe("ClientRegistry", func() {
	var (
		ctx      context.Context
		store    *kvstore.MemoryStore
		registry *clients.ClientRegistry
		clock    time.Time
	)

	BeforeEach(func() {
		ctx = context.Background()
		logger := slog.New(slog.DiscardHandler)
		store = kvstore.NewMemoryStore()
		clock = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

		userService := users.NewUserService(logger, repositories.NewMemoryUserRepository(repositories.SeedUsers()...), latency.None(), &events.RecordingPublisher{})
		registry = clients.NewClientRegistry(logger, userService, store, latency.None()).
			WithClock(func() time.Time { return clock })
	})

	It("should hand back the same client for the same token", func() {
		// ACT
		first, err := registry.Get(ctx, "token-a")
		Expect(err).NotTo(HaveOccurred())
		second, err := registry.Get(ctx, "token-a")
		Expect(err).NotTo(HaveOccurred())
		other, err := registry.Get(ctx, "token-b")
		Expect(err).NotTo(HaveOccurred())

		// ASSERT
		Expect(second).To(BeIdenticalTo(first))
		Expect(other).NotTo(BeIdenticalTo(first))
		Expect(registry.Len()).To(Equal(2))
	})

	It("should reject an empty token", func() {
		// ACT
		_, err := registry.Get(ctx, "")

		// ASSERT
		Expect(err).To(MatchError(domain.ErrValidation))
	})

	It("should not leak a login into another client", func() {
		// ARRANGE
		admin, _ := registry.Get(ctx, "token-a")
		visitor, _ := registry.Get(ctx, "token-b")

		// ACT
		_, err := admin.Session.Login(ctx, "admin@example.com", "admin123")
		Expect(err).NotTo(HaveOccurred())

		// ASSERT
		Expect(admin.Session.State()).To(Equal(session.StateAuthenticatedAdmin))
		Expect(visitor.Session.State()).To(Equal(session.StateAnonymous))
		_, err = visitor.Session.CurrentUser(ctx)
		Expect(err).To(MatchError(domain.ErrNotAuthenticated))

		access := visitor.Session.Authorize(ctx, session.AreaAdmin, "/v1/users")
		Expect(access.Allowed).To(BeFalse())
		Expect(access.Redirect).To(Equal(session.LoginPath("/v1/users")))
	})

	It("should keep favorites per client", func() {
		// ARRANGE
		first, _ := registry.Get(ctx, "token-a")
		second, _ := registry.Get(ctx, "token-b")

		// ACT
		Expect(first.Favorites.Add(ctx, stubs.NewPropertyStub().WithID("p1").Get())).To(Succeed())

		// ASSERT
		Expect(first.Favorites.Contains("p1")).To(BeTrue())
		Expect(second.Favorites.List()).To(BeEmpty())
		Expect(store.Keys()).To(ConsistOf("client:token-a:favorites"))
	})

	It("should share the viewed history of an account between its clients", func() {
		// ARRANGE
		laptop, _ := registry.Get(ctx, "token-a")
		phone, _ := registry.Get(ctx, "token-b")
		_, err := laptop.Session.Login(ctx, "user@example.com", "user123")
		Expect(err).NotTo(HaveOccurred())
		Expect(laptop.History.RecordView(ctx, stubs.NewPropertyStub().WithID("p1").Get())).To(Succeed())

		// ACT
		_, err = phone.Session.Login(ctx, "user@example.com", "user123")
		Expect(err).NotTo(HaveOccurred())

		// ASSERT
		Expect(phone.History.List()).To(ConsistOf(HaveField("ID", "p1")))
	})

	It("should rehydrate an evicted client from the store", func() {
		// ARRANGE
		client, _ := registry.Get(ctx, "token-a")
		_, err := client.Session.Login(ctx, "user@example.com", "user123")
		Expect(err).NotTo(HaveOccurred())
		Expect(client.Favorites.Add(ctx, stubs.NewPropertyStub().WithID("p1").Get())).To(Succeed())
		Expect(client.History.RecordView(ctx, stubs.NewPropertyStub().WithID("p2").Get())).To(Succeed())
		clock = clock.Add(time.Hour)

		// ACT
		evicted := registry.Evict(30 * time.Minute)
		restored, err := registry.Get(ctx, "token-a")

		// ASSERT
		Expect(evicted).To(Equal(1))
		Expect(err).NotTo(HaveOccurred())
		Expect(restored).NotTo(BeIdenticalTo(client))
		Expect(restored.Session.State()).To(Equal(session.StateAuthenticatedUser))
		Expect(restored.Favorites.Contains("p1")).To(BeTrue())
		Expect(restored.History.List()).To(ConsistOf(HaveField("ID", "p2")))
	})

	It("should keep clients that were seen recently", func() {
		// ARRANGE
		_, _ = registry.Get(ctx, "token-a")
		clock = clock.Add(10 * time.Minute)

		// ACT
		evicted := registry.Evict(30 * time.Minute)

		// ASSERT
		Expect(evicted).To(BeZero())
		Expect(registry.Len()).To(Equal(1))
	})
})
