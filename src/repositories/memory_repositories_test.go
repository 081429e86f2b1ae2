package repositories_test

import (
	"context"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"estateportal/src/domain"
	"estateportal/src/repositories"
	"estateportal/src/test_artefacts/stubs"
)

var _ = Describe("Memory repositories", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Context("MemoryPropertyRepository", func() {
		It("should not let the seed slice alias the store", func() {
			// ARRANGE
			seed := stubs.NewPropertyStub().WithID("p1").WithFeatures("Pool").Get()
			repository := repositories.NewMemoryPropertyRepository(seed)

			// ACT
			seed.Features[0] = "mutated"

			// ASSERT
			stored, err := repository.GetByID(ctx, "p1")
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Features).To(Equal([]string{"Pool"}))
		})

		It("should refuse replacing an unknown id", func() {
			// ARRANGE
			repository := repositories.NewMemoryPropertyRepository()

			// ACT
			err := repository.Replace(ctx, stubs.NewPropertyStub().Get())

			// ASSERT
			Expect(err).To(MatchError(domain.ErrNotFound))
		})
	})

	Context("MemoryUserRepository", func() {
		It("should enforce unique emails on insert and replace", func() {
			// ARRANGE
			repository := repositories.NewMemoryUserRepository(repositories.SeedUsers()...)
			other := stubs.NewUserStub().WithID("user2").WithEmail("admin@example.com").Get()

			// ACT
			insertErr := repository.Insert(ctx, stubs.NewUserStub().WithEmail("user@example.com").Get())
			replaceErr := repository.Replace(ctx, other)

			// ASSERT
			Expect(insertErr).To(MatchError(domain.ErrDuplicateEmail))
			Expect(replaceErr).To(MatchError(domain.ErrDuplicateEmail))
		})
	})

	Context("MemoryMessageRepository", func() {
		It("should keep the newest message first", func() {
			// ARRANGE
			repository := repositories.NewMemoryMessageRepository(repositories.SeedMessages()...)

			// ACT
			Expect(repository.Insert(ctx, stubs.NewMessageStub().WithID("newest").Get())).To(Succeed())

			// ASSERT
			list, err := repository.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(list[0].ID).To(Equal("newest"))
			Expect(list).To(HaveLen(len(repositories.SeedMessages()) + 1))
		})
	})

	Context("CachedPropertyRepository without redis", func() {
		It("should pass every call through to the inner repository", func() {
			// ARRANGE
			inner := repositories.NewMemoryPropertyRepository(repositories.SeedProperties()...)
			repository := repositories.NewCachedPropertyRepository(slog.New(slog.DiscardHandler), inner, nil)
			property := stubs.NewPropertyStub().WithID("cached").Get()

			// ACT
			Expect(repository.Insert(ctx, property)).To(Succeed())
			fetched, err := repository.GetByID(ctx, "cached")

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched).To(BeComparableTo(property))
			Expect(repository.Delete(ctx, "cached")).To(Succeed())
			_, err = repository.GetByID(ctx, "cached")
			Expect(err).To(MatchError(domain.ErrNotFound))
		})
	})
})

var _ = Describe("Seed data", func() {
	It("should carry the demo accounts and unique ids", func() {
		// ARRANGE
		seen := map[string]bool{}

		// ACT
		for _, p := range repositories.SeedProperties() {
			Expect(seen).NotTo(HaveKey(p.ID))
			seen[p.ID] = true
		}

		// ASSERT
		Expect(repositories.SeedUsers()).To(ContainElement(HaveField("Email", "admin@example.com")))
		messages := repositories.SeedMessages()
		for i := 1; i < len(messages); i++ {
			Expect(messages[i-1].CreatedAt).To(BeTemporally(">=", messages[i].CreatedAt))
		}
	})
})
