package repositories_test

import (
	"context"
	"log/slog"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"estateportal/src/domain"
	"estateportal/src/domain/entities"
	"estateportal/src/helper/env"
	"estateportal/src/infra/postgres"
	"estateportal/src/infra/redis"
	"estateportal/src/repositories"
	"estateportal/src/test_artefacts/comparer"
	"estateportal/src/test_artefacts/stubs"
	"estateportal/src/test_artefacts/test_seeder"
)

var _ = Describe("Postgres repositories", func() {
	var (
		ctx                context.Context
		readWriteClient    *postgres.ReadWriteClient
		seeder             test_seeder.TestSeeder
		propertyRepository *repositories.PostgresPropertyRepository
		userRepository     *repositories.PostgresUserRepository
		messageRepository  *repositories.PostgresMessageRepository
		err                error
	)

	dbReadHost := env.GetString("TEST_DB_READ_HOST")
	dbWriteHost := env.GetString("TEST_DB_WRITE_HOST", dbReadHost)
	dbReadPort := env.GetString("TEST_DB_READ_PORT", "5432")
	dbWritePort := env.GetString("TEST_DB_WRITE_PORT", "5432")
	dbname := env.GetString("TEST_DB_NAME", "estateportal_test")
	dbUser := env.GetString("TEST_DB_USER", "postgres")
	dbPassword := env.GetString("TEST_DB_PASSWORD", "postgres")
	maxConnections := env.GetInt("TEST_DB_MAX_POOL_CONNECTIONS", 5)

	// o postgres guarda microssegundos
	timeOpts := comparer.TimeWithinTolerance(1)

	BeforeEach(func() {
		if dbReadHost == "" {
			Skip("TEST_DB_READ_HOST not set")
		}
		ctx = context.Background()

		// Conexão com o banco de teste
		readWriteClient, err = postgres.NewReadWriteClient(dbReadHost, dbWriteHost, dbReadPort, dbWritePort, dbname, dbUser, dbPassword, maxConnections)
		if err != nil {
			panic(err)
		}
		Expect(postgres.Migrate(ctx, readWriteClient.GetWritePool())).To(Succeed())

		propertyRepository = repositories.NewPostgresPropertyRepository(readWriteClient.GetReadPool(), readWriteClient.GetWritePool())
		userRepository = repositories.NewPostgresUserRepository(readWriteClient.GetReadPool(), readWriteClient.GetWritePool())
		messageRepository = repositories.NewPostgresMessageRepository(readWriteClient.GetReadPool(), readWriteClient.GetWritePool())
		seeder = test_seeder.New(readWriteClient.GetWritePool())

		// Limpar dados
		seeder.TruncateTables(ctx)
	})

	AfterEach(func() {
		if readWriteClient != nil {
			readWriteClient.Close()
		}
	})

	Context("PostgresPropertyRepository", func() {
		It("should round-trip a property with its nested fields", func() {
			// ARRANGE
			property := stubs.NewPropertyStub().WithID("pg-prop").WithFeatures("Pool", "Dock").Get()

			// ACT
			Expect(propertyRepository.Insert(ctx, property)).To(Succeed())
			fetched, err := propertyRepository.GetByID(ctx, "pg-prop")

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched).To(BeComparableTo(property, timeOpts, comparer.EmptySlicesEqual()))
		})

		It("should persist replaced fields", func() {
			// ARRANGE
			property := stubs.NewPropertyStub().WithID("pg-prop").Get()
			Expect(propertyRepository.Insert(ctx, property)).To(Succeed())
			property.Status = entities.StatusSold
			updatedAt := time.Now().UTC()
			property.UpdatedAt = &updatedAt

			// ACT
			err := propertyRepository.Replace(ctx, property)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			status, err := seeder.SelectPropertyStatus(ctx, "pg-prop")
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal("sold"))
		})

		It("should return NotFound for unknown ids", func() {
			// ACT
			_, getErr := propertyRepository.GetByID(ctx, "missing")
			deleteErr := propertyRepository.Delete(ctx, "missing")

			// ASSERT
			Expect(getErr).To(MatchError(domain.ErrNotFound))
			Expect(deleteErr).To(MatchError(domain.ErrNotFound))
		})
	})

	Context("PostgresUserRepository", func() {
		It("should map the unique email violation to DuplicateEmail", func() {
			// ARRANGE
			seeder.InsertUser(ctx, stubs.NewUserStub().WithEmail("taken@example.com").Get())

			// ACT
			err := userRepository.Insert(ctx, stubs.NewUserStub().WithEmail("taken@example.com").Get())

			// ASSERT
			Expect(err).To(MatchError(domain.ErrDuplicateEmail))
			count, _ := seeder.CountRows(ctx, "users")
			Expect(count).To(Equal(1))
		})

		It("should find users by email", func() {
			// ARRANGE
			user := stubs.NewUserStub().WithEmail("find@example.com").WithRole(entities.RoleAdmin).Get()
			seeder.InsertUser(ctx, user)

			// ACT
			fetched, err := userRepository.GetByEmail(ctx, "find@example.com")

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched).To(BeComparableTo(user, timeOpts))
		})
	})

	Context("PostgresMessageRepository", func() {
		It("should list newest first and keep dangling property ids", func() {
			// ARRANGE
			older := stubs.NewMessageStub().WithID("older").WithCreatedAt(time.Now().Add(-time.Hour).UTC()).Get()
			newer := stubs.NewMessageStub().WithID("newer").WithPropertyID("gone").Get()
			seeder.InsertMessage(ctx, older)
			seeder.InsertMessage(ctx, newer)

			// ACT
			list, err := messageRepository.List(ctx)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(2))
			Expect(list[0].ID).To(Equal("newer"))
			Expect(list[0].PropertyID).To(HaveValue(Equal("gone")))
		})

		It("should persist the read flag", func() {
			// ARRANGE
			message := stubs.NewMessageStub().WithID("m1").Get()
			seeder.InsertMessage(ctx, message)
			message.Read = true

			// ACT
			err := messageRepository.Replace(ctx, message)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			read, err := seeder.SelectMessageRead(ctx, "m1")
			Expect(err).NotTo(HaveOccurred())
			Expect(read).To(BeTrue())
		})
	})

	Context("CachedPropertyRepository", func() {
		It("should serve cached reads and drop them on write", func() {
			// ARRANGE
			redisAddrs := env.GetString("TEST_REDIS_ADDRS")
			if redisAddrs == "" {
				Skip("TEST_REDIS_ADDRS not set")
			}
			redisClient := redis.NewRedisClient(redisAddrs, 5, time.Minute)
			defer redisClient.Close()
			cached := repositories.NewCachedPropertyRepository(slog.New(slog.DiscardHandler), propertyRepository, redisClient)

			property := stubs.NewPropertyStub().WithID("pg-cached").Get()
			Expect(cached.Insert(ctx, property)).To(Succeed())
			_, err := cached.GetByID(ctx, "pg-cached")
			Expect(err).NotTo(HaveOccurred())

			// ACT
			property.Title = "Renamed"
			Expect(cached.Replace(ctx, property)).To(Succeed())
			fetched, err := cached.GetByID(ctx, "pg-cached")

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched.Title).To(Equal("Renamed"))
		})
	})
})
