//go:build datagen_postgres
// +build datagen_postgres

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"estateportal/src/domain/entities"
	"estateportal/src/helper/env"
	"estateportal/src/infra/postgres"
	"estateportal/src/repositories"

	"github.com/go-faker/faker/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ListingBundle é um imóvel gerado e as mensagens de contato que ele recebeu.
type ListingBundle struct {
	Property entities.Property
	Messages []entities.Message
}

var (
	propertyTypes = []string{"House", "Apartment", "Villa", "Condo", "Penthouse", "Townhouse"}
	statuses      = []entities.PropertyStatus{
		entities.StatusForSale, entities.StatusForSale, entities.StatusForSale,
		entities.StatusForRent, entities.StatusForRent,
		entities.StatusSold,
		entities.StatusPending,
	}
	featurePool = []string{
		"Pool", "Garden", "Fireplace", "Ocean View", "Home Theater", "Wine Cellar",
		"Smart Home", "Gym", "Rooftop Terrace", "Concierge", "Guest House", "Solar Panels",
	}
	subjects = []string{"Schedule a viewing", "Price question", "Buy inquiry", "Sell inquiry", "Availability"}
)

func newSQLClient() (*pgxpool.Pool, error) {
	dbHost := env.MustGetString("DB_WRITE_HOST")
	dbPort := env.GetString("DB_WRITE_PORT", "5432")
	dbname := env.MustGetString("DB_NAME")
	dbUser := env.MustGetString("DB_USER")
	dbPassword := env.MustGetString("DB_PASSWORD")
	maxConnections := 20
	return postgres.NewPostgresClient(dbHost, dbPort, dbname, dbUser, dbPassword, maxConnections)
}

func main() {
	numListings := flag.Int("listings", 1000, "Número de imóveis a gerar. Use -1 para infinito.")
	bulkSize := flag.Int("bulk-size", 200, "Imóveis por COPY")
	maxMessages := flag.Int("max-messages", 3, "Máximo de mensagens por imóvel")
	numConsumers := flag.Int("consumers", 4, "Número de consumers gravando em paralelo")
	seedFixture := flag.Bool("fixture", false, "Grava também os dados de exemplo (8 imóveis, 3 usuários, 5 mensagens)")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := newSQLClient()
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	if *seedFixture {
		if err := insertFixture(ctx, db); err != nil {
			log.Fatalf("Failed to insert fixture: %v", err)
		}
		log.Println("Fixture inserted")
	}

	dataChan := make(chan ListingBundle, (*bulkSize)*(*numConsumers)*2)

	var wg sync.WaitGroup
	var totalProcessed, totalErrors int64
	startTime := time.Now()

	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				processed := atomic.LoadInt64(&totalProcessed)
				errors := atomic.LoadInt64(&totalErrors)
				elapsed := time.Since(startTime)
				fmt.Printf("Processed: %d | Errors: %d | Rate: %.1f/s | Elapsed: %v\n",
					processed, errors, float64(processed)/elapsed.Seconds(), elapsed.Round(time.Second))
			}
		}
	}()

	for i := 0; i < *numConsumers; i++ {
		wg.Add(1)
		go consumer(ctx, &wg, db, dataChan, *bulkSize, i+1, &totalProcessed, &totalErrors)
	}

	wg.Add(1)
	go producer(ctx, &wg, dataChan, *numListings, *maxMessages)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutdown signal received, stopping...")
		cancel()
	}()

	wg.Wait()

	elapsed := time.Since(startTime)
	processed := atomic.LoadInt64(&totalProcessed)
	fmt.Printf("\nSeeding finished: %d listings, %d errors, %v\n",
		processed, atomic.LoadInt64(&totalErrors), elapsed.Round(time.Second))
}

// insertFixture grava os dados de exemplo pelos próprios repositórios; email duplicado é ignorado.
func insertFixture(ctx context.Context, db *pgxpool.Pool) error {
	propertyRepository := repositories.NewPostgresPropertyRepository(db, db)
	userRepository := repositories.NewPostgresUserRepository(db, db)
	messageRepository := repositories.NewPostgresMessageRepository(db, db)

	for _, p := range repositories.SeedProperties() {
		if err := propertyRepository.Insert(ctx, p); err != nil && !postgres.IsUniqueViolation(err) {
			return err
		}
	}
	for _, u := range repositories.SeedUsers() {
		if err := userRepository.Insert(ctx, u); err != nil && !postgres.IsUniqueViolation(err) {
			log.Printf("Skipping user %s: %v", u.Email, err)
		}
	}
	seedMessages := repositories.SeedMessages()
	// a lista vem da mais nova para a mais antiga; grava na ordem de chegada
	for i := len(seedMessages) - 1; i >= 0; i-- {
		if err := messageRepository.Insert(ctx, seedMessages[i]); err != nil && !postgres.IsUniqueViolation(err) {
			return err
		}
	}
	return nil
}

func producer(ctx context.Context, wg *sync.WaitGroup, dataChan chan<- ListingBundle, numListings, maxMessages int) {
	defer wg.Done()
	defer close(dataChan)

	isInfinite := numListings == -1
	count := 0

	for isInfinite || count < numListings {
		bundle := generateListing(maxMessages)

		select {
		case dataChan <- bundle:
			count++
			if count%500 == 0 {
				fmt.Printf("Generated %d listings\n", count)
			}
		case <-ctx.Done():
			fmt.Println("Producer stopping.")
			return
		}
	}
}

func consumer(ctx context.Context, wg *sync.WaitGroup, db *pgxpool.Pool, dataChan <-chan ListingBundle, bulkSize, consumerID int, totalProcessed, totalErrors *int64) {
	defer wg.Done()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	bundles := make([]ListingBundle, 0, bulkSize)

	flush := func(reason string) {
		if len(bundles) == 0 {
			return
		}
		if err := bulkInsert(ctx, db, bundles); err != nil {
			log.Printf("Consumer %d: ERROR on %s: %v", consumerID, reason, err)
			atomic.AddInt64(totalErrors, 1)
		} else {
			atomic.AddInt64(totalProcessed, int64(len(bundles)))
		}
		bundles = make([]ListingBundle, 0, bulkSize)
	}

	for {
		select {
		case b, ok := <-dataChan:
			if !ok {
				flush("final flush")
				return
			}
			bundles = append(bundles, b)
			if len(bundles) >= bulkSize {
				flush("bulk insert")
			}

		case <-ticker.C:
			flush("ticker flush")

		case <-ctx.Done():
			return
		}
	}
}

func bulkInsert(ctx context.Context, db *pgxpool.Pool, bundles []ListingBundle) error {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	propertyRows := make([][]any, 0, len(bundles))
	var messageRows [][]any

	for _, b := range bundles {
		p := b.Property
		location, _ := json.Marshal(p.Location)
		agent, _ := json.Marshal(p.Agent)

		propertyRows = append(propertyRows, []any{
			p.ID, p.Title, p.Description, p.Price, p.Type, string(p.Status), p.Bedrooms, p.Bathrooms,
			p.Garage, p.Size, p.YearBuilt, p.Address, location, p.Features, p.Images, nil,
			p.Highlighted, agent, p.CreatedAt, nil,
		})

		for _, m := range b.Messages {
			messageRows = append(messageRows, []any{
				m.ID, m.Name, m.Email, m.Phone, m.Subject, m.Message, m.PropertyID, m.Read, m.CreatedAt,
			})
		}
	}

	_, err = tx.CopyFrom(ctx, pgx.Identifier{"properties"}, []string{
		"id", "title", "description", "price", "type", "status", "bedrooms", "bathrooms",
		"garage", "size", "year_built", "address", "location", "features", "images", "video_url",
		"highlighted", "agent", "created_at", "updated_at",
	}, pgx.CopyFromRows(propertyRows))
	if err != nil {
		return fmt.Errorf("failed to copy properties: %w", err)
	}

	if len(messageRows) > 0 {
		_, err = tx.CopyFrom(ctx, pgx.Identifier{"messages"}, []string{
			"id", "name", "email", "phone", "subject", "message", "property_id", "read", "created_at",
		}, pgx.CopyFromRows(messageRows))
		if err != nil {
			return fmt.Errorf("failed to copy messages: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func generateListing(maxMessages int) ListingBundle {
	address := faker.GetRealAddress()
	propertyType := propertyTypes[rand.Intn(len(propertyTypes))]
	createdAt := time.Now().UTC().Add(-time.Duration(rand.Intn(365*24)) * time.Hour)

	features := make([]string, 0, 4)
	for _, i := range rand.Perm(len(featurePool))[:2+rand.Intn(3)] {
		features = append(features, featurePool[i])
	}

	images := make([]string, 0, 4)
	for i := 0; i < 1+rand.Intn(4); i++ {
		images = append(images, fmt.Sprintf("/images/generated/%s-%d.jpg", faker.Word(), i))
	}

	property := entities.Property{
		ID:          faker.UUIDHyphenated(),
		Title:       fmt.Sprintf("%s %s %s", faker.LastName(), faker.Word(), propertyType),
		Description: faker.Paragraph(),
		Price:       float64((200 + rand.Intn(9800)) * 1000),
		Type:        propertyType,
		Status:      statuses[rand.Intn(len(statuses))],
		Bedrooms:    1 + rand.Intn(6),
		Bathrooms:   float64(2+rand.Intn(9)) / 2,
		Garage:      rand.Intn(4),
		Size:        600 + rand.Intn(8000),
		YearBuilt:   1950 + rand.Intn(75),
		Address:     fmt.Sprintf("%s, %s, %s %s", address.Address, address.City, address.State, address.PostalCode),
		Location: entities.Location{
			Latitude:  address.Coordinates.Latitude,
			Longitude: address.Coordinates.Longitude,
		},
		Features:    features,
		Images:      images,
		Highlighted: rand.Float32() < 0.1,
		Agent: entities.Agent{
			ID:    faker.UUIDHyphenated(),
			Name:  faker.Name(),
			Phone: faker.Phonenumber(),
			Email: faker.Email(),
		},
		CreatedAt: createdAt,
	}

	messages := make([]entities.Message, 0, maxMessages)
	for i := 0; i < rand.Intn(maxMessages+1); i++ {
		propertyID := property.ID
		messages = append(messages, entities.Message{
			ID:         faker.UUIDHyphenated(),
			Name:       faker.Name(),
			Email:      faker.Email(),
			Phone:      faker.Phonenumber(),
			Subject:    subjects[rand.Intn(len(subjects))],
			Message:    faker.Sentence(),
			PropertyID: &propertyID,
			Read:       rand.Float32() < 0.5,
			CreatedAt:  createdAt.Add(time.Duration(1+rand.Intn(72)) * time.Hour),
		})
	}

	return ListingBundle{Property: property, Messages: messages}
}
