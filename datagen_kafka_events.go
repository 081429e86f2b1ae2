//go:build datagen_kafka_events
// +build datagen_kafka_events

package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"estateportal/src/domain"
	"estateportal/src/infra/kafka"
	"estateportal/src/services/events"

	"github.com/go-faker/faker/v4"
)

// Gera eventos message.sent (contatos e leads) para exercitar o lead-notifier.

var subjects = []string{"Buy inquiry", "Sell inquiry", "Schedule a viewing", "Price question"}

func generateEvent() domain.DomainEvent {
	properties := map[string]interface{}{
		"name":    faker.Name(),
		"email":   faker.Email(),
		"subject": subjects[rand.Intn(len(subjects))],
	}
	if rand.Float32() < 0.5 {
		properties["property_id"] = faker.UUIDHyphenated()
	}
	return events.New(domain.EventMessageSent, "message", faker.UUIDHyphenated(), properties)
}

func main() {
	totalMessages := flag.Int("count", 100, "Total number of events to generate. Use -1 for infinite.")
	batchSize := flag.Int("batch-size", 10, "Number of events per batch")
	topic := flag.String("topic", "estateportal.events", "Kafka topic to send events to")
	brokers := flag.String("brokers", "", "Kafka brokers (comma-separated) (required)")
	delayMs := flag.Int("delay-ms", 500, "Delay in milliseconds between batches")
	flag.Parse()

	if *brokers == "" {
		log.Fatal("The 'brokers' flag is required")
	}

	kafkaClient, err := kafka.NewKafkaProducer(*brokers)
	if err != nil {
		log.Fatalf("Failed to create Kafka client: %v", err)
	}
	defer kafkaClient.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Received shutdown signal, stopping...")
		cancel()
	}()

	isInfinite := *totalMessages == -1
	sent := 0
	startTime := time.Now()

	for isInfinite || sent < *totalMessages {
		select {
		case <-ctx.Done():
			return
		default:
		}

		current := *batchSize
		if !isInfinite && *totalMessages-sent < current {
			current = *totalMessages - sent
		}

		kafkaMessages := make([]kafka.Message, 0, current)
		for i := 0; i < current; i++ {
			event := generateEvent()
			value, err := json.Marshal(event)
			if err != nil {
				log.Printf("Failed to marshal event: %v", err)
				continue
			}
			kafkaMessages = append(kafkaMessages, kafka.Message{
				Key:   event.Data.Reference,
				Value: value,
				Headers: map[string]string{
					"event_type":  event.Type,
					"entity_type": event.Data.Type,
					"event_id":    event.ID,
				},
			})
		}

		if err := kafkaClient.Producer(kafkaMessages, *topic); err != nil {
			log.Printf("Failed to send batch: %v", err)
			continue
		}
		sent += len(kafkaMessages)
		log.Printf("Sent %d events (%.1f/sec)", sent, float64(sent)/time.Since(startTime).Seconds())

		if *delayMs > 0 {
			time.Sleep(time.Duration(*delayMs) * time.Millisecond)
		}
	}

	log.Printf("Completed! Sent %d events in %v", sent, time.Since(startTime).Round(time.Millisecond))
}
