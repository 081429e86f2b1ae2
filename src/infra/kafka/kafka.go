package kafka

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/IBM/sarama"
)

type KafkaClient struct {
	consumer  sarama.ConsumerGroup
	producer  sarama.SyncProducer
	brokers   []string
	batchSize int
}

type Message struct {
	Key      string
	Value    []byte
	Headers  map[string]string
	internal *sarama.ConsumerMessage
}

type Handler func(messages []Message) error

func newConfig(batchSize int) *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V2_8_0_0

	config.Consumer.Group.Rebalance.Strategy = sarama.NewBalanceStrategyRoundRobin()
	config.Consumer.Offsets.Initial = sarama.OffsetNewest
	config.Consumer.Group.Session.Timeout = 30 * time.Second
	config.Consumer.Group.Heartbeat.Interval = 10 * time.Second
	config.Consumer.MaxProcessingTime = 30 * time.Second
	config.Consumer.MaxWaitTime = 250 * time.Millisecond
	config.ChannelBufferSize = batchSize * 2

	// Eventos de domínio são poucos e pequenos: prioriza latência.
	config.Producer.RequiredAcks = sarama.WaitForLocal
	config.Producer.Retry.Max = 3
	config.Producer.Return.Successes = true
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Flush.Frequency = 50 * time.Millisecond
	config.Producer.MaxMessageBytes = 1024 * 1024

	return config
}

// NewKafkaProducer cria um cliente só de escrita (a API não consome nada).
func NewKafkaProducer(brokers string) (*KafkaClient, error) {
	brokerList := strings.Split(brokers, ",")

	producer, err := sarama.NewSyncProducer(brokerList, newConfig(1))
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}

	return &KafkaClient{producer: producer, brokers: brokerList, batchSize: 1}, nil
}

func NewKafkaClient(brokers string, groupID string, batchSize int) (*KafkaClient, error) {
	brokerList := strings.Split(brokers, ",")
	config := newConfig(batchSize)

	consumer, err := sarama.NewConsumerGroup(brokerList, groupID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokerList, config)
	if err != nil {
		consumer.Close()
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}

	log.Printf("Kafka client initialized with batch size: %d", batchSize)

	return &KafkaClient{
		consumer:  consumer,
		producer:  producer,
		brokers:   brokerList,
		batchSize: batchSize,
	}, nil
}

func (k *KafkaClient) Consumer(ctx context.Context, handler Handler, topic string) error {
	if k.consumer == nil {
		return errors.New("kafka client was created without a consumer group")
	}

	consumerHandler := &consumerGroupHandler{
		handler:   handler,
		batchSize: k.batchSize,
	}

	for {
		select {
		case <-ctx.Done():
			log.Println("Kafka consumer context cancelled")
			return nil
		default:
			if err := k.consumer.Consume(ctx, []string{topic}, consumerHandler); err != nil {
				log.Printf("Error consuming from topic %s: %v", topic, err)
				time.Sleep(5 * time.Second)
				continue
			}
		}
	}
}

func (k *KafkaClient) Producer(messages []Message, topic string) error {
	if len(messages) == 0 {
		return nil
	}

	kafkaMessages := make([]*sarama.ProducerMessage, 0, len(messages))
	for _, msg := range messages {
		headers := make([]sarama.RecordHeader, 0, len(msg.Headers))
		for key, value := range msg.Headers {
			headers = append(headers, sarama.RecordHeader{Key: []byte(key), Value: []byte(value)})
		}

		kafkaMessages = append(kafkaMessages, &sarama.ProducerMessage{
			Topic:   topic,
			Key:     sarama.StringEncoder(msg.Key),
			Value:   sarama.ByteEncoder(msg.Value),
			Headers: headers,
		})
	}

	if err := k.producer.SendMessages(kafkaMessages); err != nil {
		var producerErrors sarama.ProducerErrors
		if errors.As(err, &producerErrors) {
			return fmt.Errorf("batch send failed: %d/%d messages failed: %w", len(producerErrors), len(kafkaMessages), err)
		}
		return fmt.Errorf("batch send failed: %w", err)
	}

	return nil
}

func (k *KafkaClient) Close() error {
	var errs []error

	if k.consumer != nil {
		if err := k.consumer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close consumer: %w", err))
		}
	}

	if err := k.producer.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close producer: %w", err))
	}

	return errors.Join(errs...)
}

// consumerGroupHandler implementa sarama.ConsumerGroupHandler
type consumerGroupHandler struct {
	handler   Handler
	batchSize int
}

func (h *consumerGroupHandler) Setup(session sarama.ConsumerGroupSession) error {
	return nil
}

func (h *consumerGroupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *consumerGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	batchTimeout := 2 * time.Second

	messages := make([]Message, 0, h.batchSize)
	timer := time.NewTimer(batchTimeout)
	defer timer.Stop()

	for {
		select {
		case message := <-claim.Messages():
			if message == nil {
				h.processBatch(session, messages)
				return nil
			}

			messages = append(messages, toMessage(message))

			if len(messages) >= h.batchSize {
				h.processBatch(session, messages)
				messages = messages[:0]
				timer.Reset(batchTimeout)
			}

		case <-timer.C:
			h.processBatch(session, messages)
			messages = messages[:0]
			timer.Reset(batchTimeout)

		case <-session.Context().Done():
			h.processBatch(session, messages)
			return nil
		}
	}
}

func toMessage(message *sarama.ConsumerMessage) Message {
	headers := make(map[string]string, len(message.Headers))
	for _, header := range message.Headers {
		if header != nil {
			headers[string(header.Key)] = string(header.Value)
		}
	}

	return Message{
		Key:      string(message.Key),
		Value:    message.Value,
		Headers:  headers,
		internal: message,
	}
}

func (h *consumerGroupHandler) processBatch(session sarama.ConsumerGroupSession, messages []Message) {
	if len(messages) == 0 {
		return
	}

	if err := h.handler(messages); err != nil {
		log.Printf("Handler error for batch: %v", err)
		// Don't mark messages - they will be retried
		return
	}

	for _, msg := range messages {
		if msg.internal != nil {
			session.MarkMessage(msg.internal, "")
		}
	}
}
