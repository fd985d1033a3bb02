package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/internal/domain/contact"
	"github.com/khoahotran/portfolio/pkg/logger"
)

const (
	TopicContactEvents = "contact.events"
)

// messageWriter is the part of *kafka.Writer the producer uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaProducerClient struct {
	ContactEventsWriter messageWriter
	logger              logger.Logger
}

var _ service.EventPublisher = (*KafkaProducerClient)(nil)

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	contactWriter := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  TopicContactEvents,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}

	log.Info("Initialize Kafka Producers successfully.", zap.Strings("brokers", brokers))

	return &KafkaProducerClient{
		ContactEventsWriter: contactWriter,
		logger:              log,
	}, nil
}

// PublishContactEvent keys messages by client id so one visitor's events
// stay ordered on a single partition.
func (c *KafkaProducerClient) PublishContactEvent(ctx context.Context, payload contact.EventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal contact event: %w", err)
	}

	err = c.ContactEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.ClientID),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("write contact event: %w", err)
	}

	c.logger.Debug("Contact event published",
		zap.String("event_type", payload.EventType),
		zap.String("message_id", payload.MessageID.String()),
	)
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.ContactEventsWriter != nil {
		if err := c.ContactEventsWriter.Close(); err != nil {
			c.logger.Error("Failed to close Kafka writer", err)
		}
	}
	c.logger.Info("Closed Kafka Producers")
}
