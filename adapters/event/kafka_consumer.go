package event

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/internal/domain/contact"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

const GroupContactArchiver = "contact-archiver-group"

// messageReader is the part of *kafka.Reader the consumer uses.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type ContactEventHandler func(ctx context.Context, payload contact.EventPayload) error

type ContactConsumer struct {
	reader messageReader
	logger logger.Logger
}

func NewContactConsumer(cfg config.Config, log logger.Logger) *ContactConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    TopicContactEvents,
		GroupID:  GroupContactArchiver,
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	return &ContactConsumer{reader: reader, logger: log}
}

// Run feeds events to handle until ctx is cancelled. Undecodable and invalid
// events are committed and skipped; any other handler error leaves the
// message uncommitted so it is delivered again.
func (c *ContactConsumer) Run(ctx context.Context, handle ContactEventHandler) error {
	c.logger.Info("Worker listening", zap.String("topic", TopicContactEvents), zap.String("group", GroupContactArchiver))

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			c.logger.Error("Failed to read message from Kafka", err)
			continue
		}

		fields := []zap.Field{
			zap.String("topic", msg.Topic),
			zap.Int("partition", msg.Partition),
			zap.Int64("offset", msg.Offset),
		}

		var payload contact.EventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			c.logger.Warn("Skipping undecodable event", append(fields, zap.Error(err))...)
			c.commit(ctx, msg)
			continue
		}

		if err := handle(ctx, payload); err != nil {
			if errors.Is(err, apperror.ErrInvalidInput) {
				c.logger.Warn("Skipping invalid event", append(fields, zap.Error(err))...)
				c.commit(ctx, msg)
				continue
			}
			c.logger.Error("Failed to process event", err, append(fields, zap.String("message_id", payload.MessageID.String()))...)
			continue
		}

		c.commit(ctx, msg)
	}
}

func (c *ContactConsumer) commit(ctx context.Context, msg kafka.Message) {
	if err := c.reader.CommitMessages(ctx, msg); err != nil {
		c.logger.Error("Failed to commit message", err, zap.Int64("offset", msg.Offset))
	}
}

func (c *ContactConsumer) Close() {
	if err := c.reader.Close(); err != nil {
		c.logger.Error("Failed to close Kafka reader", err)
	}
}
