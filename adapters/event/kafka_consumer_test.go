package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio/internal/domain/contact"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

// scriptedReader replays queued messages, then cancels the run.
type scriptedReader struct {
	queue     []kafka.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *scriptedReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.queue) == 0 {
		r.cancel()
		return kafka.Message{}, context.Canceled
	}
	msg := r.queue[0]
	r.queue = r.queue[1:]
	return msg, nil
}

func (r *scriptedReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *scriptedReader) Close() error { return nil }

func eventMessage(t *testing.T, offset int64, eventType string) kafka.Message {
	t.Helper()
	value, err := json.Marshal(contact.EventPayload{EventType: eventType, ClientID: "c1"})
	require.NoError(t, err)
	return kafka.Message{Offset: offset, Value: value}
}

func TestContactConsumer_CommitPolicy(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &scriptedReader{cancel: cancel, queue: []kafka.Message{
		eventMessage(t, 1, contact.EventTypeSubmitted),
		{Offset: 2, Value: []byte("{garbage")},
		eventMessage(t, 3, "UNKNOWN"),
		eventMessage(t, 4, "FAIL"),
	}}
	consumer := &ContactConsumer{reader: reader, logger: logger.NewNopLogger()}

	var handled []string
	err := consumer.Run(ctx, func(_ context.Context, p contact.EventPayload) error {
		handled = append(handled, p.EventType)
		switch p.EventType {
		case "UNKNOWN":
			return apperror.NewInvalidInput("unknown event type", nil)
		case "FAIL":
			return errors.New("database unavailable")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{contact.EventTypeSubmitted, "UNKNOWN", "FAIL"}, handled)
	assert.Equal(t, []int64{1, 2, 3}, reader.committed)
}
