package contact

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/domain/contact"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

var tracer = otel.Tracer("contact_usecase")

type SubmitContactUseCase struct {
	lock      *contact.Lock
	relay     service.FormRelay
	publisher service.EventPublisher
	formName  string
	now       func() time.Time
	logger    logger.Logger
}

// NewSubmitContactUseCase accepts a nil publisher, in which case no event is
// emitted and submissions are not archived.
func NewSubmitContactUseCase(
	lock *contact.Lock,
	relay service.FormRelay,
	publisher service.EventPublisher,
	formName string,
	now func() time.Time,
	log logger.Logger,
) *SubmitContactUseCase {
	return &SubmitContactUseCase{
		lock:      lock,
		relay:     relay,
		publisher: publisher,
		formName:  formName,
		now:       now,
		logger:    log,
	}
}

type SubmitContactInput struct {
	ClientID   string
	Submission contact.Submission
}

type SubmitContactOutput struct {
	MessageID uuid.UUID
}

func (uc *SubmitContactUseCase) Execute(ctx context.Context, input SubmitContactInput) (*SubmitContactOutput, error) {
	ctx, span := tracer.Start(ctx, "SubmitContact")
	defer span.End()
	span.SetAttributes(attribute.String("client_id", input.ClientID))

	state, err := uc.lock.Check(ctx, input.ClientID)
	if err != nil {
		span.RecordError(err)
		return nil, apperror.NewInternal("failed to read submission state", err)
	}
	if state == contact.Submitted {
		return nil, apperror.NewAppError(apperror.ErrConflict, "Message already sent",
			"a message has already been sent from this browser", nil)
	}

	if err := input.Submission.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	if err := uc.relay.Send(ctx, uc.formName, input.Submission); err != nil {
		uc.logger.Error("Form relay rejected submission", err, zap.String("client_id", input.ClientID))
		span.RecordError(err)
		return nil, apperror.NewUpstream("form relay", err)
	}

	// The message is already delivered; a lock write failure only means the
	// visitor may send a second one.
	if err := uc.lock.MarkSubmitted(ctx, input.ClientID); err != nil {
		uc.logger.Error("Failed to close submission lock", err, zap.String("client_id", input.ClientID))
	}

	payload := contact.EventPayload{
		EventType:  contact.EventTypeSubmitted,
		MessageID:  uuid.New(),
		ClientID:   input.ClientID,
		Submission: input.Submission,
		OccurredAt: uc.now().UTC(),
	}

	if uc.publisher != nil {
		go func() {
			if err := uc.publisher.PublishContactEvent(context.Background(), payload); err != nil {
				uc.logger.Error("Failed to publish Kafka 'submitted' event", err,
					zap.String("message_id", payload.MessageID.String()))
			}
		}()
	}

	uc.logger.Info("Contact message relayed", zap.String("message_id", payload.MessageID.String()))
	return &SubmitContactOutput{MessageID: payload.MessageID}, nil
}
