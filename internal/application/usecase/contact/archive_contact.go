package contact

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/domain/contact"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

// ArchiveContactUseCase stores relayed submissions for the admin inbox. It
// runs in the worker, one call per consumed event.
type ArchiveContactUseCase struct {
	repo   contact.Repository
	logger logger.Logger
}

func NewArchiveContactUseCase(repo contact.Repository, log logger.Logger) *ArchiveContactUseCase {
	return &ArchiveContactUseCase{repo: repo, logger: log}
}

func (uc *ArchiveContactUseCase) Execute(ctx context.Context, payload contact.EventPayload) error {
	ctx, span := tracer.Start(ctx, "ArchiveContact")
	defer span.End()
	span.SetAttributes(attribute.String("message_id", payload.MessageID.String()))

	if payload.EventType != contact.EventTypeSubmitted {
		return apperror.NewInvalidInput(fmt.Sprintf("unknown event type %q", payload.EventType), nil)
	}

	msg := &contact.Message{
		ID:         payload.MessageID,
		ClientID:   payload.ClientID,
		Name:       payload.Submission.Name,
		Email:      payload.Submission.Email,
		Subject:    payload.Submission.Subject,
		Body:       payload.Submission.Message,
		ReceivedAt: payload.OccurredAt,
	}

	if err := uc.repo.Save(ctx, msg); err != nil {
		span.RecordError(err)
		return fmt.Errorf("archive contact message failed: %w", err)
	}

	uc.logger.Info("Contact message archived", zap.String("message_id", msg.ID.String()))
	return nil
}
