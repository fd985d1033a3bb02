package service

import (
	"context"

	"github.com/khoahotran/portfolio/internal/domain/contact"
)

type EventPublisher interface {
	PublishContactEvent(ctx context.Context, payload contact.EventPayload) error
}
