package contact

import (
	"context"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/domain/contact"
	"github.com/khoahotran/portfolio/pkg/apperror"
)

type ContactStatusUseCase struct {
	lock     *contact.Lock
	relay    service.FormRelay
	formName string
}

func NewContactStatusUseCase(lock *contact.Lock, relay service.FormRelay, formName string) *ContactStatusUseCase {
	return &ContactStatusUseCase{lock: lock, relay: relay, formName: formName}
}

type ContactStatusInput struct {
	ClientID string
}

type ContactStatusOutput struct {
	State      contact.State
	FormAction string
}

func (uc *ContactStatusUseCase) Execute(ctx context.Context, input ContactStatusInput) (*ContactStatusOutput, error) {
	ctx, span := tracer.Start(ctx, "ContactStatus")
	defer span.End()

	out := &ContactStatusOutput{
		State:      contact.NotSubmitted,
		FormAction: uc.relay.FormActionURL(uc.formName),
	}
	if input.ClientID == "" {
		return out, nil
	}

	state, err := uc.lock.Check(ctx, input.ClientID)
	if err != nil {
		span.RecordError(err)
		return nil, apperror.NewInternal("failed to read submission state", err)
	}
	out.State = state
	return out, nil
}
