package contact

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Submission is one message from the contact form.
type Submission struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

var validate = validator.New()

func (s *Submission) Validate() error {
	return validate.Struct(s)
}

// Message is an archived submission.
type Message struct {
	ID         uuid.UUID `json:"id"`
	ClientID   string    `json:"client_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	ReceivedAt time.Time `json:"received_at"`
}

const EventTypeSubmitted = "CONTACT_SUBMITTED"

// EventPayload is published after the relay accepted a submission.
type EventPayload struct {
	EventType  string     `json:"event_type"`
	MessageID  uuid.UUID  `json:"message_id"`
	ClientID   string     `json:"client_id"`
	Submission Submission `json:"submission"`
	OccurredAt time.Time  `json:"occurred_at"`
}

type Repository interface {
	Save(ctx context.Context, m *Message) error
	List(ctx context.Context, limit, offset int) ([]*Message, error)
}
