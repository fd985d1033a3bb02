package service

import (
	"context"

	"github.com/khoahotran/portfolio/internal/domain/contact"
)

// FormRelay forwards contact submissions to the hosted form backend.
type FormRelay interface {
	Send(ctx context.Context, formName string, s contact.Submission) error
	FormActionURL(formName string) string
}
