package contact

import (
	"context"
	"fmt"

	"github.com/khoahotran/portfolio/internal/domain/contact"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ListMessagesUseCase struct {
	repo contact.Repository
}

func NewListMessagesUseCase(repo contact.Repository) *ListMessagesUseCase {
	return &ListMessagesUseCase{repo: repo}
}

type ListMessagesInput struct {
	Page  int
	Limit int
}

type ListMessagesOutput struct {
	Messages []*contact.Message
	Page     int
	Limit    int
}

func (uc *ListMessagesUseCase) Execute(ctx context.Context, input ListMessagesInput) (*ListMessagesOutput, error) {
	ctx, span := tracer.Start(ctx, "ListMessages")
	defer span.End()

	page, limit := input.Page, input.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	msgs, err := uc.repo.List(ctx, limit, (page-1)*limit)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list contact messages failed: %w", err)
	}
	if msgs == nil {
		msgs = []*contact.Message{}
	}
	return &ListMessagesOutput{Messages: msgs, Page: page, Limit: limit}, nil
}
