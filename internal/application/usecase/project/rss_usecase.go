package project

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type RSSUseCase struct {
	store   portfolio.Store
	siteURL string
	now     func() time.Time
	logger  logger.Logger
}

func NewRSSUseCase(store portfolio.Store, siteURL string, now func() time.Time, log logger.Logger) *RSSUseCase {
	return &RSSUseCase{
		store:   store,
		siteURL: strings.TrimRight(siteURL, "/"),
		now:     now,
		logger:  log,
	}
}

func (uc *RSSUseCase) Execute(ctx context.Context) (*feeds.Feed, error) {
	ctx, span := tracer.Start(ctx, "ProjectsRSS")
	defer span.End()

	doc, err := uc.store.Load(ctx)
	if err != nil {
		uc.logger.Error("Failed to load portfolio for RSS", err)
		span.RecordError(err)
		return nil, err
	}

	owner := doc.PersonalInfo
	feed := &feeds.Feed{
		Title:       fmt.Sprintf("%s - Projects", owner.Name),
		Link:        &feeds.Link{Href: uc.siteURL + "/projects"},
		Description: owner.Title,
		Author:      &feeds.Author{Name: owner.Name, Email: owner.Email},
		Created:     uc.now(),
	}

	items := make([]*feeds.Item, 0, len(doc.Projects))
	for _, p := range doc.Projects {
		link := p.LiveURL
		if link == "" {
			link = fmt.Sprintf("%s/projects/%s", uc.siteURL, p.Slug)
		}
		items = append(items, &feeds.Item{
			Id:          p.Slug,
			Title:       p.Title,
			Link:        &feeds.Link{Href: link},
			Description: p.Description,
			Created:     feed.Created,
		})
	}
	feed.Items = items

	uc.logger.Info("RSS feed generated successfully", zap.Int("item_count", len(items)))
	return feed, nil
}
