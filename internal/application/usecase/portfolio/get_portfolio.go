package portfolio

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/domain/experience"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/internal/domain/project"
)

var tracer = otel.Tracer("portfolio_usecase")

type GetPortfolioUseCase struct {
	store      portfolio.Store
	aggregator *experience.Aggregator
	images     service.ImageResolver
}

func NewGetPortfolioUseCase(store portfolio.Store, agg *experience.Aggregator, images service.ImageResolver) *GetPortfolioUseCase {
	return &GetPortfolioUseCase{store: store, aggregator: agg, images: images}
}

type GetPortfolioOutput struct {
	Document portfolio.Document
}

// Execute returns a copy of the content document with derived values filled
// in. The cached document itself is never modified.
func (uc *GetPortfolioUseCase) Execute(ctx context.Context) (*GetPortfolioOutput, error) {
	ctx, span := tracer.Start(ctx, "GetPortfolio")
	defer span.End()

	doc, err := uc.store.Load(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("load portfolio failed: %w", err)
	}

	out := *doc
	if start := doc.CareerStart(); !start.IsZero() {
		out.Statistics.YearsExperience = uc.aggregator.YearsOfExperience(start)
	}
	out.PersonalInfo.Avatar = uc.images.AvatarImage(doc.PersonalInfo.Avatar)

	out.Projects = make([]project.Project, len(doc.Projects))
	for i, p := range doc.Projects {
		p.Image = uc.images.ProjectImage(p.Image)
		out.Projects[i] = p
	}

	return &GetPortfolioOutput{Document: out}, nil
}
