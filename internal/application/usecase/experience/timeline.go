package experience

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/khoahotran/portfolio/internal/domain/experience"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
)

var tracer = otel.Tracer("experience_usecase")

type GetTimelineUseCase struct {
	store      portfolio.Store
	aggregator *experience.Aggregator
}

func NewGetTimelineUseCase(store portfolio.Store, agg *experience.Aggregator) *GetTimelineUseCase {
	return &GetTimelineUseCase{store: store, aggregator: agg}
}

type Position struct {
	experience.Record
	Duration string
	Bullets  []string
}

type Group struct {
	experience.CompanyGroup
	Roles []Position
}

type GetTimelineOutput struct {
	YearsOfExperience int
	Groups            []Group
}

func (uc *GetTimelineUseCase) Execute(ctx context.Context) (*GetTimelineOutput, error) {
	ctx, span := tracer.Start(ctx, "GetTimeline")
	defer span.End()

	doc, err := uc.store.Load(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("load portfolio failed: %w", err)
	}

	out := BuildTimeline(uc.aggregator, doc)
	span.SetAttributes(
		attribute.Int("timeline.records", len(doc.Experience)),
		attribute.Int("timeline.groups", len(out.Groups)),
	)
	return out, nil
}

// BuildTimeline is the whole derivation from a loaded document; the CLI uses
// it directly.
func BuildTimeline(agg *experience.Aggregator, doc *portfolio.Document) *GetTimelineOutput {
	companyGroups := agg.GroupByCompany(doc.Experience)

	groups := make([]Group, len(companyGroups))
	for i, g := range companyGroups {
		roles := make([]Position, len(g.Positions))
		for j, r := range g.Positions {
			roles[j] = Position{
				Record:   r,
				Duration: agg.ComputeDuration(r.Period),
				Bullets:  experience.DescriptionToBulletPoints(r.Description),
			}
		}
		groups[i] = Group{CompanyGroup: g, Roles: roles}
	}

	years := 0
	if start := doc.CareerStart(); !start.IsZero() {
		years = agg.YearsOfExperience(start)
	}

	return &GetTimelineOutput{YearsOfExperience: years, Groups: groups}
}
