package skill

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"

	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/internal/domain/skill"
)

var tracer = otel.Tracer("skill_usecase")

type ListSkillsUseCase struct {
	store portfolio.Store
}

func NewListSkillsUseCase(store portfolio.Store) *ListSkillsUseCase {
	return &ListSkillsUseCase{store: store}
}

type ListSkillsOutput struct {
	Categories []skill.Category
}

func (uc *ListSkillsUseCase) Execute(ctx context.Context) (*ListSkillsOutput, error) {
	ctx, span := tracer.Start(ctx, "ListSkills")
	defer span.End()

	doc, err := uc.store.Load(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("load portfolio failed: %w", err)
	}

	s := doc.Skills
	return &ListSkillsOutput{Categories: skill.Categorize(s.Frontend, s.Backend, s.Tools)}, nil
}
