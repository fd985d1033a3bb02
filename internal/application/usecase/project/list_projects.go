package project

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/internal/domain/project"
)

var tracer = otel.Tracer("project_usecase")

type ListProjectsUseCase struct {
	store  portfolio.Store
	images service.ImageResolver
}

func NewListProjectsUseCase(store portfolio.Store, images service.ImageResolver) *ListProjectsUseCase {
	return &ListProjectsUseCase{store: store, images: images}
}

type ListProjectsOutput struct {
	Projects []project.Project
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context) (*ListProjectsOutput, error) {
	ctx, span := tracer.Start(ctx, "ListProjects")
	defer span.End()

	doc, err := uc.store.Load(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("load portfolio failed: %w", err)
	}

	projects := resolveImages(uc.images, doc.Projects)
	span.SetAttributes(attribute.Int("projects.count", len(projects)))
	return &ListProjectsOutput{Projects: projects}, nil
}

// resolveImages copies the slice so the cached document keeps its raw refs.
func resolveImages(images service.ImageResolver, in []project.Project) []project.Project {
	out := make([]project.Project, len(in))
	for i, p := range in {
		p.Image = images.ProjectImage(p.Image)
		out[i] = p
	}
	return out
}
