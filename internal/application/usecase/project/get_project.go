package project

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/internal/domain/project"
	"github.com/khoahotran/portfolio/pkg/apperror"
)

type GetProjectUseCase struct {
	store  portfolio.Store
	images service.ImageResolver
}

func NewGetProjectUseCase(store portfolio.Store, images service.ImageResolver) *GetProjectUseCase {
	return &GetProjectUseCase{store: store, images: images}
}

type GetProjectInput struct {
	Slug string
}

type GetProjectOutput struct {
	Project project.Project
}

func (uc *GetProjectUseCase) Execute(ctx context.Context, input GetProjectInput) (*GetProjectOutput, error) {
	ctx, span := tracer.Start(ctx, "GetProject")
	defer span.End()
	span.SetAttributes(attribute.String("project.slug", input.Slug))

	doc, err := uc.store.Load(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("load portfolio failed: %w", err)
	}

	for _, p := range doc.Projects {
		if p.Slug == input.Slug {
			p.Image = uc.images.ProjectImage(p.Image)
			return &GetProjectOutput{Project: p}, nil
		}
	}

	err = apperror.NewAppError(apperror.ErrNotFound, "Project not found",
		fmt.Sprintf("project with slug '%s' was not found", input.Slug), project.ErrProjectNotFound)
	span.RecordError(err)
	return nil, err
}
