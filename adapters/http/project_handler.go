package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	projectUC "github.com/khoahotran/portfolio/internal/application/usecase/project"
)

type ProjectHandler struct {
	listProjectsUseCase *projectUC.ListProjectsUseCase
	getProjectUseCase   *projectUC.GetProjectUseCase
}

func NewProjectHandler(listUC *projectUC.ListProjectsUseCase, getUC *projectUC.GetProjectUseCase) *ProjectHandler {
	return &ProjectHandler{
		listProjectsUseCase: listUC,
		getProjectUseCase:   getUC,
	}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	output, err := h.listProjectsUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": output.Projects})
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	output, err := h.getProjectUseCase.Execute(c.Request.Context(), projectUC.GetProjectInput{Slug: c.Param("slug")})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Project)
}
