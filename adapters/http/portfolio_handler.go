package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	experienceUC "github.com/khoahotran/portfolio/internal/application/usecase/experience"
	portfolioUC "github.com/khoahotran/portfolio/internal/application/usecase/portfolio"
	skillUC "github.com/khoahotran/portfolio/internal/application/usecase/skill"
)

type PortfolioHandler struct {
	getPortfolioUseCase *portfolioUC.GetPortfolioUseCase
	getTimelineUseCase  *experienceUC.GetTimelineUseCase
	listSkillsUseCase   *skillUC.ListSkillsUseCase
}

func NewPortfolioHandler(
	portfolioUseCase *portfolioUC.GetPortfolioUseCase,
	timelineUseCase *experienceUC.GetTimelineUseCase,
	skillsUseCase *skillUC.ListSkillsUseCase,
) *PortfolioHandler {
	return &PortfolioHandler{
		getPortfolioUseCase: portfolioUseCase,
		getTimelineUseCase:  timelineUseCase,
		listSkillsUseCase:   skillsUseCase,
	}
}

func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	output, err := h.getPortfolioUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Document)
}

func (h *PortfolioHandler) GetExperience(c *gin.Context) {
	output, err := h.getTimelineUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToTimelineDTO(output))
}

func (h *PortfolioHandler) GetSkills(c *gin.Context) {
	output, err := h.listSkillsUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": output.Categories})
}
