package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio/pkg/auth"
	"github.com/khoahotran/portfolio/pkg/logger"
)

// Handlers groups everything the router mounts. Auth and Contact.ListMessages
// need Postgres; when Auth is nil the admin routes are not registered.
type Handlers struct {
	Portfolio *PortfolioHandler
	Project   *ProjectHandler
	RSS       *RSSHandler
	Contact   *ContactHandler
	Auth      *AuthHandler
	JWT       *auth.JWTService
}

func NewRouter(h Handlers, secureCookies bool, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), ErrorMiddleware(log))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "UP"})
		})

		api.GET("/portfolio", h.Portfolio.GetPortfolio)
		api.GET("/experience", h.Portfolio.GetExperience)
		api.GET("/skills", h.Portfolio.GetSkills)

		api.GET("/projects", h.Project.ListProjects)
		api.GET("/projects/rss", h.RSS.GenerateRSS)
		api.GET("/projects/:slug", h.Project.GetProject)

		contactGroup := api.Group("/contact")
		contactGroup.Use(ClientIDMiddleware(secureCookies))
		{
			contactGroup.GET("/status", h.Contact.GetStatus)
			contactGroup.POST("", h.Contact.Submit)
		}

		if h.Auth != nil {
			admin := api.Group("/admin")
			{
				admin.POST("/auth/login", h.Auth.Login)

				adminPrivate := admin.Group("")
				adminPrivate.Use(AuthMiddleware(h.JWT))
				{
					adminPrivate.GET("/messages", h.Contact.ListMessages)
				}
			}
		}
	}

	return router
}
