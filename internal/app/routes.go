package app

import (
	"github.com/gin-gonic/gin"
	"github.com/ichwanardi/portfolio-core/internal/modules/aggregate"
	"github.com/ichwanardi/portfolio-core/internal/modules/content/article"
	"github.com/ichwanardi/portfolio-core/internal/modules/content/gallery"
	"github.com/ichwanardi/portfolio-core/internal/modules/content/project"
	"github.com/ichwanardi/portfolio-core/internal/pkg/response"
)

func (a *App) registerRoutes() {
	r := a.router

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Halaman tidak ditemukan")
	})

	articleSvc := article.NewService(a.db)
	projectSvc := project.NewService(a.db)
	gallerySvc := gallery.NewService(a.db)

	api := r.Group("/api")
	aggregate.NewHandler(articleSvc, projectSvc, gallerySvc, a.logger).RegisterRoutes(api)
	article.NewHandler(articleSvc, a.logger).RegisterRoutes(api)
	project.NewHandler(projectSvc, a.logger).RegisterRoutes(api)
}
