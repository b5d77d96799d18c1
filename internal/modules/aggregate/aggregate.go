// Package aggregate assembles the home endpoint payload: the newest item
// of each content collection in one round trip for the landing page.
package aggregate

import (
	"github.com/gin-gonic/gin"
	"github.com/ichwanardi/portfolio-core/internal/modules/content/article"
	"github.com/ichwanardi/portfolio-core/internal/modules/content/gallery"
	"github.com/ichwanardi/portfolio-core/internal/modules/content/project"
	"github.com/ichwanardi/portfolio-core/internal/pkg/response"
	"go.uber.org/zap"
)

// Handler serves GET /home.
type Handler struct {
	articles *article.Service
	projects *project.Service
	gallery  *gallery.Service
	logger   *zap.Logger
}

func NewHandler(articles *article.Service, projects *project.Service, gallery *gallery.Service, logger *zap.Logger) *Handler {
	return &Handler{articles: articles, projects: projects, gallery: gallery, logger: logger}
}

// RegisterRoutes mounts the home route onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/home", h.home)
}

// home GET /home
// Each slot is independently nullable: an empty collection is a null field,
// not an error.
func (h *Handler) home(c *gin.Context) {
	latestProject, err := h.projects.GetLatest()
	if err != nil {
		h.logger.Error("load latest project", zap.Error(err))
		response.InternalError(c)
		return
	}
	latestBlog, err := h.articles.GetLatest()
	if err != nil {
		h.logger.Error("load latest blog", zap.Error(err))
		response.InternalError(c)
		return
	}
	latestUpdate, err := h.gallery.Latest()
	if err != nil {
		h.logger.Error("load latest gallery image", zap.Error(err))
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{
		"latestProject": latestProject,
		"latestBlog":    latestBlog,
		"latestUpdate":  latestUpdate,
	})
}
