package project

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ichwanardi/portfolio-core/internal/models"
	"github.com/ichwanardi/portfolio-core/internal/pkg/response"
	"go.uber.org/zap"
)

// Handler handles project HTTP requests.
type Handler struct {
	svc    *Service
	logger *zap.Logger
}

func NewHandler(svc *Service, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// RegisterRoutes mounts project routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/project", h.list)

	projects := rg.Group("/project")
	projects.GET("/featured", h.featured)
	projects.GET("/category/:category", h.byCategory)
	projects.GET("/search", h.search)
	projects.GET("/detail/:id", h.detail)
}

// list GET /project
func (h *Handler) list(c *gin.Context) {
	projects, err := h.svc.FindAll()
	if err != nil {
		h.logger.Error("list projects", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"Projects": projects})
}

// featured GET /project/featured
func (h *Handler) featured(c *gin.Context) {
	projects, err := h.svc.ListFeatured()
	if err != nil {
		h.logger.Error("list featured projects", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"success": true, "Projects": ToFrontendList(projects)})
}

// byCategory GET /project/category/:category
func (h *Handler) byCategory(c *gin.Context) {
	category := normalizeCategory(c.Param("category"))
	if !validListingCategory(category) {
		response.BadRequest(c, "Kategori tidak valid")
		return
	}

	projects, err := h.svc.ListByCategory(category)
	if err != nil {
		h.logger.Error("list projects by category", zap.String("category", category), zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"success": true, "Projects": ToFrontendList(projects)})
}

// search GET /project/search?q=term&category=FRONTEND
func (h *Handler) search(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))
	if term == "" {
		response.BadRequest(c, "Kata kunci pencarian wajib diisi")
		return
	}
	category := normalizeCategory(c.DefaultQuery("category", models.ProjectCategoryAll))
	if !validListingCategory(category) {
		response.BadRequest(c, "Kategori tidak valid")
		return
	}

	projects, err := h.svc.Search(term, category)
	if err != nil {
		h.logger.Error("search projects", zap.String("term", term), zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"success": true, "Projects": ToFrontendList(projects)})
}

// detail GET /project/detail/:id
func (h *Handler) detail(c *gin.Context) {
	p, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		h.logger.Error("load project", zap.String("id", c.Param("id")), zap.Error(err))
		response.InternalError(c)
		return
	}
	if p == nil || p.IsDeleted {
		response.NotFound(c, "Project tidak ditemukan")
		return
	}

	h.recordView(p.ID)
	response.OK(c, gin.H{"success": true, "project": ToFrontend(p)})
}

// recordView bumps the view counter without blocking the response.
func (h *Handler) recordView(id string) {
	go func() {
		if err := h.svc.IncrementView(id); err != nil {
			h.logger.Warn("increment project views", zap.String("id", id), zap.Error(err))
		}
	}()
}

func normalizeCategory(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

func validListingCategory(c string) bool {
	return c == models.ProjectCategoryAll || validProjectCategory(c)
}
