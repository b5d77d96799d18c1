package article

import (
	"github.com/gin-gonic/gin"
	"github.com/ichwanardi/portfolio-core/internal/pkg/response"
	"go.uber.org/zap"
)

// Handler handles blog HTTP requests.
type Handler struct {
	svc    *Service
	logger *zap.Logger
}

func NewHandler(svc *Service, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// RegisterRoutes mounts blog routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/blog", h.list)

	detail := rg.Group("/blog/detail")
	detail.GET("", h.listDetailed)
	detail.GET("/:slug", h.detailBySlug)
	detail.GET("/id/:id", h.detailByID)
}

// list GET /blog
func (h *Handler) list(c *gin.Context) {
	articles, err := h.svc.FindAll()
	if err != nil {
		h.logger.Error("list blogs", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"Blogs": articles})
}

// listDetailed GET /blog/detail
func (h *Handler) listDetailed(c *gin.Context) {
	articles, err := h.svc.FindAll()
	if err != nil {
		h.logger.Error("list blogs", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"success": true, "Blogs": articles})
}

// detailBySlug GET /blog/detail/:slug
func (h *Handler) detailBySlug(c *gin.Context) {
	a, err := h.svc.Resolve(c.Param("slug"))
	if err != nil {
		h.logger.Error("resolve blog", zap.String("identifier", c.Param("slug")), zap.Error(err))
		response.InternalError(c)
		return
	}
	if a == nil {
		response.NotFound(c, "Blog tidak ditemukan")
		return
	}

	h.recordView(a.ID)
	response.OK(c, gin.H{"success": true, "mainBlog": a})
}

// detailByID GET /blog/detail/id/:id
func (h *Handler) detailByID(c *gin.Context) {
	a, err := h.svc.ResolveByID(c.Param("id"))
	if err != nil {
		h.logger.Error("resolve blog by id", zap.String("id", c.Param("id")), zap.Error(err))
		response.InternalError(c)
		return
	}
	if a == nil {
		response.NotFound(c, "Blog tidak ditemukan")
		return
	}

	h.recordView(a.ID)
	response.OK(c, gin.H{"success": true, "mainBlog": a})
}

// recordView bumps the view counter without blocking the response. A failed
// increment is an operator concern, never a client error.
func (h *Handler) recordView(id string) {
	go func() {
		if err := h.svc.IncrementView(id); err != nil {
			h.logger.Warn("increment article views", zap.String("id", id), zap.Error(err))
		}
	}()
}
