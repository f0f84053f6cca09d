package handlers

import (
	"net/http"

	"techindia_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// ServiceName отдается эндпоинтом живости.
const ServiceName = "TechINDIA"

type SystemHandler struct {
	*BaseHandler
	systemService *services.SystemService
}

func NewSystemHandler(base *BaseHandler, systemService *services.SystemService) *SystemHandler {
	return &SystemHandler{
		BaseHandler:   base,
		systemService: systemService,
	}
}

func (h *SystemHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Root)
	r.GET("/test", h.TestDatabase)
	r.GET("/schema", h.GetSchemas)
}

// Root godoc
// @Summary Liveness probe
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":   ServiceName,
		"status": "ok",
	})
}

// TestDatabase godoc
// @Summary Connectivity diagnostic
// @Description Best-effort status of the document store; always responds 200, failures are rendered as status strings
// @Tags system
// @Produce json
// @Success 200 {object} services.Diagnostics
// @Router /test [get]
func (h *SystemHandler) TestDatabase(c *gin.Context) {
	c.JSON(http.StatusOK, h.systemService.Describe(c.Request.Context()))
}

// GetSchemas godoc
// @Summary Entity schema introspection
// @Description Structured schema descriptor per entity (user/gig/order/review)
// @Tags system
// @Produce json
// @Success 200 {object} map[string]models.EntitySchema
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /schema [get]
func (h *SystemHandler) GetSchemas(c *gin.Context) {
	c.JSON(http.StatusOK, h.systemService.Schemas())
}
