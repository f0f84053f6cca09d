package handlers

import (
	"net/http"

	"techindia_backend/internal/dto"
	"techindia_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type GigHandler struct {
	*BaseHandler
	gigService *services.GigService
}

func NewGigHandler(base *BaseHandler, gigService *services.GigService) *GigHandler {
	return &GigHandler{
		BaseHandler: base,
		gigService:  gigService,
	}
}

func (h *GigHandler) RegisterRoutes(r *gin.Engine) {
	gigs := r.Group("/gigs")
	{
		gigs.GET("", h.ListGigs)
		gigs.POST("", h.CreateGig)
	}
}

// ListGigs godoc
// @Summary List gig listings
// @Description Returns gigs filtered by optional case-insensitive title substring and exact category
// @Tags gigs
// @Produce json
// @Param q query string false "Substring to match in title (case-insensitive)"
// @Param category query string false "Exact category match"
// @Param limit query int false "Max records to return" default(20)
// @Success 200 {array} models.Gig
// @Failure 500 {object} apperrors.ErrorResponse
// @Failure 503 {object} apperrors.ErrorResponse "Store is not available"
// @Router /gigs [get]
func (h *GigHandler) ListGigs(c *gin.Context) {
	var q dto.ListGigsQuery
	if !h.BindAndValidate_Query(c, &q) {
		return
	}

	gigs, err := h.gigService.ListGigs(c.Request.Context(), &q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gigs)
}

// CreateGig godoc
// @Summary Create a gig listing
// @Description Validates the payload and stores a new gig; returns the assigned id
// @Tags gigs
// @Accept json
// @Produce json
// @Param gig body dto.CreateGigRequest true "Gig to create"
// @Success 201 {object} dto.CreateGigResponse
// @Failure 422 {object} apperrors.ErrorResponse "Validation failed"
// @Failure 500 {object} apperrors.ErrorResponse
// @Failure 503 {object} apperrors.ErrorResponse "Store is not available"
// @Router /gigs [post]
func (h *GigHandler) CreateGig(c *gin.Context) {
	var req dto.CreateGigRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	id, err := h.gigService.CreateGig(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateGigResponse{ID: id})
}
