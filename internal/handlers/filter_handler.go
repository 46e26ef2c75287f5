package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/services"
)

type FilterHandler struct {
	*BaseHandler
	filterService *services.FilterService
}

func NewFilterHandler(base *BaseHandler, filterService *services.FilterService) *FilterHandler {
	return &FilterHandler{
		BaseHandler:   base,
		filterService: filterService,
	}
}

func (h *FilterHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/api/candidate_filters", h.CandidateFilters)
}

func (h *FilterHandler) CandidateFilters(c *gin.Context) {
	filters, err := h.filterService.CandidateFilters(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, filters)
}
