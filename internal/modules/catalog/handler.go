package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"parkease/internal/pkg/response"
	"parkease/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/parking-spots", h.List)
	rg.GET("/parking-spots/:id", h.Get)
	rg.POST("/parking-spots/search", h.Search)
}

func (h *Handler) List(c *gin.Context) {
	spots, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch parking spots")
		return
	}
	c.JSON(http.StatusOK, spots)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid parking spot id")
		return
	}

	spot, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Parking spot not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to fetch parking spot")
		return
	}
	c.JSON(http.StatusOK, spot)
}

func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid search parameters")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ValidationError(c, http.StatusBadRequest, "Invalid search parameters", fields)
		return
	}

	spots, err := h.service.Search(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to search parking spots")
		return
	}
	c.JSON(http.StatusOK, spots)
}
