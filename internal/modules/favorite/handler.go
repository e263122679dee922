package favorite

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"parkease/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/favorites", h.ListSpots)
	rg.GET("/favorites/check", h.Check)
	rg.POST("/favorites", h.Add)
	rg.DELETE("/favorites/:id", h.Remove)
}

// ListSpots returns the user's favorite spots, fully resolved. The
// userId query parameter defaults to the demo user.
func (h *Handler) ListSpots(c *gin.Context) {
	userID := int64(1)
	if raw := c.Query("userId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid userId")
			return
		}
		userID = id
	}

	spots, err := h.service.ListSpots(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch favorites")
		return
	}
	c.JSON(http.StatusOK, spots)
}

func (h *Handler) Check(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("userId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid userId")
		return
	}
	spotID, err := strconv.ParseInt(c.Query("spotId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid spotId")
		return
	}

	isFavorite, err := h.service.IsFavorite(c.Request.Context(), userID, spotID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to check favorite")
		return
	}
	c.JSON(http.StatusOK, CheckFavoriteResponse{IsFavorite: isFavorite})
}

func (h *Handler) Add(c *gin.Context) {
	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid favorite data")
		return
	}

	f, err := h.service.Add(c.Request.Context(), req.UserID, req.ParkingSpotID)
	if err != nil {
		switch {
		case errors.Is(err, ErrSpotNotFound):
			response.Error(c, http.StatusBadRequest, "Parking spot not found")
		case errors.Is(err, ErrAlreadyFavorite):
			response.Error(c, http.StatusConflict, "Already in favorites")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to add favorite")
		}
		return
	}
	c.JSON(http.StatusCreated, f)
}

func (h *Handler) Remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid favorite id")
		return
	}

	if err := h.service.Remove(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Favorite not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to remove favorite")
		return
	}
	c.Status(http.StatusNoContent)
}
