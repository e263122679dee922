package reservation

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
	rg.GET("/reservations", h.List)
	rg.GET("/reservations/active", h.Active)
	rg.GET("/reservations/:id", h.Get)
	rg.POST("/reservations", h.Create)
	rg.PUT("/reservations/:id", h.Update)
	rg.DELETE("/reservations/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	var userID *int64
	if raw := c.Query("userId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid userId")
			return
		}
		userID = &id
	}

	reservations, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch reservations")
		return
	}
	c.JSON(http.StatusOK, reservations)
}

func (h *Handler) Active(c *gin.Context) {
	reservations, err := h.service.Active(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch reservations")
		return
	}
	c.JSON(http.StatusOK, reservations)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid reservation id")
		return
	}

	r, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Reservation not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to fetch reservation")
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid reservation data")
		return
	}

	r, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrSpotNotFound) {
			response.Error(c, http.StatusBadRequest, "Parking spot not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to create reservation")
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid reservation id")
		return
	}

	var req UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid reservation data")
		return
	}

	r, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Reservation not found")
		case errors.Is(err, ErrSpotNotFound):
			response.Error(c, http.StatusBadRequest, "Parking spot not found")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update reservation")
		}
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid reservation id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Reservation not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to delete reservation")
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
