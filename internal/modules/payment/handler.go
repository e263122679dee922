package payment

import (
	"errors"
	"io"
	"net/http"

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
	rg.POST("/create-payment-intent", h.CreateIntent)
	rg.GET("/payment-status/:id", h.Status)
	rg.POST("/webhook", h.Webhook)
}

func (h *Handler) CreateIntent(c *gin.Context) {
	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Amount is required")
		return
	}

	resp, err := h.service.CreateIntent(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidAmount) {
			response.Error(c, http.StatusBadRequest, "Amount is required")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Payment failed: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Status(c *gin.Context) {
	intentID := c.Param("id")

	resp, err := h.service.Status(c.Request.Context(), intentID)
	if err != nil {
		if errors.Is(err, ErrIntentNotFound) {
			response.Error(c, http.StatusNotFound, "Payment intent not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to retrieve payment status: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Webhook error: unreadable payload")
		return
	}

	if err := h.service.HandleWebhook(c.Request.Context(), payload, c.GetHeader("Stripe-Signature")); err != nil {
		response.Error(c, http.StatusBadRequest, "Webhook error: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}
