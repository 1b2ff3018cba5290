package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"homeconnect.backend/internal/domain/entities"
	domainerrors "homeconnect.backend/internal/domain/errors"
	"homeconnect.backend/internal/interfaces/http/middleware"
	"homeconnect.backend/internal/interfaces/http/response"
	"homeconnect.backend/internal/usecases"
)

// PaymentHandler handles the contact-unlock payment endpoints
type PaymentHandler struct {
	paymentUsecase *usecases.PaymentUsecase
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUsecase *usecases.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{
		paymentUsecase: paymentUsecase,
	}
}

// Initialize starts a provider transaction to unlock a listing's contact.
// The provider's payload is returned unchanged so the frontend gets the
// checkout URL and reference exactly as issued.
// POST /api/payments/initialize
func (h *PaymentHandler) Initialize(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}
	email, _ := middleware.GetUserEmail(c)

	var input entities.InitializePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("listingId and amount are required"))
		return
	}

	payload, err := h.paymentUsecase.InitializePayment(c.Request.Context(), userID, email, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", payload)
}

// Verify confirms a transaction by reference and records the unlock
// GET /api/payments/verify/:reference
func (h *PaymentHandler) Verify(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	result, err := h.paymentUsecase.VerifyPayment(c.Request.Context(), userID, c.Param("reference"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Unlocked reports whether the caller has unlocked a listing's contact
// GET /api/unlocks/:listingId
func (h *PaymentHandler) Unlocked(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	unlocked, err := h.paymentUsecase.IsUnlocked(c.Request.Context(), userID, c.Param("listingId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"unlocked": unlocked})
}
