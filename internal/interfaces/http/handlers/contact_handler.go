package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"homeconnect.backend/internal/domain/entities"
	domainerrors "homeconnect.backend/internal/domain/errors"
	"homeconnect.backend/internal/interfaces/http/response"
	"homeconnect.backend/pkg/logger"
)

// ContactHandler handles the contact form endpoint
type ContactHandler struct{}

// NewContactHandler creates a new contact handler
func NewContactHandler() *ContactHandler {
	return &ContactHandler{}
}

// Submit accepts a contact form submission. There is no mail backend; the
// submission is logged for operators to pick up.
// POST /api/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var input entities.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	logger.Info(c.Request.Context(), "contact form submission",
		zap.String("first_name", input.FirstName),
		zap.String("last_name", input.LastName),
		zap.String("email", input.Email),
		zap.String("phone", input.Phone),
		zap.String("subject", input.Subject),
		zap.String("message", input.Message),
		zap.Time("date", time.Now()),
	)

	response.Success(c, http.StatusOK, gin.H{"message": "Message sent successfully"})
}
