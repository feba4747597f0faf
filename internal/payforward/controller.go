package payforward

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/TWO-MIX/mind-space/internal/shared/utils/response"
	"github.com/TWO-MIX/mind-space/internal/users"
)

type Controller interface {
	GetStatus(c *gin.Context)
	Donate(c *gin.Context)
	ClaimCredit(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// GetStatus handles GET /api/v1/payforward
func (ctrl *controller) GetStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	status, err := ctrl.service.Status(c.Request.Context(), userID)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Pay-it-forward status retrieved successfully", status, nil)
}

// Donate handles POST /api/v1/payforward/donate
func (ctrl *controller) Donate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req DonateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	status, err := ctrl.service.Donate(c.Request.Context(), userID, req.Amount)
	if err != nil {
		if errors.Is(err, ErrInvalidDonation) {
			response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
			return
		}
		respondLedgerError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Donation received, thank you", status, nil)
}

// ClaimCredit handles POST /api/v1/payforward/claim. An ineligible claim is
// not an error: the reducer is a no-op and the response says so.
func (ctrl *controller) ClaimCredit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	claimed, status, err := ctrl.service.ClaimCredit(c.Request.Context(), userID)
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	message := "Credit claimed successfully"
	if !claimed {
		message = "Claim not available"
	}
	response.RespondJSON(c, "success", http.StatusOK, message, ClaimResponse{
		Claimed: claimed,
		Status:  *status,
	}, nil)
}

func respondLedgerError(c *gin.Context, err error) {
	statusCode := http.StatusInternalServerError
	if errors.Is(err, users.ErrUserNotFound) {
		statusCode = http.StatusNotFound
	}
	response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
}

// currentUserID pulls the session user from the gin context (set by the
// session middleware) and writes the error response when it is missing.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDValue, exists := c.Get("user_id")
	if !exists {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Session required", nil, nil)
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(userIDValue.(string))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Invalid user ID format", nil, nil)
		return uuid.Nil, false
	}
	return userID, true
}
