package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/TWO-MIX/mind-space/internal/shared/utils/response"
)

type Controller interface {
	CreateSession(c *gin.Context)
	GetMe(c *gin.Context)
	UseCredits(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// CreateSession handles POST /api/v1/sessions
func (ctrl *controller) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	session, err := ctrl.service.CreateSession(c.Request.Context(), req)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Session created successfully", session, nil)
}

// GetMe handles GET /api/v1/users/me
func (ctrl *controller) GetMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := ctrl.service.GetUser(c.Request.Context(), userID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrUserNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "User retrieved successfully", user, nil)
}

// UseCredits handles POST /api/v1/users/me/credits/use
func (ctrl *controller) UseCredits(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req UseCreditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	user, err := ctrl.service.UseSeatCredits(c.Request.Context(), userID, req.Amount)
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrInsufficientCredits):
			statusCode = http.StatusConflict
		case errors.Is(err, ErrInvalidCreditAmount):
			statusCode = http.StatusBadRequest
		case errors.Is(err, ErrUserNotFound):
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Seat credits used successfully", user, nil)
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
