package bookings

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/TWO-MIX/mind-space/internal/cafes"
	"github.com/TWO-MIX/mind-space/internal/shared/utils/response"
)

type Controller interface {
	CreateBooking(c *gin.Context)
	GetBooking(c *gin.Context)
	CancelBooking(c *gin.Context)
	GetUserBookings(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// CreateBooking handles POST /api/v1/bookings
func (ctrl *controller) CreateBooking(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	booking, err := ctrl.service.Book(c.Request.Context(), userID, req)
	if err != nil {
		response.RespondJSON(c, "error", bookingStatusCode(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Booking confirmed successfully", booking, nil)
}

// GetBooking handles GET /api/v1/bookings/:bookingId
func (ctrl *controller) GetBooking(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid booking ID", nil, nil)
		return
	}

	booking, err := ctrl.service.GetBooking(c.Request.Context(), bookingID, userID)
	if err != nil {
		response.RespondJSON(c, "error", bookingStatusCode(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Booking retrieved successfully", booking, nil)
}

// CancelBooking handles POST /api/v1/bookings/:bookingId/cancel
func (ctrl *controller) CancelBooking(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid booking ID", nil, nil)
		return
	}

	booking, err := ctrl.service.CancelBooking(c.Request.Context(), bookingID, userID)
	if err != nil {
		response.RespondJSON(c, "error", bookingStatusCode(err), err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Booking cancelled successfully", booking, nil)
}

// GetUserBookings handles GET /api/v1/users/me/bookings
func (ctrl *controller) GetUserBookings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	bookings := ctrl.service.ListUserBookings(c.Request.Context(), userID)
	active := 0
	for i := range bookings {
		if bookings[i].Status.IsActive() {
			active++
		}
	}

	response.RespondJSON(c, "success", http.StatusOK, "Bookings retrieved successfully", BookingListResponse{
		Bookings:    bookings,
		Count:       len(bookings),
		ActiveCount: active,
	}, nil)
}

// bookingStatusCode maps ledger rejections onto HTTP status codes.
func bookingStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNotAMember), errors.Is(err, ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, ErrBookingNotFound),
		errors.Is(err, cafes.ErrCafeNotFound),
		errors.Is(err, cafes.ErrSlotNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInsufficientAvailability),
		errors.Is(err, ErrInsufficientCredits),
		errors.Is(err, ErrNotCancellable),
		errors.Is(err, cafes.ErrSeatsNotBookable):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidPaymentMethod),
		errors.Is(err, cafes.ErrInvalidSeatCount):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
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
