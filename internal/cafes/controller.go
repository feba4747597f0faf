package cafes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TWO-MIX/mind-space/internal/shared/utils/response"
)

type Controller interface {
	ListCafes(c *gin.Context)
	GetCafe(c *gin.Context)
	GetUpcomingSlots(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// ListCafes handles GET /api/v1/cafes
func (ctrl *controller) ListCafes(c *gin.Context) {
	var query ListCafesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid filter criteria", nil, err.Error())
		return
	}

	cafes := ctrl.service.ListCafes(query.ToCriteria())
	response.RespondJSON(c, "success", http.StatusOK, "Cafes retrieved successfully", CafeListResponse{
		Cafes: cafes,
		Count: len(cafes),
	}, nil)
}

// GetCafe handles GET /api/v1/cafes/:cafeId
func (ctrl *controller) GetCafe(c *gin.Context) {
	cafe, err := ctrl.service.GetCafe(c.Param("cafeId"))
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrCafeNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Cafe retrieved successfully", cafe, nil)
}

// GetUpcomingSlots handles GET /api/v1/cafes/:cafeId/slots
func (ctrl *controller) GetUpcomingSlots(c *gin.Context) {
	cafeID := c.Param("cafeId")
	slots, err := ctrl.service.UpcomingSlots(cafeID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrCafeNotFound):
			statusCode = http.StatusNotFound
		case errors.Is(err, ErrSeatsNotBookable):
			statusCode = http.StatusConflict
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	if slots == nil {
		slots = []TimeSlot{}
	}
	response.RespondJSON(c, "success", http.StatusOK, "Upcoming slots retrieved successfully", SlotListResponse{
		CafeID: cafeID,
		Slots:  slots,
		Count:  len(slots),
	}, nil)
}
