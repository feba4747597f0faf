package cafes

import "github.com/gin-gonic/gin"

// SetupCafeRoutes configures the public catalog routes
func SetupCafeRoutes(rg *gin.RouterGroup, controller Controller) {
	cafes := rg.Group("/cafes")
	{
		cafes.GET("", controller.ListCafes)                      // GET /api/v1/cafes?quietness=&wifi=...
		cafes.GET("/:cafeId", controller.GetCafe)                // GET /api/v1/cafes/:cafeId
		cafes.GET("/:cafeId/slots", controller.GetUpcomingSlots) // GET /api/v1/cafes/:cafeId/slots
	}
}
