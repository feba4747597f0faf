package payforward

import "github.com/gin-gonic/gin"

// SetupPayForwardRoutes configures the community credit ledger routes
func SetupPayForwardRoutes(rg *gin.RouterGroup, controller Controller, sessionAuth gin.HandlerFunc) {
	payforward := rg.Group("/payforward")
	payforward.Use(sessionAuth)
	{
		payforward.GET("", controller.GetStatus)          // GET /api/v1/payforward
		payforward.POST("/donate", controller.Donate)     // POST /api/v1/payforward/donate
		payforward.POST("/claim", controller.ClaimCredit) // POST /api/v1/payforward/claim
	}
}
