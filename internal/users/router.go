package users

import "github.com/gin-gonic/gin"

// SetupUserRoutes configures session and user routes. The session middleware
// is passed in so route wiring stays with the slice, like the other routers.
func SetupUserRoutes(rg *gin.RouterGroup, controller Controller, sessionAuth gin.HandlerFunc) {
	// Session creation is the one public entry point
	rg.POST("/sessions", controller.CreateSession) // POST /api/v1/sessions

	me := rg.Group("/users/me")
	me.Use(sessionAuth)
	{
		me.GET("", controller.GetMe)                   // GET /api/v1/users/me
		me.POST("/credits/use", controller.UseCredits) // POST /api/v1/users/me/credits/use
	}
}
