package routes

import (
	"github.com/finnmprice/caffeine-counter/controllers"
	"github.com/finnmprice/caffeine-counter/middlewares"
	"github.com/finnmprice/caffeine-counter/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	hub := services.NewRealtimeHub()
	entries := controllers.NewEntryController(hub)
	realtime := controllers.NewRealtimeController(hub)

	// Static entry page
	r.StaticFile("/", "./public/index.html")
	r.Static("/assets", "./public/assets")

	api := r.Group("/api")
	{
		// Auth
		api.POST("/auth/google", controllers.GoogleLogin)
		api.GET("/auth/check", middlewares.AuthMiddleware(), controllers.CheckAuth)
		api.POST("/auth/logout", controllers.Logout)

		// Shared read surface
		api.GET("/types", controllers.ListDrinkTypes)
		api.GET("/entries", entries.ListEntries)
		api.GET("/total-today", controllers.TotalToday)
		api.GET("/total-all", controllers.TotalAll)
		api.GET("/leaderboard", controllers.Leaderboard)
		api.GET("/caffeine-chart", controllers.CaffeineChart)

		// Session-gated writes and personal state
		authed := api.Group("")
		authed.Use(middlewares.AuthMiddleware())
		{
			authed.POST("/types", controllers.CreateDrinkType)
			authed.DELETE("/types/:id", controllers.DeleteDrinkType)
			authed.POST("/entries", entries.CreateEntry)
			authed.DELETE("/entries/:id", entries.DeleteEntry)
			authed.GET("/goal", controllers.GetGoal)
			authed.PUT("/goal", controllers.UpdateGoal)
			authed.POST("/upload", controllers.UploadImage)
			authed.GET("/live", realtime.LiveWS)
		}
	}

	return r
}
