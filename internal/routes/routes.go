package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"eldercare-backend/internal/handlers"
	"eldercare-backend/internal/middleware"
)

// SetupRoutes wires every endpoint. Auth routes and /metrics stay public;
// everything else sits behind the token check.
func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimit(h.Cfg.RateLimit, h.Cfg.RateBurst))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Elder Care Home API Running")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/register", h.Register)
	r.POST("/login", h.Login)

	r.Static("/uploads", h.Cfg.UploadDir)

	protected := r.Group("/")
	protected.Use(middleware.Auth(h.Cfg.JWTSecret))
	{
		protected.POST("/residents", h.AddResident)
		protected.GET("/residents", h.GetResidents)
		protected.PUT("/residents/:id", h.UpdateResident)
		protected.DELETE("/residents/:id", h.DeleteResident)

		protected.POST("/activities", h.AddActivity)
		protected.GET("/activities", h.GetActivities)
		protected.GET("/activities/summary", h.GetActivitySummary)

		protected.GET("/users", h.GetUsers)
		protected.DELETE("/users/:id", h.DeleteUser)
		protected.GET("/user-activity", h.GetUserActivity)

		protected.POST("/api/meal-plans", h.AddMealPlan)
		protected.GET("/api/meal-plans", h.GetMealPlans)
		protected.PUT("/api/meal-plans/:id", h.UpdateMealPlan)
		protected.DELETE("/api/meal-plans/:id", h.DeleteMealPlan)

		protected.POST("/staff-feedback", h.AddStaffFeedback)
		protected.GET("/staff-feedback", h.GetStaffFeedback)

		protected.POST("/appointments", h.AddAppointment)
		protected.GET("/appointments", h.GetAppointments)
		protected.GET("/appointments/upcoming", h.GetUpcomingAppointments)
		protected.GET("/appointments/doctor", h.GetDoctorAppointments)
		protected.GET("/appointments/family", h.GetFamilyAppointments)
		protected.GET("/appointments/search/:query", h.SearchAppointments)
		protected.PUT("/appointments/:id", h.UpdateAppointment)
		protected.DELETE("/appointments/:id", h.DeleteAppointment)
		protected.PATCH("/appointments/:id/complete", h.CompleteAppointment)

		protected.GET("/notifications", h.GetNotifications)
	}
}
