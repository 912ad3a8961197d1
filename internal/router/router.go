package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/mindwell/internal/handler"
	"github.com/ashwinyue/mindwell/internal/middleware"
	"github.com/ashwinyue/mindwell/internal/service"
)

// SetupRouter wires middleware and routes
func SetupRouter(h *handler.Handlers, svc *service.Services) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": svc.Config.App.Version,
		})
	})

	v1 := r.Group("/api/v1")

	// Public auth endpoints
	auth := v1.Group("/auth")
	{
		auth.POST("/signup", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}

	// Everything else requires a valid token
	authed := v1.Group("")
	authed.Use(middleware.RequireAuth(svc))
	{
		authed.POST("/auth/logout", h.Auth.Logout)
		authed.POST("/auth/logout-all", h.Auth.LogoutAll)
		authed.GET("/auth/me", h.Auth.Me)
		authed.POST("/auth/change-password", h.Auth.ChangePassword)

		sessions := authed.Group("/chat/sessions")
		{
			sessions.POST("", h.Chat.StartSession)
			sessions.GET("", h.Chat.ListSessions)
			sessions.GET("/:id", h.Chat.GetSession)
			sessions.POST("/:id/messages", h.Chat.SendMessage)
			sessions.POST("/:id/end", h.Chat.EndSession)
			sessions.DELETE("/:id", h.Chat.DeleteSession)
		}

		bookings := authed.Group("/bookings")
		{
			bookings.POST("", h.Booking.Create)
			bookings.GET("", h.Booking.List)
		}

		counselors := authed.Group("/counselors")
		{
			counselors.GET("", h.Counselor.List)
			counselors.POST("", h.Counselor.Create)
		}

		resources := authed.Group("/resources")
		{
			resources.GET("", h.Resource.List)
			resources.GET("/:id", h.Resource.Get)
		}

		assessments := authed.Group("/assessments")
		{
			assessments.GET("/types", h.Assessment.Types)
			assessments.GET("", h.Assessment.List)
			// :id doubles as the assessment type on the questions and
			// submit routes.
			assessments.GET("/:id/questions", h.Assessment.Questions)
			assessments.POST("/:id/submit", h.Assessment.Submit)
			assessments.GET("/:id", h.Assessment.Get)
			assessments.DELETE("/:id", h.Assessment.Delete)
		}
	}

	return r
}
