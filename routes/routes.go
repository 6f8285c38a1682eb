package routes

import (
	"net/http"
	"time"

	"gymrat/handlers"
	"gymrat/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the sign-up / sign-in / sign-out endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.Auth.SignUpHandler)
		api.POST("/signin", hb.Auth.SignInHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.Repo))
		api.POST("/signout", hb.Auth.SignOutHandler)
	}
}

// RegisterUserRoutes registers the member profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.Repo))
		api.GET("/me", hb.User.GetProfileHandler)
		api.PATCH("/me", hb.User.UpdateProfileHandler)
	}
}

// RegisterBookingRoutes registers the class schedule and reservation endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// The schedule is public so visitors can browse classes before joining.
	r.GET("/api/classes", hb.Booking.GetScheduleHandler)

	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.Repo))
		api.POST("", hb.Booking.ReserveHandler)
		api.GET("/me", hb.Booking.GetMyBookingsHandler)
	}
}

// RegisterCheckoutRoutes registers the membership payment endpoints.
func RegisterCheckoutRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/checkout")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.Repo))
		api.POST("", hb.Checkout.PayHandler)
	}
	payments := r.Group("/api/payments")
	{
		payments.Use(middleware.JWTAuthUserMiddleware(hb.Repo))
		payments.GET("/me", hb.Checkout.GetMyPaymentsHandler)
	}
}

// RegisterContactRoutes registers the public contact-form endpoint.
func RegisterContactRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/contact", hb.Contact.SubmitMessageHandler)
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthUserMiddleware(hb.Repo))
		adminGroup.Use(middleware.AdminOnlyMiddleware())
		adminGroup.GET("/metrics", hb.Admin.GetMetricsHandler)
		adminGroup.GET("/users", hb.Admin.GetAllMembersHandler)
		adminGroup.GET("/messages", hb.Admin.GetMessagesHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Gym Rat"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCheckoutRoutes(r, hb)
	RegisterContactRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
