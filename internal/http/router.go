package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	intconfig "tourapi/internal/config"
	h "tourapi/internal/http/handlers"
	"tourapi/internal/http/middleware"
)

// NewRouter wires the Gin engine with middleware and all API routes.
func NewRouter(env intconfig.Env, a *h.API) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.AllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Browsing
		api.GET("/packages", a.ListPackages)
		api.GET("/packages/:slug", a.GetPackage)
		api.GET("/destinations", a.ListDestinations)

		// Autocomplete
		api.GET("/cities", a.SearchCities)

		// Direct submissions (non-wizard clients)
		api.POST("/inquiries", a.CreateInquiry)
		api.POST("/itineraries", a.CreateItinerary)
		api.GET("/itineraries/:uuid", a.GetItinerary)

		// Bookings
		bookings := api.Group("/bookings")
		bookings.POST("", a.CreateBooking)
		bookings.GET("/manifest", a.GetBookingManifest)
		bookings.GET("/:ref", a.GetBooking)
		bookings.GET("/:ref/voucher", a.GetBookingVoucher)
		bookings.GET("/:ref/whatsapp", a.GetBookingWhatsAppLink)

		// Server-driven wizards
		wizards := api.Group("/wizards")
		wizards.POST("", a.StartWizard)
		wizards.GET("/:id", a.GetWizard)
		wizards.PUT("/:id/fields", a.SetWizardFields)
		wizards.POST("/:id/next", a.WizardNext)
		wizards.POST("/:id/back", a.WizardBack)
		wizards.POST("/:id/submit", a.WizardSubmit)

		// Admin package editor
		api.POST("/auth/login", a.Login)
		admin := api.Group("/admin")
		admin.Use(middleware.RequireAdmin(a.Auth))
		admin.PUT("/packages/:id/pricing", a.UpdatePackagePricing)
	}

	return r
}
