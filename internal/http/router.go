package api

import (
	"log"
	stdhttp "net/http"

	intconfig "villagestay/internal/config"
	h "villagestay/internal/http/handlers"
	"villagestay/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.Configure(env)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Metrics(),
		gin.Recovery(),
		middleware.CORS(env.CORSOrigins),
	)

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

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Catalog
		homestays := api.Group("/homestays")
		homestays.GET("", h.GetHomestays)
		homestays.GET("/:id", h.GetHomestayByID)

		// Pricing
		api.POST("/quote", h.GetQuote)

		// Everything below is owner-scoped: a signed-in account or the
		// browser's X-Session-ID header.
		owned := api.Group("")
		owned.Use(middleware.AuthOptional())

		// Checkout wizard
		co := owned.Group("/checkout")
		co.POST("", h.StartCheckout)
		co.GET("/:id", h.GetCheckout)
		co.POST("/:id/guest-info", h.SubmitGuestInfo)
		co.POST("/:id/discount", h.ApplyDiscount)
		co.POST("/:id/proceed", h.ProceedCheckout)
		co.POST("/:id/back", h.BackCheckout)
		co.POST("/:id/pay", h.PayCheckout)

		// Bookings
		bookings := owned.Group("/bookings")
		bookings.GET("", h.GetBookings)
		bookings.GET("/:ref", h.GetBookingByRef)
		bookings.PUT("/:ref/cancel", h.CancelBooking)
		bookings.GET("/:ref/invoice", h.GetBookingInvoicePDF)

		// Favorites
		favorites := owned.Group("/favorites")
		favorites.GET("", h.GetFavorites)
		favorites.POST("/:homestayID", h.AddFavorite)
		favorites.DELETE("/:homestayID", h.RemoveFavorite)

		// Become a host
		host := owned.Group("/host")
		host.POST("/applications", h.SubmitHostApplication)
	}

	h.SetRouter(r)
	return r
}
