package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ConfirmBookingPayment(c *ginext.Context)
	CreateExpert(c *ginext.Context)
	GetExpert(c *ginext.Context)
	ListExperts(c *ginext.Context)
	GenerateSlots(c *ginext.Context)
	ListSlots(c *ginext.Context)
	OpenSession(c *ginext.Context)
	StartSession(c *ginext.Context)
	GetSession(c *ginext.Context)
	EndSession(c *ginext.Context)
}

func InitRouter(mode string, h Handler, gatherer prometheus.Gatherer, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/confirm", h.ConfirmBookingPayment)

		// Experts and their availability
		api.POST("/experts", h.CreateExpert)
		api.GET("/experts", h.ListExperts)
		api.GET("/experts/:id", h.GetExpert)
		api.POST("/experts/:id/slots", h.GenerateSlots)
		api.GET("/experts/:id/slots", h.ListSlots)

		// Call sessions
		api.POST("/sessions/:bookingId", h.OpenSession)
		api.POST("/sessions/:bookingId/start", h.StartSession)
		api.GET("/sessions/:bookingId", h.GetSession)
		api.POST("/sessions/:bookingId/end", h.EndSession)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metricsHandler := promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
	router.GET("/metrics", func(c *ginext.Context) {
		metricsHandler.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
