package router

import (
	"net/http"

	"github.com/akimovv/SessionBooker/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	ReactivateBooking(c *ginext.Context)
	MyBookings(c *ginext.Context)
	MySessions(c *ginext.Context)
	UpdateSession(c *ginext.Context)
	CancelSession(c *ginext.Context)
	SessionBookings(c *ginext.Context)
	Dashboard(c *ginext.Context)
	ListUsers(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// public catalog
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)

		authed := api.Group("")
		authed.Use(middleware.Auth())
		{
			// participant bookings
			authed.POST("/bookings", h.CreateBooking)
			authed.GET("/bookings/:id", h.GetBooking)
			authed.POST("/bookings/:id/cancel", h.CancelBooking)
			authed.POST("/bookings/:id/reactivate", h.ReactivateBooking)
			authed.GET("/my-bookings", h.MyBookings)

			// facilitator side
			fac := authed.Group("/facilitator")
			{
				fac.GET("/my-sessions", h.MySessions)
				fac.PUT("/sessions/:id", h.UpdateSession)
				fac.POST("/sessions/:id/cancel", h.CancelSession)
				fac.GET("/sessions/:id/bookings", h.SessionBookings)
				fac.GET("/dashboard", h.Dashboard)
				fac.GET("/users", h.ListUsers)
			}
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})
	router.GET("/metrics", func(c *ginext.Context) {
		promhttp.Handler().ServeHTTP(c.Writer, c.Request)
	})

	return router
}
