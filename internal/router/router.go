package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"

	"github.com/mobac1989/buildots-seating/internal/middleware"
)

type Handler interface {
	ListSeats(c *ginext.Context)
	GetWeek(c *ginext.Context)
	GetAttendance(c *ginext.Context)
	StreamAttendance(c *ginext.Context)
	SaveReport(c *ginext.Context)
	CommitBookings(c *ginext.Context)
	InstantBook(c *ginext.Context)
	AdminBook(c *ginext.Context)
	FreeSeat(c *ginext.Context)
	ToggleOwner(c *ginext.Context)
	BeginRelocation(c *ginext.Context)
	GetRelocation(c *ginext.Context)
	ChooseRelocationDestination(c *ginext.Context)
	CancelRelocation(c *ginext.Context)
}

func InitRouter(mode, adminPassphrase string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Floor plan and schedule
		api.GET("/seats", h.ListSeats)
		api.GET("/week", h.GetWeek)
		api.GET("/attendance", h.GetAttendance)
		api.GET("/attendance/stream", h.StreamAttendance)

		// Preferences and bookings
		api.PUT("/report", h.SaveReport)
		api.POST("/bookings/commit", h.CommitBookings)
		api.POST("/bookings/instant", h.InstantBook)

		admin := api.Group("/admin", middleware.AdminAuth(adminPassphrase))
		{
			admin.POST("/bookings", h.AdminBook)
			admin.POST("/seats/:id/free", h.FreeSeat)
			admin.POST("/owners/toggle", h.ToggleOwner)

			admin.POST("/relocations", h.BeginRelocation)
			admin.GET("/relocations/pending", h.GetRelocation)
			admin.POST("/relocations/destination", h.ChooseRelocationDestination)
			admin.DELETE("/relocations/pending", h.CancelRelocation)
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
