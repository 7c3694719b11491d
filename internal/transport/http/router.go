package httptransport

import (
	"log/slog"

	"github.com/ErlanBelekov/period/internal/transport/http/handler"
	"github.com/ErlanBelekov/period/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"

	sloggin "github.com/samber/slog-gin"
)

// NewRouter wires the public API. When jwtKey is empty the /v1 routes are
// served without authentication.
func NewRouter(logger *slog.Logger, offsets *handler.OffsetHandler, humanizer *handler.HumanizeHandler, cal *handler.CalendarHandler, jwtKey []byte) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	v1 := r.Group("/v1")
	if len(jwtKey) > 0 {
		v1.Use(middleware.Auth(jwtKey))
	}

	v1.GET("/offsets/:unit/ago/:n", offsets.Ago)
	v1.GET("/offsets/:unit/from-now/:n", offsets.FromNow)
	v1.GET("/yesterday", offsets.Yesterday)
	v1.GET("/tomorrow", offsets.Tomorrow)
	v1.GET("/today", cal.Today)
	v1.GET("/humanize", humanizer.Humanize)
	v1.GET("/calendar/:date", cal.Describe)

	return r
}
