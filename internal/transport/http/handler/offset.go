package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ErlanBelekov/period/humanize"
	"github.com/ErlanBelekov/period/internal/metrics"
	"github.com/ErlanBelekov/period/relative"
	"github.com/gin-gonic/gin"
)

type OffsetHandler struct {
	engine    *relative.Engine
	humanizer *humanize.Humanizer
	logger    *slog.Logger
}

func NewOffsetHandler(engine *relative.Engine, humanizer *humanize.Humanizer, logger *slog.Logger) *OffsetHandler {
	return &OffsetHandler{
		engine:    engine,
		humanizer: humanizer,
		logger:    logger.With("component", "offset_handler"),
	}
}

type offsetURI struct {
	Unit string `uri:"unit" binding:"required"`
	N    int64  `uri:"n"`
}

type momentResponse struct {
	Unit      string    `json:"unit"`
	Direction string    `json:"direction"`
	N         int64     `json:"n"`
	Datetime  time.Time `json:"datetime"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Humanized string    `json:"humanized"`
}

type dateResponse struct {
	Date string `json:"date"`
}

// GET /v1/offsets/:unit/ago/:n
func (h *OffsetHandler) Ago(c *gin.Context) {
	h.resolve(c, "ago", h.engine.Ago)
}

// GET /v1/offsets/:unit/from-now/:n
func (h *OffsetHandler) FromNow(c *gin.Context) {
	h.resolve(c, "from_now", h.engine.FromNow)
}

func (h *OffsetHandler) resolve(c *gin.Context, direction string, fn func(relative.Unit, int64) (relative.Moment, error)) {
	var uri offsetURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidN})
		return
	}

	unit, err := relative.ParseUnit(uri.Unit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errUnknownUnit})
		return
	}

	m, err := fn(unit, uri.N)
	metrics.OffsetsTotal.WithLabelValues(unit.String(), direction, metrics.Outcome(err)).Inc()
	if err != nil {
		var neg relative.NegativeValueError
		var over relative.OverflowError
		switch {
		case errors.As(err, &neg):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":      neg.Error(),
				"unit":       neg.Unit,
				"suggestion": neg.Suggestion,
				"value":      neg.Value,
			})
		case errors.As(err, &over):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": over.Error(),
				"unit":  over.Unit,
				"value": over.Value,
			})
		default:
			h.logger.ErrorContext(c.Request.Context(), "resolve offset", "unit", unit, "n", uri.N, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}

	// JSON timestamps only cover years 0000-9999.
	if y := m.Time().Year(); y < 0 || y > 9999 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": errUnrenderable,
			"unit":  unit.String(),
			"value": uri.N,
		})
		return
	}

	c.JSON(http.StatusOK, momentResponse{
		Unit:      unit.String(),
		Direction: direction,
		N:         uri.N,
		Datetime:  m.Time(),
		Date:      m.Date().String(),
		Time:      m.TimeOfDay().String(),
		Humanized: h.humanizer.Humanize(m.Time()),
	})
}

// GET /v1/yesterday
func (h *OffsetHandler) Yesterday(c *gin.Context) {
	c.JSON(http.StatusOK, dateResponse{Date: h.engine.Yesterday().String()})
}

// GET /v1/tomorrow
func (h *OffsetHandler) Tomorrow(c *gin.Context) {
	c.JSON(http.StatusOK, dateResponse{Date: h.engine.Tomorrow().String()})
}
