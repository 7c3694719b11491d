package handler

import (
	"net/http"
	"time"

	"github.com/ErlanBelekov/period/humanize"
	"github.com/ErlanBelekov/period/internal/metrics"
	"github.com/gin-gonic/gin"
)

type HumanizeHandler struct {
	humanizer *humanize.Humanizer
}

func NewHumanizeHandler(humanizer *humanize.Humanizer) *HumanizeHandler {
	return &HumanizeHandler{humanizer: humanizer}
}

type humanizeQuery struct {
	At time.Time `form:"at" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

// GET /v1/humanize?at=2026-02-22T14:05:00Z
func (h *HumanizeHandler) Humanize(c *gin.Context) {
	var q humanizeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidAt})
		return
	}

	metrics.HumanizeTotal.Inc()
	c.JSON(http.StatusOK, gin.H{
		"at":     q.At,
		"phrase": h.humanizer.Humanize(q.At),
	})
}
