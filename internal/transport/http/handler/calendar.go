package handler

import (
	"net/http"

	"cloud.google.com/go/civil"
	"github.com/ErlanBelekov/period/calendar"
	"github.com/ErlanBelekov/period/clock"
	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	clock clock.Clock
}

func NewCalendarHandler(c clock.Clock) *CalendarHandler {
	return &CalendarHandler{clock: c}
}

type calendarResponse struct {
	Date        string `json:"date"`
	DayOfYear   int    `json:"day_of_year"`
	DaysInMonth int    `json:"days_in_month"`
	WeekOfYear  int    `json:"week_of_year"`
	Weekend     bool   `json:"weekend"`
	LongDate    string `json:"long_date"`
	ShortDate   string `json:"short_date"`
}

func toCalendarResponse(d civil.Date) calendarResponse {
	return calendarResponse{
		Date:        calendar.DateString(d),
		DayOfYear:   calendar.DayOfYear(d),
		DaysInMonth: calendar.DaysInMonth(d),
		WeekOfYear:  calendar.WeekOfYear(d),
		Weekend:     calendar.IsWeekend(d),
		LongDate:    calendar.LongDate(d),
		ShortDate:   calendar.ShortDate(d),
	}
}

// GET /v1/calendar/:date
func (h *CalendarHandler) Describe(c *gin.Context) {
	d, err := civil.ParseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidDate})
		return
	}
	c.JSON(http.StatusOK, toCalendarResponse(d))
}

// GET /v1/today
func (h *CalendarHandler) Today(c *gin.Context) {
	now := calendar.Now(h.clock)
	c.JSON(http.StatusOK, gin.H{
		"calendar": toCalendarResponse(civil.DateOf(now)),
		"iso8601":  calendar.ISO8601(now),
		"rfc2822":  calendar.RFC2822(now),
	})
}
