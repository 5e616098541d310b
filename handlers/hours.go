package handlers

import (
	"net/http"
	"strconv"

	"deliveryhours/domain"
	"deliveryhours/models"
	"deliveryhours/utils"

	"github.com/gin-gonic/gin"
)

// SetHoursHandler replaces a venue's weekly delivery hours.
func (h *HoursHandler) SetHoursHandler(c *gin.Context) {
	var req models.SetHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := h.Service.SetWeeklyHours(c.Request.Context(), c.Param("id"), req.WeeklyHours); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// GetHoursHandler returns the stored (unconsolidated) weekly hours.
func (h *HoursHandler) GetHoursHandler(c *gin.Context) {
	weekly, err := h.Service.GetWeeklyHours(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"venueId": c.Param("id"), "weeklyHours": weekly})
}

// ScheduleHandler returns the consolidated weekly schedule.
func (h *HoursHandler) ScheduleHandler(c *gin.Context) {
	resp, err := h.Service.ConsolidatedSchedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// OpenAtHandler answers whether the venue delivers at a given day and time.
// The clock may be given as hour+minute, minuteOfDay, or secondOfDay.
func (h *HoursHandler) OpenAtHandler(c *gin.Context) {
	day := c.Query("day")

	clock, err := clockFromQuery(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid time", err.Error())
		return
	}

	open, err := h.Service.OpenAt(c.Request.Context(), c.Param("id"), day, clock)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.OpenAtResponse{
		VenueID: c.Param("id"),
		Day:     day,
		Time:    clock.Format(),
		Open:    open,
	})
}

func clockFromQuery(c *gin.Context) (domain.Time, error) {
	if raw, ok := c.GetQuery("secondOfDay"); ok {
		s, err := strconv.Atoi(raw)
		if err != nil {
			return domain.Time{}, err
		}
		return domain.TimeFromSecondOfDay(s)
	}
	if raw, ok := c.GetQuery("minuteOfDay"); ok {
		m, err := strconv.Atoi(raw)
		if err != nil {
			return domain.Time{}, err
		}
		return domain.TimeFromMinuteOfDay(m)
	}

	hour, err := strconv.Atoi(c.DefaultQuery("hour", "0"))
	if err != nil {
		return domain.Time{}, err
	}
	minute, err := strconv.Atoi(c.DefaultQuery("minute", "0"))
	if err != nil {
		return domain.Time{}, err
	}
	return domain.NewTime(hour, minute)
}
