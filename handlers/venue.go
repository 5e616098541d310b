package handlers

import (
	"errors"
	"net/http"

	venueRepo "deliveryhours/database/repository/venue"
	"deliveryhours/models"
	"deliveryhours/services/hours"
	"deliveryhours/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HoursHandler exposes venue and delivery-hours endpoints.
type HoursHandler struct {
	Service hours.HoursService
}

// NewHoursHandler constructs a handler over the given service.
func NewHoursHandler(svc hours.HoursService) *HoursHandler {
	return &HoursHandler{Service: svc}
}

// respondError maps service errors onto HTTP statuses: unknown venue -> 404,
// rejected input -> 400, anything else -> 500.
func respondError(c *gin.Context, err error) {
	var valErr *hours.ValidationError
	switch {
	case errors.Is(err, venueRepo.ErrVenueNotFound):
		utils.JSONError(c, http.StatusNotFound, "Venue not found", "")
	case errors.As(err, &valErr):
		utils.JSONError(c, http.StatusBadRequest, valErr.Message, valErr.Field)
	default:
		utils.GetLogger().Error("request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
	}
}

// CreateVenueHandler registers a new venue.
func (h *HoursHandler) CreateVenueHandler(c *gin.Context) {
	var req models.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	venue, err := h.Service.CreateVenue(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, venue)
}

// GetVenueHandler returns a single venue with its stored weekly hours.
func (h *HoursHandler) GetVenueHandler(c *gin.Context) {
	venue, err := h.Service.GetVenue(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, venue)
}

// ListVenuesHandler returns all venues; ?active=true filters to active ones.
func (h *HoursHandler) ListVenuesHandler(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	venues, err := h.Service.ListVenues(c.Request.Context(), activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"venues": venues})
}

// SetActiveHandler activates or deactivates a venue.
func (h *HoursHandler) SetActiveHandler(c *gin.Context) {
	var req models.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := h.Service.SetVenueActive(c.Request.Context(), c.Param("id"), *req.Active); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated", "active": *req.Active})
}

// DeleteVenueHandler removes a venue and its cached schedule.
func (h *HoursHandler) DeleteVenueHandler(c *gin.Context) {
	if err := h.Service.DeleteVenue(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
