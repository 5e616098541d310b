package models

import "time"

// Venue represents a merchant whose delivery hours the service tracks.
type Venue struct {
	ID          string      `bson:"id" json:"id"`
	Name        string      `bson:"name" json:"name"`
	Address     string      `bson:"address,omitempty" json:"address,omitempty"`
	Active      bool        `bson:"active" json:"active"`
	WeeklyHours WeeklyHours `bson:"weeklyHours" json:"weeklyHours"`
	CreatedAt   time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// CreateVenueRequest is the payload for registering a new venue.
type CreateVenueRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

// SetActiveRequest is the payload for activating or deactivating a venue.
// Active is a pointer so an explicit false still binds.
type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}
