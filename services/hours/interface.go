package hours

import (
	"context"

	venueRepo "deliveryhours/database/repository/venue"
	"deliveryhours/domain"
	"deliveryhours/models"

	"github.com/go-redis/redis/v8"
)

// HoursService manages venues and their weekly delivery hours.
type HoursService interface {
	CreateVenue(ctx context.Context, req models.CreateVenueRequest) (*models.Venue, error)
	GetVenue(ctx context.Context, venueID string) (*models.Venue, error)
	ListVenues(ctx context.Context, activeOnly bool) ([]models.Venue, error)
	SetVenueActive(ctx context.Context, venueID string, active bool) error
	DeleteVenue(ctx context.Context, venueID string) error

	SetWeeklyHours(ctx context.Context, venueID string, weekly models.WeeklyHours) error
	GetWeeklyHours(ctx context.Context, venueID string) (models.WeeklyHours, error)
	ConsolidatedSchedule(ctx context.Context, venueID string) (*models.ScheduleResponse, error)
	RefreshSchedules(ctx context.Context) (int, error)
	OpenAt(ctx context.Context, venueID, day string, clock domain.Time) (bool, error)
}

// DefaultHoursService is the production implementation backed by Mongo and a
// Redis schedule cache.
type DefaultHoursService struct {
	Repo  venueRepo.VenueRepository
	Cache *redis.Client
}
