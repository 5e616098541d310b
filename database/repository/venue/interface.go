// File: database/repository/venue/interface.go
package venueRepo

import (
	"context"

	"deliveryhours/config"
	"deliveryhours/database"
	"deliveryhours/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type VenueRepository interface {
	Create(ctx context.Context, venue *models.Venue) error
	GetByID(ctx context.Context, venueID string) (*models.Venue, error)
	List(ctx context.Context, activeOnly bool) ([]models.Venue, error)
	UpdateWeeklyHours(ctx context.Context, venueID string, hours models.WeeklyHours) error
	SetActive(ctx context.Context, venueID string, active bool) error
	DeleteByID(ctx context.Context, venueID string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoVenueRepo struct {
	coll *mongo.Collection
}

// NewMongoVenueRepo constructs a new MongoDB VenueRepository.
func NewMongoVenueRepo() VenueRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoVenueRepo{
		coll: db.Collection("venues"),
	}
}
