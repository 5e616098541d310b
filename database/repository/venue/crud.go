// File: database/repository/venue/crud.go
package venueRepo

import (
	"context"
	"fmt"
	"time"

	"deliveryhours/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrVenueNotFound is returned when no venue matches the given id.
var ErrVenueNotFound = fmt.Errorf("venue not found")

func (repo *mongoVenueRepo) Create(ctx context.Context, venue *models.Venue) error {
	now := time.Now().UTC()
	venue.CreatedAt = now
	venue.UpdatedAt = now
	if venue.WeeklyHours == nil {
		venue.WeeklyHours = models.WeeklyHours{}
	}

	if _, err := repo.coll.InsertOne(ctx, venue); err != nil {
		return fmt.Errorf("failed to insert venue: %w", err)
	}
	return nil
}

func (repo *mongoVenueRepo) GetByID(ctx context.Context, venueID string) (*models.Venue, error) {
	var venue models.Venue
	err := repo.coll.FindOne(ctx, bson.M{"id": venueID}).Decode(&venue)
	if err == mongo.ErrNoDocuments {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch venue %s: %w", venueID, err)
	}
	return &venue, nil
}

func (repo *mongoVenueRepo) UpdateWeeklyHours(ctx context.Context, venueID string, hours models.WeeklyHours) error {
	update := bson.M{
		"$set": bson.M{
			"weeklyHours": hours,
			"updatedAt":   time.Now().UTC(),
		},
	}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": venueID}, update)
	if err != nil {
		return fmt.Errorf("failed to update weekly hours for venue %s: %w", venueID, err)
	}
	if res.MatchedCount == 0 {
		return ErrVenueNotFound
	}
	return nil
}

func (repo *mongoVenueRepo) SetActive(ctx context.Context, venueID string, active bool) error {
	update := bson.M{
		"$set": bson.M{
			"active":    active,
			"updatedAt": time.Now().UTC(),
		},
	}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": venueID}, update)
	if err != nil {
		return fmt.Errorf("failed to set active flag for venue %s: %w", venueID, err)
	}
	if res.MatchedCount == 0 {
		return ErrVenueNotFound
	}
	return nil
}

func (repo *mongoVenueRepo) DeleteByID(ctx context.Context, venueID string) error {
	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": venueID})
	if err != nil {
		return fmt.Errorf("failed to delete venue %s: %w", venueID, err)
	}
	if res.DeletedCount == 0 {
		return ErrVenueNotFound
	}
	return nil
}
