package reservationRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fixhub/database"
	"fixhub/models"
)

// ErrNotFound is returned when a reservation id resolves to nothing.
var ErrNotFound = errors.New("reservation not found")

// MongoReservationRepo implements ReservationRepository using MongoDB.
type MongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo constructs a new instance of MongoReservationRepo.
func NewMongoReservationRepo() *MongoReservationRepo {
	return &MongoReservationRepo{
		coll: database.DB().Collection("bookings"),
	}
}

// Create stores a new reservation under a generated key and returns it.
func (repo *MongoReservationRepo) Create(ctx context.Context, res *models.Reservation) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res.ID = uuid.New().String()
	if _, err := repo.coll.InsertOne(ctx, fromModel(res)); err != nil {
		return "", fmt.Errorf("error inserting reservation: %w", err)
	}
	return res.ID, nil
}

// GetByID retrieves a single reservation by its id.
func (repo *MongoReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc reservationDoc
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching reservation with id %s: %w", id, err)
	}
	res := doc.toModel()
	return &res, nil
}

// ListByTechnician returns all reservations for a technician across all
// dates, ordered by creation time.
func (repo *MongoReservationRepo) ListByTechnician(ctx context.Context, technicianID string) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAtMs", Value: 1}})
	cursor, err := repo.coll.Find(ctx, bson.M{"technicianId": technicianID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing reservations for technician %s: %w", technicianID, err)
	}
	defer cursor.Close(ctx)

	var docs []reservationDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding reservations: %w", err)
	}

	reservations := make([]models.Reservation, len(docs))
	for i, doc := range docs {
		reservations[i] = doc.toModel()
	}
	return reservations, nil
}

// UpdateStatus writes a status transition. The raw status field is
// rewritten with the canonical string form.
func (repo *MongoReservationRepo) UpdateStatus(ctx context.Context, id string, status models.ReservationStatus) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := repo.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": string(status)}},
	)
	if err != nil {
		return fmt.Errorf("error updating reservation %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Watch tails the change stream for one technician's reservations and
// invokes notify on every event. It blocks until ctx is cancelled or the
// stream breaks.
func (repo *MongoReservationRepo) Watch(ctx context.Context, technicianID string, notify func()) error {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"fullDocument.technicianId": technicianID}}},
	}
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)

	stream, err := repo.coll.Watch(ctx, pipeline, opts)
	if err != nil {
		return fmt.Errorf("error opening change stream for technician %s: %w", technicianID, err)
	}
	defer stream.Close(context.Background())

	for stream.Next(ctx) {
		notify()
	}
	if err := stream.Err(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("change stream for technician %s broke: %w", technicianID, err)
	}
	return nil
}

// CountExpiredPending counts Pending reservations whose ten-minute hold
// has lapsed as of now. Used by the housekeeping audit only; nothing is
// mutated.
func (repo *MongoReservationRepo) CountExpiredPending(ctx context.Context, now time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cutoff := now.Add(-10 * time.Minute).UnixMilli()
	// Raw status values vary (bool, mixed-case strings); everything that
	// is not a terminal or accepted form counts as pending.
	filter := bson.M{
		"createdAtMs": bson.M{"$lt": cutoff},
		"status": bson.M{"$nin": bson.A{
			true,
			"Accepted", "accepted", "Confirmed", "confirmed",
			"Cancelled", "cancelled", "Canceled", "canceled", "Declined", "declined",
			"Completed", "completed", "Done", "done",
		}},
	}

	count, err := repo.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error counting expired pending reservations: %w", err)
	}
	return count, nil
}
