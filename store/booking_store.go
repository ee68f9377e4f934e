package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/models"
)

type BookingStore interface {
	Insert(ctx context.Context, b *models.Booking) error
	Get(ctx context.Context, id string) (*models.Booking, error)
	ListByUser(ctx context.Context, email string) ([]models.Booking, error)
	ListAll(ctx context.Context) ([]models.Booking, error)
	ManagerPending(ctx context.Context, email string) ([]models.Booking, error)
	ManagerApproved(ctx context.Context, email string) ([]models.Booking, error)
	ApplyStatus(ctx context.Context, id string, event models.TrackingEvent) (updated *models.Booking, prevStatus string, err error)
	MarkPaid(ctx context.Context, id string, transactionID string) (*models.Booking, error)
	Delete(ctx context.Context, id string) error
}

type MongoBookingStore struct {
	Coll *mongo.Collection
}

func NewMongoBookingStore(coll *mongo.Collection) *MongoBookingStore {
	return &MongoBookingStore{Coll: coll}
}

func (s *MongoBookingStore) Insert(ctx context.Context, b *models.Booking) error {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.Coll.InsertOne(ctx, b)
	return err
}

func (s *MongoBookingStore) Get(ctx context.Context, id string) (*models.Booking, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	err = s.Coll.FindOne(ctx, bson.M{"_id": objID}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *MongoBookingStore) ListByUser(ctx context.Context, email string) ([]models.Booking, error) {
	return s.find(ctx, bson.M{"userEmail": email}, bson.D{{Key: "orderedAt", Value: -1}})
}

func (s *MongoBookingStore) ListAll(ctx context.Context) ([]models.Booking, error) {
	return s.find(ctx, bson.M{}, bson.D{{Key: "orderedAt", Value: -1}})
}

// ManagerPending returns the manager's approval queue: bookings against
// the manager's products whose status is still Pending, or was never
// written at all.
func (s *MongoBookingStore) ManagerPending(ctx context.Context, email string) ([]models.Booking, error) {
	filter := bson.M{
		"managerEmail": email,
		"$or": []bson.M{
			{"status": models.StatusPending},
			{"status": bson.M{"$exists": false}},
			{"status": ""},
		},
	}
	return s.find(ctx, filter, bson.D{{Key: "orderedAt", Value: -1}})
}

func (s *MongoBookingStore) ManagerApproved(ctx context.Context, email string) ([]models.Booking, error) {
	filter := bson.M{
		"managerEmail": email,
		"status":       bson.M{"$ne": models.StatusPending},
	}
	return s.find(ctx, filter, bson.D{{Key: "approvedAt", Value: -1}})
}

// ApplyStatus is the single authoritative status transition. It
// validates the requested value, appends exactly one tracking event and
// stamps approvedAt when the booking becomes Approved. The update is
// guarded by the previously read status so a concurrent transition
// cannot be silently overwritten.
func (s *MongoBookingStore) ApplyStatus(ctx context.Context, id string, event models.TrackingEvent) (*models.Booking, string, error) {
	if !models.IsValidStatus(event.Status) {
		return nil, "", ErrInvalidTransition
	}

	booking, err := s.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	prev := booking.Status
	if !models.CanTransition(prev, event.Status) {
		return nil, "", ErrInvalidTransition
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	set := bson.M{"status": event.Status}
	if event.Status == models.StatusApproved {
		set["approvedAt"] = event.Timestamp
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := s.Coll.UpdateOne(ctx,
		bson.M{"_id": booking.ID, "status": statusGuard(prev)},
		bson.M{
			"$set":  set,
			"$push": bson.M{"trackingHistory": event},
		},
	)
	if err != nil {
		return nil, "", err
	}
	if result.ModifiedCount == 0 {
		return nil, "", ErrConflict
	}

	booking.Status = event.Status
	if event.Status == models.StatusApproved {
		booking.ApprovedAt = &event.Timestamp
	}
	booking.TrackingHistory = append(booking.TrackingHistory, event)
	return booking, prev, nil
}

// statusGuard builds the concurrency guard for a transition away from
// prev. Bookings written before status tracking carry no status field
// at all; those decode as "" but plain equality with "" would not
// match them, so the empty case also accepts a missing field.
func statusGuard(prev string) any {
	if prev == "" {
		return bson.M{"$in": bson.A{"", nil}}
	}
	return prev
}

// MarkPaid records the payment and resets the booking to Pending no
// matter what its status was before.
func (s *MongoBookingStore) MarkPaid(ctx context.Context, id string, transactionID string) (*models.Booking, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	err = s.Coll.FindOneAndUpdate(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{
			"paymentStatus": models.PaymentStatusPaid,
			"transactionId": transactionID,
			"status":        models.StatusPending,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *MongoBookingStore) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := s.Coll.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoBookingStore) find(ctx context.Context, filter bson.M, sort bson.D) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := s.Coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
