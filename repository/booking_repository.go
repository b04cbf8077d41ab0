package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hotel-backoffice/models"
)

// BookingRepository is the persistence gateway for booking records. Bookings
// reference their customer by normalized mobile number (the customerRef
// field), so several of the operations key on that value.
type BookingRepository interface {
	List(ctx context.Context) ([]models.Booking, error)
	GetByRef(ctx context.Context, bookingRef string) (*models.Booking, error)
	Insert(ctx context.Context, booking *models.Booking) error
	Update(ctx context.Context, bookingRef string, booking *models.Booking) error
	Delete(ctx context.Context, bookingRef string) (int64, error)
	DeleteByCustomerRef(ctx context.Context, mobile string) (int64, error)
	UpdateCustomerRef(ctx context.Context, oldMobile, newMobile string) (int64, error)
	Filter(ctx context.Context, field string, value interface{}) ([]models.Booking, error)
	DeleteOrphans(ctx context.Context, validMobiles []string) (int64, error)
	UpsertPlaceholder(ctx context.Context, booking *models.Booking) error
	FindMissingRefs(ctx context.Context) ([]models.Booking, error)
	SetBookingRef(ctx context.Context, customerRef, bookingRef string) error
	ReplaceAll(ctx context.Context, bookings []models.Booking) error
}

type mongoBookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) BookingRepository {
	return &mongoBookingRepository{coll: db.Collection("bookings")}
}

func (r *mongoBookingRepository) List(ctx context.Context) ([]models.Booking, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "checkInDate", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "find bookings")
	}
	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, errors.Wrap(err, "decode bookings")
	}
	return bookings, nil
}

func (r *mongoBookingRepository) GetByRef(ctx context.Context, bookingRef string) (*models.Booking, error) {
	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"bookingRef": bookingRef}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "find booking")
	}
	return &booking, nil
}

func (r *mongoBookingRepository) Insert(ctx context.Context, booking *models.Booking) error {
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return errors.Wrap(err, "insert booking")
	}
	return nil
}

func (r *mongoBookingRepository) Update(ctx context.Context, bookingRef string, booking *models.Booking) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"bookingRef": bookingRef}, booking)
	if err != nil {
		return errors.Wrap(err, "update booking")
	}
	return nil
}

func (r *mongoBookingRepository) Delete(ctx context.Context, bookingRef string) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"bookingRef": bookingRef})
	if err != nil {
		return 0, errors.Wrap(err, "delete booking")
	}
	return res.DeletedCount, nil
}

func (r *mongoBookingRepository) DeleteByCustomerRef(ctx context.Context, mobile string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"customerRef": mobile})
	if err != nil {
		return 0, errors.Wrap(err, "delete bookings by customer")
	}
	return res.DeletedCount, nil
}

func (r *mongoBookingRepository) UpdateCustomerRef(ctx context.Context, oldMobile, newMobile string) (int64, error) {
	res, err := r.coll.UpdateMany(ctx,
		bson.M{"customerRef": oldMobile},
		bson.M{"$set": bson.M{"customerRef": newMobile}},
	)
	if err != nil {
		return 0, errors.Wrap(err, "update booking customer refs")
	}
	return res.ModifiedCount, nil
}

// Filter performs an exact match on the named field; callers pass time.Time
// values for the date fields.
func (r *mongoBookingRepository) Filter(ctx context.Context, field string, value interface{}) ([]models.Booking, error) {
	cursor, err := r.coll.Find(ctx, bson.M{field: value},
		options.Find().SetSort(bson.D{{Key: "checkInDate", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "filter bookings")
	}
	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, errors.Wrap(err, "decode bookings")
	}
	return bookings, nil
}

// DeleteOrphans removes bookings whose customerRef matches none of the given
// mobile numbers.
func (r *mongoBookingRepository) DeleteOrphans(ctx context.Context, validMobiles []string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"customerRef": bson.M{"$nin": validMobiles}})
	if err != nil {
		return 0, errors.Wrap(err, "delete orphan bookings")
	}
	return res.DeletedCount, nil
}

// UpsertPlaceholder inserts the placeholder for its customerRef unless a
// booking already exists for that customer.
func (r *mongoBookingRepository) UpsertPlaceholder(ctx context.Context, booking *models.Booking) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"customerRef": booking.CustomerRef},
		bson.M{"$setOnInsert": booking},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return errors.Wrap(err, "upsert placeholder booking")
	}
	return nil
}

// missingRefFilter matches bookings whose bookingRef is empty or absent.
// Legacy imports produced both shapes, so an equality match on "" alone is
// not enough.
func missingRefFilter() bson.M {
	return bson.M{"$or": []bson.M{
		{"bookingRef": ""},
		{"bookingRef": bson.M{"$exists": false}},
	}}
}

func setBookingRefFilter(customerRef string) bson.M {
	filter := missingRefFilter()
	filter["customerRef"] = customerRef
	return filter
}

// FindMissingRefs returns bookings without a bookingRef, left behind by the
// legacy import path.
func (r *mongoBookingRepository) FindMissingRefs(ctx context.Context) ([]models.Booking, error) {
	cursor, err := r.coll.Find(ctx, missingRefFilter())
	if err != nil {
		return nil, errors.Wrap(err, "find bookings missing refs")
	}
	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, errors.Wrap(err, "decode bookings")
	}
	return bookings, nil
}

func (r *mongoBookingRepository) SetBookingRef(ctx context.Context, customerRef, bookingRef string) error {
	res, err := r.coll.UpdateOne(ctx,
		setBookingRefFilter(customerRef),
		bson.M{"$set": bson.M{"bookingRef": bookingRef}},
	)
	if err != nil {
		return errors.Wrap(err, "set booking ref")
	}
	if res.MatchedCount == 0 {
		return errors.Errorf("no booking without a reference for customer %s", customerRef)
	}
	return nil
}

// ReplaceAll drops every booking document and inserts the given set. Used by
// the one-off migration from the legacy store.
func (r *mongoBookingRepository) ReplaceAll(ctx context.Context, bookings []models.Booking) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return errors.Wrap(err, "clear bookings")
	}
	if len(bookings) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(bookings))
	for i := range bookings {
		docs = append(docs, bookings[i])
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return errors.Wrap(err, "insert bookings")
	}
	return nil
}
