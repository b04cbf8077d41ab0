package repository

import (
	"context"
	"regexp"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hotel-backoffice/models"
)

// CustomerRepository is the persistence gateway for customer records.
// Implementations return (nil, nil) from GetByRef when no record matches so
// services own the not-found policy.
type CustomerRepository interface {
	List(ctx context.Context) ([]models.Customer, error)
	GetByRef(ctx context.Context, customerRef string) (*models.Customer, error)
	Insert(ctx context.Context, customer *models.Customer) error
	Update(ctx context.Context, customerRef string, customer *models.Customer) error
	Delete(ctx context.Context, customerRef string) (int64, error)
	Filter(ctx context.Context, field, value string) ([]models.Customer, error)
	ReplaceAll(ctx context.Context, customers []models.Customer) error
}

type mongoCustomerRepository struct {
	coll *mongo.Collection
}

func NewCustomerRepository(db *mongo.Database) CustomerRepository {
	return &mongoCustomerRepository{coll: db.Collection("customers")}
}

func (r *mongoCustomerRepository) List(ctx context.Context) ([]models.Customer, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "customerRef", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "find customers")
	}
	customers := []models.Customer{}
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, errors.Wrap(err, "decode customers")
	}
	return customers, nil
}

func (r *mongoCustomerRepository) GetByRef(ctx context.Context, customerRef string) (*models.Customer, error) {
	var customer models.Customer
	err := r.coll.FindOne(ctx, bson.M{"customerRef": customerRef}).Decode(&customer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "find customer")
	}
	return &customer, nil
}

func (r *mongoCustomerRepository) Insert(ctx context.Context, customer *models.Customer) error {
	if _, err := r.coll.InsertOne(ctx, customer); err != nil {
		return errors.Wrap(err, "insert customer")
	}
	return nil
}

func (r *mongoCustomerRepository) Update(ctx context.Context, customerRef string, customer *models.Customer) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"customerRef": customerRef}, customer)
	if err != nil {
		return errors.Wrap(err, "update customer")
	}
	return nil
}

func (r *mongoCustomerRepository) Delete(ctx context.Context, customerRef string) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"customerRef": customerRef})
	if err != nil {
		return 0, errors.Wrap(err, "delete customer")
	}
	return res.DeletedCount, nil
}

// filterQuery builds a case-insensitive substring match on the named field.
// The value is quoted so regex metacharacters in user input match literally
// instead of erroring inside the store.
func filterQuery(field, value string) bson.M {
	return bson.M{field: primitive.Regex{Pattern: regexp.QuoteMeta(value), Options: "i"}}
}

// Filter performs a case-insensitive substring match on the named field.
func (r *mongoCustomerRepository) Filter(ctx context.Context, field, value string) ([]models.Customer, error) {
	cursor, err := r.coll.Find(ctx, filterQuery(field, value))
	if err != nil {
		return nil, errors.Wrap(err, "filter customers")
	}
	customers := []models.Customer{}
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, errors.Wrap(err, "decode customers")
	}
	return customers, nil
}

// ReplaceAll drops every customer document and inserts the given set. Used by
// the one-off migration from the legacy store.
func (r *mongoCustomerRepository) ReplaceAll(ctx context.Context, customers []models.Customer) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return errors.Wrap(err, "clear customers")
	}
	if len(customers) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(customers))
	for i := range customers {
		docs = append(docs, customers[i])
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return errors.Wrap(err, "insert customers")
	}
	return nil
}
