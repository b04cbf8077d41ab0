package config

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"hotel-backoffice/models"
)

// ConnectMongo opens the document-store client and verifies the connection
// with a ping. The caller owns the client and must Disconnect it on shutdown.
func ConnectMongo(ctx context.Context, cfg *Config) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, err
	}

	db := client.Database(cfg.Mongo.Database)
	if err := ensureIndexes(ctx, db); err != nil {
		return nil, nil, err
	}

	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to document store")
	return client, db, nil
}

// ensureIndexes declares the unique reference indexes and the booking lookup
// indexes. customerRef on bookings is deliberately not unique: it stores the
// customer's mobile number and a customer may hold several bookings.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("customers").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "customerRef", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	bookingIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "bookingRef", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "customerRef", Value: 1}}},
		{Keys: bson.D{{Key: "checkInDate", Value: 1}}},
		{Keys: bson.D{{Key: "checkOutDate", Value: 1}}},
		{Keys: bson.D{{Key: "roomNumber", Value: 1}}},
	}
	_, err = db.Collection("bookings").Indexes().CreateMany(ctx, bookingIndexes)
	return err
}

// ConnectLegacy opens the legacy MySQL store and migrates its two tables.
// Only the migration command calls this; request handling never touches it.
func ConnectLegacy(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.LegacyDSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.LegacyCustomer{}, &models.LegacyBooking{}); err != nil {
		return nil, err
	}
	log.Info().Str("database", cfg.Legacy.Name).Msg("connected to legacy relational store")
	return db, nil
}
