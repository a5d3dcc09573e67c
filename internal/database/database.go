package database

import (
	"context"
	"fmt"
	"time"

	"github.com/yaritu/core/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names. Every entity lives in its own collection with no
// cross-collection references beyond plain URL strings.
const (
	CollContacts        = "contacts"
	CollTestimonials    = "testimonials"
	CollTrendingVideos  = "trending_videos"
	CollCelebrityVideos = "celebrity_videos"
	CollJewellery       = "jewellery"
)

// Connect opens a MongoDB connection and pings it.
func Connect(cfg *config.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client.Database(cfg.Mongo.DBName), nil
}

// Disconnect closes the underlying client with a short deadline.
func Disconnect(db *mongo.Database) error {
	if db == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return db.Client().Disconnect(ctx)
}
