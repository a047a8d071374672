package db

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const pingTimeout = 10 * time.Second

// Connect creates a MongoDB client for uri and returns the named database.
// The driver dials lazily, so an unreachable server is only reported by the ping,
// which is logged but not fatal.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		logrus.WithError(err).WithField("database", dbName).Warn("MongoDB ping failed, continuing")
	} else {
		logrus.WithField("database", dbName).Info("Connected to MongoDB!")
	}

	return client, client.Database(dbName), nil
}

// Disconnect closes the client (call in main defer).
func Disconnect(ctx context.Context, client *mongo.Client) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
