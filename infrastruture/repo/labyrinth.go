package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/cbs4385/labyrinth-api/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrLabyrinthNotFound is returned when no record matches the requested ID.
var ErrLabyrinthNotFound = errors.New("labyrinth not found")

// LabyrinthRepo handles the persistence of generated labyrinth records.
type LabyrinthRepo struct {
	collection *mongo.Collection
}

// NewLabyrinthRepo creates a new LabyrinthRepo with the given MongoDB client, database name, and collection name.
func NewLabyrinthRepo(client *mongo.Client, dbName, collectionName string) *LabyrinthRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &LabyrinthRepo{
		collection: collection,
	}
}

// Save inserts or updates a labyrinth record. Records are immutable in
// practice, so the upsert only matters for retried requests.
func (r *LabyrinthRepo) Save(labyrinth *dmn.Labyrinth) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	filter := bson.M{"_id": labyrinth.ID}
	update := bson.M{
		"$set": bson.M{
			"width":     labyrinth.Width,
			"height":    labyrinth.Height,
			"entrances": labyrinth.Entrances,
			"seed":      labyrinth.Seed,
			"layout":    labyrinth.Layout,
			"createdAt": labyrinth.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByID retrieves a labyrinth by its ID.
// Returns ErrLabyrinthNotFound if no record matches.
func (r *LabyrinthRepo) ByID(id uuid.UUID) (*dmn.Labyrinth, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var labyrinth dmn.Labyrinth
	if err := r.collection.FindOne(ctx, filter).Decode(&labyrinth); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrLabyrinthNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &labyrinth, nil
}
