package domain

import (
	"time"

	"github.com/google/uuid"
)

// Labyrinth is one generated maze layout together with the parameters
// that produced it. Layout is the serialized tile grid: Height lines of
// Width characters each, in the `#`/`.`/`H`/`;`/`~` alphabet. The same
// width, height, entrance count and seed always reproduce the same
// layout.
type Labyrinth struct {
	ID        uuid.UUID `bson:"_id"`
	Width     int       `bson:"width"`
	Height    int       `bson:"height"`
	Entrances int       `bson:"entrances"`
	Seed      int64     `bson:"seed"`
	Layout    string    `bson:"layout"`
	CreatedAt time.Time `bson:"createdAt"`
}
