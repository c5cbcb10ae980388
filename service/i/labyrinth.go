package i

import (
	"context"

	dmn "github.com/cbs4385/labyrinth-api/domain"
	"github.com/google/uuid"
)

// LabyrinthGenerator creates, stores and retrieves labyrinth records.
type LabyrinthGenerator interface {
	// Generate produces a new labyrinth from the given dimensions and
	// entrance count. A nil seed means the service picks one, so the
	// result can still be reproduced from the stored record.
	Generate(ctx context.Context, width, height, entrances int, seed *int64) (*dmn.Labyrinth, error)

	// ByID retrieves a previously generated labyrinth.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Labyrinth, error)

	// Recent lists the IDs of the most recently generated labyrinths,
	// newest first.
	Recent(ctx context.Context, limit int64) ([]string, error)
}
