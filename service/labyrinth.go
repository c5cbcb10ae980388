package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	dmn "github.com/cbs4385/labyrinth-api/domain"
	"github.com/cbs4385/labyrinth-api/logger"
	"github.com/cbs4385/labyrinth-api/maze"
	"github.com/cbs4385/labyrinth-api/service/i"
	"github.com/google/uuid"
)

// layoutKeyFmt keys cached layouts by every parameter the generator
// consumes, so a cache hit is always byte-identical to a fresh run.
const layoutKeyFmt = "labyrinth:layout:w%d:h%d:e%d:s%d"

// Labyrinth implements i.LabyrinthGenerator: it runs the maze core,
// caches layouts by parameter key, and persists every generated record.
type Labyrinth struct {
	repo   i.LabyrinthRepo
	cache  i.LayoutCache
	logger logger.Logger

	// seedFn picks a seed for requests that do not pin one.
	seedFn func() int64
	nowFn  func() time.Time
}

// NewLabyrinthService creates a Labyrinth service from its dependencies.
func NewLabyrinthService(repo i.LabyrinthRepo, cache i.LayoutCache, l logger.Logger) (*Labyrinth, error) {
	if repo == nil || cache == nil || l == nil {
		return nil, errors.New("labyrinth service requires a repo, a cache and a logger")
	}
	return &Labyrinth{
		repo:   repo,
		cache:  cache,
		logger: l,
		seedFn: func() int64 { return time.Now().UnixNano() },
		nowFn:  time.Now,
	}, nil
}

// Generate produces, persists and indexes a new labyrinth. A nil seed is
// replaced with a fresh one before generation, so the stored record can
// always reproduce its layout.
func (s *Labyrinth) Generate(ctx context.Context, width, height, entrances int, seed *int64) (*dmn.Labyrinth, error) {
	if err := maze.Validate(width, height, entrances); err != nil {
		return nil, err
	}

	resolved := s.seedFn()
	if seed != nil {
		resolved = *seed
	}

	key := layoutKey(width, height, entrances, resolved)
	layout, err := s.cache.GetOrFill(ctx, key, func() (string, error) {
		return maze.Generate(width, height, entrances, rand.New(rand.NewSource(resolved)))
	})
	if err != nil {
		s.logger.Error(fmt.Sprintf("Generating layout %s: %v", key, err))
		return nil, err
	}

	labyrinth := &dmn.Labyrinth{
		ID:        uuid.New(),
		Width:     width,
		Height:    height,
		Entrances: entrances,
		Seed:      resolved,
		Layout:    layout,
		CreatedAt: s.nowFn().UTC(),
	}
	if err := s.repo.Save(labyrinth); err != nil {
		s.logger.Error(fmt.Sprintf("Saving labyrinth %s: %v", labyrinth.ID, err))
		return nil, err
	}

	// The recent index is best effort; a stale index never corrupts the
	// stored records.
	if err := s.cache.PushRecent(ctx, labyrinth.ID.String(), labyrinth.CreatedAt); err != nil {
		s.logger.Warning(fmt.Sprintf("Indexing labyrinth %s: %v", labyrinth.ID, err))
	}

	s.logger.Info(fmt.Sprintf("Generated labyrinth %s (%dx%d, %d entrances, seed %d)",
		labyrinth.ID, width, height, entrances, resolved))
	return labyrinth, nil
}

// ByID retrieves a previously generated labyrinth.
func (s *Labyrinth) ByID(ctx context.Context, id uuid.UUID) (*dmn.Labyrinth, error) {
	return s.repo.ByID(id)
}

// Recent lists the IDs of the most recently generated labyrinths.
func (s *Labyrinth) Recent(ctx context.Context, limit int64) ([]string, error) {
	return s.cache.Recent(ctx, limit)
}

func layoutKey(width, height, entrances int, seed int64) string {
	return fmt.Sprintf(layoutKeyFmt, width, height, entrances, seed)
}
