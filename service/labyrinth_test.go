package service

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"testing"
	"time"

	dmn "github.com/cbs4385/labyrinth-api/domain"
	"github.com/cbs4385/labyrinth-api/logger"
	"github.com/cbs4385/labyrinth-api/maze"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLabyrinthRepo struct {
	saved   map[uuid.UUID]*dmn.Labyrinth
	saveErr error
}

func newFakeLabyrinthRepo() *fakeLabyrinthRepo {
	return &fakeLabyrinthRepo{saved: make(map[uuid.UUID]*dmn.Labyrinth)}
}

func (f *fakeLabyrinthRepo) Save(l *dmn.Labyrinth) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved[l.ID] = l
	return nil
}

func (f *fakeLabyrinthRepo) ByID(id uuid.UUID) (*dmn.Labyrinth, error) {
	l, ok := f.saved[id]
	if !ok {
		return nil, errors.New("labyrinth not found")
	}
	return l, nil
}

type fakeLayoutCache struct {
	store  map[string]string
	recent []string
	fills  int
}

func newFakeLayoutCache() *fakeLayoutCache {
	return &fakeLayoutCache{store: make(map[string]string)}
}

func (f *fakeLayoutCache) GetOrFill(_ context.Context, key string, fill func() (string, error)) (string, error) {
	if v, ok := f.store[key]; ok {
		return v, nil
	}
	v, err := fill()
	if err != nil {
		return "", err
	}
	f.fills++
	f.store[key] = v
	return v, nil
}

func (f *fakeLayoutCache) PushRecent(_ context.Context, id string, _ time.Time) error {
	f.recent = append([]string{id}, f.recent...)
	return nil
}

func (f *fakeLayoutCache) Recent(_ context.Context, limit int64) ([]string, error) {
	if int64(len(f.recent)) < limit {
		limit = int64(len(f.recent))
	}
	return f.recent[:limit], nil
}

func newTestService(t *testing.T) (*Labyrinth, *fakeLabyrinthRepo, *fakeLayoutCache) {
	t.Helper()
	l, err := logger.New("TEST", "", io.Discard)
	require.NoError(t, err)

	repo := newFakeLabyrinthRepo()
	cache := newFakeLayoutCache()
	svc, err := NewLabyrinthService(repo, cache, l)
	require.NoError(t, err)
	return svc, repo, cache
}

func TestLabyrinthService_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("pinned seed reproduces the core output", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		seed := int64(42)

		got, err := svc.Generate(ctx, 9, 7, 2, &seed)
		require.NoError(t, err)

		want, err := maze.Generate(9, 7, 2, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		assert.Equal(t, want, got.Layout)
		assert.Equal(t, seed, got.Seed)
		assert.Contains(t, repo.saved, got.ID)
	})

	t.Run("repeated pinned seed hits the cache", func(t *testing.T) {
		svc, repo, cache := newTestService(t)
		seed := int64(7)

		first, err := svc.Generate(ctx, 11, 11, 1, &seed)
		require.NoError(t, err)
		second, err := svc.Generate(ctx, 11, 11, 1, &seed)
		require.NoError(t, err)

		assert.Equal(t, first.Layout, second.Layout)
		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, 1, cache.fills)
		assert.Len(t, repo.saved, 2)
	})

	t.Run("nil seed is resolved and stored", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		svc.seedFn = func() int64 { return 99 }

		got, err := svc.Generate(ctx, 7, 7, 1, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(99), got.Seed)

		want, err := maze.Generate(7, 7, 1, rand.New(rand.NewSource(99)))
		require.NoError(t, err)
		assert.Equal(t, want, got.Layout)
	})

	t.Run("invalid parameters never reach the repo", func(t *testing.T) {
		svc, repo, cache := newTestService(t)

		_, err := svc.Generate(ctx, 2, 9, 1, nil)
		assert.ErrorIs(t, err, maze.ErrInvalidDimension)

		_, err = svc.Generate(ctx, 9, 9, 0, nil)
		assert.ErrorIs(t, err, maze.ErrInvalidEntranceCount)

		assert.Empty(t, repo.saved)
		assert.Zero(t, cache.fills)
	})

	t.Run("save failures propagate", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.saveErr = errors.New("mongo down")

		_, err := svc.Generate(ctx, 7, 7, 1, nil)
		assert.Error(t, err)
	})
}

func TestLabyrinthService_ByIDAndRecent(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	first, err := svc.Generate(ctx, 7, 7, 1, nil)
	require.NoError(t, err)
	second, err := svc.Generate(ctx, 9, 9, 2, nil)
	require.NoError(t, err)

	got, err := svc.ByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Layout, got.Layout)

	_, err = svc.ByID(ctx, uuid.New())
	assert.Error(t, err)

	recent, err := svc.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{second.ID.String(), first.ID.String()}, recent)
}
