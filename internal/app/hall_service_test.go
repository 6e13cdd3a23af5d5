package app

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Danthewaann/ConcertHallSystem/internal/clock"
	"github.com/Danthewaann/ConcertHallSystem/internal/domain"
	"github.com/Danthewaann/ConcertHallSystem/internal/rng"
)

type fakeStore struct {
	concerts []*domain.Concert
	loadErr  error
	saveErr  error
	saves    int
	saved    []*domain.Concert
}

func (f *fakeStore) Load() ([]*domain.Concert, error) {
	return f.concerts, f.loadErr
}

func (f *fakeStore) Save(concerts []*domain.Concert) error {
	f.saves++
	f.saved = concerts
	if f.saveErr != nil {
		return f.saveErr
	}
	for _, c := range concerts {
		c.MarkClean()
	}
	return nil
}

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestService(store *fakeStore) *HallService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHallService(store, clock.NewFixed(testTime), rng.NewFixed(1), logger)
}

func TestHallService_Load(t *testing.T) {
	t.Parallel()

	t.Run("keeps partially loaded concerts alongside the error", func(t *testing.T) {
		loaded := []*domain.Concert{
			domain.NewConcert("Gig", "2025-06-01", rng.NewFixed(1)),
		}
		svc := newTestService(&fakeStore{concerts: loaded, loadErr: errors.New("3 record(s) failed to load")})

		err := svc.Load()
		require.Error(t, err)
		assert.Equal(t, loaded, svc.Concerts())
	})

	t.Run("clean load", func(t *testing.T) {
		svc := newTestService(&fakeStore{})
		require.NoError(t, svc.Load())
		assert.Empty(t, svc.Concerts())
	})
}

func TestHallService_AddConcert(t *testing.T) {
	t.Parallel()

	t.Run("creates and registers a concert", func(t *testing.T) {
		svc := newTestService(&fakeStore{})
		c, err := svc.AddConcert("The Big Gig", "2025-06-01")
		require.NoError(t, err)
		assert.Equal(t, "The Big Gig 2025-06-01", c.ID())
		assert.Len(t, svc.Concerts(), 1)
	})

	t.Run("rejects a duplicate identity, name case-insensitive", func(t *testing.T) {
		svc := newTestService(&fakeStore{})
		_, err := svc.AddConcert("Gig", "2025-06-01")
		require.NoError(t, err)

		_, err = svc.AddConcert("GIG", "2025-06-01")
		assert.ErrorIs(t, err, domain.ErrConcertExists)

		_, err = svc.AddConcert("Gig", "2025-06-02")
		assert.NoError(t, err, "same name on another date is a different concert")
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		svc := newTestService(&fakeStore{})
		_, err := svc.AddConcert("Gig", "01-06-2025x")
		assert.ErrorIs(t, err, domain.ErrInvalidDate)
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		svc := newTestService(&fakeStore{})
		_, err := svc.AddConcert("   ", "2025-06-01")
		assert.ErrorIs(t, err, domain.ErrConcertNameRequired)
	})

	t.Run("rejects a name containing a date-shaped word", func(t *testing.T) {
		svc := newTestService(&fakeStore{})
		_, err := svc.AddConcert("Gig 2024-01-01 Revival", "2025-06-01")
		assert.ErrorIs(t, err, domain.ErrInvalidConcertName)
	})
}

func TestHallService_FindConcert(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakeStore{})
	created, err := svc.AddConcert("Gig", "2025-06-01")
	require.NoError(t, err)

	found, err := svc.FindConcert("gig", "2025-06-01")
	require.NoError(t, err)
	assert.Same(t, created, found)

	_, err = svc.FindConcert("Gig", "2025-06-02")
	assert.ErrorIs(t, err, domain.ErrConcertNotFound)
}

func TestHallService_BookSeat(t *testing.T) {
	t.Parallel()

	t.Run("normalizes the customer name", func(t *testing.T) {
		svc := newTestService(&fakeStore{})
		c, err := svc.AddConcert("Gig", "2025-06-01")
		require.NoError(t, err)
		seat, err := c.GetSeat('A', 1)
		require.NoError(t, err)

		name, err := svc.BookSeat(c, seat, "  daniel   black ")
		require.NoError(t, err)
		assert.Equal(t, "Daniel Black", name)
		assert.Equal(t, "Daniel Black", seat.Bookee())
	})

	t.Run("rejects invalid names without booking", func(t *testing.T) {
		svc := newTestService(&fakeStore{})
		c, err := svc.AddConcert("Gig", "2025-06-01")
		require.NoError(t, err)
		seat, err := c.GetSeat('A', 1)
		require.NoError(t, err)

		_, err = svc.BookSeat(c, seat, "42.5")
		require.ErrorIs(t, err, domain.ErrNameNumeric)
		assert.False(t, seat.Booked())
	})
}

func TestHallService_SaveAll(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	svc := newTestService(store)
	_, err := svc.AddConcert("Gig", "2025-06-01")
	require.NoError(t, err)
	require.True(t, svc.Dirty())

	require.NoError(t, svc.SaveAll())

	assert.Equal(t, 1, store.saves)
	assert.Len(t, store.saved, 1)
	assert.Equal(t, testTime, svc.LastSaved())
	assert.False(t, svc.Dirty())
}
