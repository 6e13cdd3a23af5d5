package app

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/Danthewaann/ConcertHallSystem/internal/clock"
	"github.com/Danthewaann/ConcertHallSystem/internal/domain"
	"github.com/Danthewaann/ConcertHallSystem/internal/rng"
)

// ConcertStore is the persistence boundary of the hall service.
type ConcertStore interface {
	Load() ([]*domain.Concert, error)
	Save(concerts []*domain.Concert) error
}

// HallService owns the in-memory concert registry and orchestrates loading
// and saving it. The registry enforces (name, date) uniqueness: names
// compared case-insensitively, dates exactly.
type HallService struct {
	store ConcertStore
	clock clock.Clock
	rand  rng.Source
	log   *slog.Logger

	concerts  []*domain.Concert
	lastSaved time.Time
}

func NewHallService(store ConcertStore, clk clock.Clock, src rng.Source, log *slog.Logger) *HallService {
	return &HallService{
		store: store,
		clock: clk,
		rand:  src,
		log:   log,
	}
}

// Load populates the registry from the store. Whatever loaded cleanly is
// kept even when the returned error is non-nil; the caller decides whether
// a partial load is acceptable.
func (s *HallService) Load() error {
	concerts, err := s.store.Load()
	s.concerts = concerts
	if err != nil {
		s.log.Warn("registry loaded with errors", "concerts", len(concerts), "error", err)
		return err
	}
	s.log.Info("registry loaded", "concerts", len(concerts))
	return nil
}

func (s *HallService) Concerts() []*domain.Concert {
	return s.concerts
}

func (s *HallService) FindConcert(name, date string) (*domain.Concert, error) {
	for _, c := range s.concerts {
		if c.Is(name, date) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %s %s", domain.ErrConcertNotFound, name, date)
}

var dateRx = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// AddConcert creates an empty concert and registers it. The date must be
// YYYY-MM-DD and the name must not contain a date-shaped word, which would
// make the index file ambiguous.
func (s *HallService) AddConcert(name, date string) (*domain.Concert, error) {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return nil, domain.ErrConcertNameRequired
	}
	for _, word := range strings.Fields(name) {
		if dateRx.MatchString(word) {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidConcertName, name)
		}
	}
	if !dateRx.MatchString(date) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDate, date)
	}
	if existing, err := s.FindConcert(name, date); err == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrConcertExists, existing.ID())
	}

	concert := domain.NewConcert(name, date, s.rand)
	s.concerts = append(s.concerts, concert)
	s.log.Info("concert created", "concert", concert.ID())
	return concert, nil
}

// BookSeat validates and normalizes the raw customer name, then books the
// seat through the concert.
func (s *HallService) BookSeat(c *domain.Concert, seat *domain.Seat, rawName string) (string, error) {
	name, err := NormalizeCustomerName(rawName)
	if err != nil {
		return "", err
	}
	if err := c.BookSeat(seat, name); err != nil {
		return "", err
	}
	return name, nil
}

// UnbookSeat releases the seat; CannotUnbookError from Bronze seats passes
// through untouched.
func (s *HallService) UnbookSeat(c *domain.Concert, seat *domain.Seat) error {
	return c.UnbookSeat(seat)
}

// SaveAll persists the registry and stamps the save time.
func (s *HallService) SaveAll() error {
	if err := s.store.Save(s.concerts); err != nil {
		return fmt.Errorf("save registry: %w", err)
	}
	s.lastSaved = s.clock.Now()
	s.log.Info("registry saved", "concerts", len(s.concerts), "at", s.lastSaved)
	return nil
}

// LastSaved reports when SaveAll last succeeded (zero before the first
// save of this session).
func (s *HallService) LastSaved() time.Time {
	return s.lastSaved
}

// Dirty reports whether any concert has unsaved changes.
func (s *HallService) Dirty() bool {
	for _, c := range s.concerts {
		if c.Dirty() {
			return true
		}
	}
	return false
}
