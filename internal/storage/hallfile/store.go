package hallfile

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Danthewaann/ConcertHallSystem/internal/domain"
	"github.com/Danthewaann/ConcertHallSystem/internal/rng"
)

// Store persists a concert registry in a single directory: the index file
// at the root plus one sub-directory of customer and booked-seat files per
// concert. All I/O is synchronous and every file handle is closed before a
// call returns.
type Store struct {
	root string
	log  *slog.Logger
	rand rng.Source
}

func NewStore(root string, log *slog.Logger, src rng.Source) *Store {
	return &Store{root: root, log: log, rand: src}
}

// Root returns the directory the store reads and writes.
func (s *Store) Root() string {
	return s.root
}

// Load reads the whole registry. Malformed lines never abort a file: each
// is captured as a RecordError and decoding moves to the next line, so the
// returned concerts are usable even when the error is non-nil. Identity
// collisions in the index are collected into a DuplicateConcertError; both
// colliding concerts remain loaded pending caller resolution. A missing
// index file is an empty registry, not an error.
func (s *Store) Load() ([]*domain.Concert, error) {
	lines, err := s.readLines(filepath.Join(s.root, IndexFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", IndexFile, err)
	}

	var (
		concerts   []*domain.Concert
		indexLines []int
		records    []*RecordError
		duplicates []DuplicatePair
	)
	for _, line := range lines {
		rec, err := parseConcertLine(line.text)
		if err != nil {
			records = append(records, &RecordError{File: IndexFile, Line: line.num, Reason: err.Error()})
			continue
		}

		for i, existing := range concerts {
			if existing.Is(rec.Name, rec.Date) {
				duplicates = append(duplicates, DuplicatePair{
					Name:      rec.Name,
					Date:      rec.Date,
					FirstLine: indexLines[i],
					OtherLine: line.num,
				})
			}
		}

		concert := domain.NewConcert(rec.Name, rec.Date, s.rand)
		concert.SetSectionPrice(domain.SectionGold, rec.Prices[0])
		concert.SetSectionPrice(domain.SectionSilver, rec.Prices[1])
		concert.SetSectionPrice(domain.SectionBronze, rec.Prices[2])
		records = append(records, s.loadConcertFiles(concert)...)
		concert.MarkClean()

		concerts = append(concerts, concert)
		indexLines = append(indexLines, line.num)
	}

	var errs []error
	if len(records) > 0 {
		s.log.Warn("partial load", "failed_records", len(records))
		errs = append(errs, &LoadError{Records: records})
	}
	if len(duplicates) > 0 {
		s.log.Warn("duplicate concerts detected", "pairs", len(duplicates))
		errs = append(errs, &DuplicateConcertError{Pairs: duplicates})
	}
	return concerts, errors.Join(errs...)
}

// loadConcertFiles restores a concert's customers and booked seats.
// Customers decode first so seat records can re-link to their entitlement
// history; a seat whose bookee has no customer record gets one synthesized
// with no entitlements, which is logged so a repaired load is
// distinguishable from a clean one.
func (s *Store) loadConcertFiles(c *domain.Concert) []*RecordError {
	var records []*RecordError
	dir := filepath.Join(s.root, c.ID())

	customersPath := filepath.Join(c.ID(), CustomersFile)
	lines, err := s.readLines(filepath.Join(dir, CustomersFile))
	if err != nil && !os.IsNotExist(err) {
		records = append(records, &RecordError{File: customersPath, Line: 0, Reason: err.Error()})
	}
	for _, line := range lines {
		rec, err := parseCustomerLine(line.text)
		if err == nil {
			err = c.RestoreCustomer(rec.Name, rec.GoldEntitled, rec.SilverEntitled)
		}
		if err != nil {
			records = append(records, &RecordError{File: customersPath, Line: line.num, Reason: err.Error()})
		}
	}

	seatsPath := filepath.Join(c.ID(), BookedSeatsFile)
	lines, err = s.readLines(filepath.Join(dir, BookedSeatsFile))
	if err != nil && !os.IsNotExist(err) {
		records = append(records, &RecordError{File: seatsPath, Line: 0, Reason: err.Error()})
	}
	for _, line := range lines {
		rec, err := parseSeatLine(line.text)
		if err != nil {
			records = append(records, &RecordError{File: seatsPath, Line: line.num, Reason: err.Error()})
			continue
		}
		seat, err := c.GetSeat(rec.Row, rec.Number)
		if err != nil {
			records = append(records, &RecordError{File: seatsPath, Line: line.num, Reason: err.Error()})
			continue
		}
		synthesized, err := c.RestoreBooking(seat, rec.Bookee)
		if err != nil {
			records = append(records, &RecordError{File: seatsPath, Line: line.num, Reason: err.Error()})
			continue
		}
		if synthesized {
			s.log.Warn("synthesized customer from orphan seat record",
				"concert", c.ID(), "seat", seat.ID(), "customer", rec.Bookee)
		}
	}

	return records
}

// Save rewrites the index file and the files of every dirty concert, then
// marks those concerts clean. Concerts with no unsaved changes keep their
// files untouched. Missing directories are created on first save.
func (s *Store) Save(concerts []*domain.Concert) error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", s.root, err)
	}

	index := make([]string, 0, len(concerts))
	for _, c := range concerts {
		index = append(index, encodeConcertLine(c))
	}
	if err := s.writeLines(filepath.Join(s.root, IndexFile), index); err != nil {
		return fmt.Errorf("write %s: %w", IndexFile, err)
	}

	for _, c := range concerts {
		if !c.Dirty() {
			continue
		}
		if err := s.saveConcert(c); err != nil {
			return err
		}
		c.MarkClean()
		s.log.Info("saved concert", "concert", c.ID(), "booked_seats", c.BookedSeatCount())
	}
	return nil
}

func (s *Store) saveConcert(c *domain.Concert) error {
	dir := filepath.Join(s.root, c.ID())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	var seats []string
	for _, seat := range c.Seats() {
		if seat.Booked() {
			seats = append(seats, encodeSeatLine(seat))
		}
	}
	if err := s.writeLines(filepath.Join(dir, BookedSeatsFile), seats); err != nil {
		return fmt.Errorf("write %s for %s: %w", BookedSeatsFile, c.ID(), err)
	}

	var customers []string
	for _, customer := range c.Customers() {
		customers = append(customers, encodeCustomerLine(customer))
	}
	if err := s.writeLines(filepath.Join(dir, CustomersFile), customers); err != nil {
		return fmt.Errorf("write %s for %s: %w", CustomersFile, c.ID(), err)
	}
	return nil
}

type numberedLine struct {
	num  int
	text string
}

// readLines returns a file's non-blank lines with their 1-based numbers.
func (s *Store) readLines(path string) ([]numberedLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []numberedLine
	scanner := bufio.NewScanner(f)
	num := 0
	for scanner.Scan() {
		num++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		lines = append(lines, numberedLine{num: num, text: text})
	}
	return lines, scanner.Err()
}

func (s *Store) writeLines(path string, lines []string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}
