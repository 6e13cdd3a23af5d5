package domain

import (
	"fmt"
	"strings"

	"github.com/Danthewaann/ConcertHallSystem/internal/rng"
)

// SeatRows lists every row letter in grid order. Rows A-C are Gold,
// D-F Silver, G-I Bronze.
const SeatRows = "ABCDEFGHI"

const (
	SeatsPerRow = 10
	TotalSeats  = len(SeatRows) * SeatsPerRow
)

type Section int

const (
	SectionGold Section = iota
	SectionSilver
	SectionBronze
)

func (s Section) String() string {
	switch s {
	case SectionGold:
		return "Gold"
	case SectionSilver:
		return "Silver"
	default:
		return "Bronze"
	}
}

// ParseSection resolves a section name (case-insensitive).
func ParseSection(name string) (Section, error) {
	for _, s := range []Section{SectionGold, SectionSilver, SectionBronze} {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSection, name)
}

// sectionTraits maps a section onto the behavior that differs between
// sections: whether a booking can be undone and what entitlement (if any)
// a booking grants.
var sectionTraits = map[Section]struct {
	unbookable bool
	grant      func(c *Customer, src rng.Source)
}{
	SectionGold: {
		unbookable: true,
		grant: func(c *Customer, src rng.Source) {
			// 1 in 10 chance of a free backstage pass.
			if src.IntN(10) == 0 {
				c.GoldEntitled = true
			}
		},
	},
	SectionSilver: {
		unbookable: true,
		grant: func(c *Customer, _ rng.Source) {
			c.SilverEntitled = true
		},
	},
	SectionBronze: {
		unbookable: false,
		grant:      func(*Customer, rng.Source) {},
	},
}

// RowIndex returns the position of row within SeatRows, or -1 when the
// letter is not a row of the grid.
func RowIndex(row byte) int {
	return strings.IndexByte(SeatRows, row)
}

// Seat is one seat of a concert's fixed grid. Row and Number never change
// after creation; a seat is booked exactly when Bookee is non-empty.
type Seat struct {
	Row    byte
	Number int
	Price  float64
	bookee string
}

// ID renders the seat identity, e.g. "A1".
func (s *Seat) ID() string {
	return fmt.Sprintf("%c%d", s.Row, s.Number)
}

func (s *Seat) Section() Section {
	return Section(RowIndex(s.Row) / 3)
}

func (s *Seat) Booked() bool {
	return s.bookee != ""
}

// Bookee returns the name of the customer holding the seat, or "" when the
// seat is free.
func (s *Seat) Bookee() string {
	return s.bookee
}

func (s *Seat) book(customerName string) {
	s.bookee = customerName
}

// unbook clears the booking. Bronze bookings are final and always fail.
func (s *Seat) unbook() error {
	if !sectionTraits[s.Section()].unbookable {
		return &CannotUnbookError{
			SeatID: s.ID(),
			Reason: fmt.Sprintf("seat (%s) is in the %s section", s.ID(), s.Section()),
		}
	}
	s.bookee = ""
	return nil
}

// gridIndex is the seat's position in the concert grid and doubles as its
// sort key.
func (s *Seat) gridIndex() int {
	return RowIndex(s.Row)*SeatsPerRow + s.Number - 1
}
