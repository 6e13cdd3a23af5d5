package domain

import (
	"sort"

	"github.com/Danthewaann/ConcertHallSystem/internal/rng"
)

// Customer is identified by name (compared case-insensitively) and holds
// the seats it has booked in one concert, ordered by seat identity.
// Entitlement flags are sticky: once granted they are never cleared.
type Customer struct {
	Name           string
	GoldEntitled   bool
	SilverEntitled bool
	seats          []*Seat
}

func NewCustomer(name string) *Customer {
	return &Customer{Name: name}
}

// AddSeat inserts seat keeping the collection ordered by grid position.
func (c *Customer) AddSeat(seat *Seat) {
	i := sort.Search(len(c.seats), func(i int) bool {
		return c.seats[i].gridIndex() >= seat.gridIndex()
	})
	c.seats = append(c.seats, nil)
	copy(c.seats[i+1:], c.seats[i:])
	c.seats[i] = seat
}

func (c *Customer) RemoveSeat(seat *Seat) {
	for i, s := range c.seats {
		if s == seat {
			c.seats = append(c.seats[:i], c.seats[i+1:]...)
			return
		}
	}
}

func (c *Customer) HasBookedSeat() bool {
	return len(c.seats) > 0
}

// BookedSeats returns the customer's seats in seat-identity order.
func (c *Customer) BookedSeats() []*Seat {
	return c.seats
}

func (c *Customer) grantEntitlement(seat *Seat, src rng.Source) {
	sectionTraits[seat.Section()].grant(c, src)
}

// Entitlement renders the bonuses the customer has earned, or "" when none.
func (c *Customer) Entitlement() string {
	var result string
	if c.GoldEntitled {
		result = "a free backstage pass"
	}
	if c.SilverEntitled {
		if result != "" {
			result += " and a free programme"
		} else {
			result = "a free programme"
		}
	}
	return result
}
