package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Danthewaann/ConcertHallSystem/internal/rng"
)

// Concert owns a fixed 90-seat grid partitioned into three priced sections
// and the registry of customers currently holding seats in it. Customers
// are identified by name, compared case-insensitively, and are evicted the
// moment their last seat is unbooked.
type Concert struct {
	Name string
	Date string

	seats       [TotalSeats]*Seat
	customers   []*Customer
	prices      [3]float64
	bookedSeats int
	dirty       bool
	rand        rng.Source
}

// NewConcert builds a concert with an empty grid and zero section prices.
// A fresh concert starts dirty: it has never been persisted. Loaders call
// MarkClean once restoration ends.
func NewConcert(name, date string, src rng.Source) *Concert {
	c := &Concert{
		Name:  name,
		Date:  date,
		rand:  src,
		dirty: true,
	}
	for i := range c.seats {
		row := SeatRows[i/SeatsPerRow]
		c.seats[i] = &Seat{Row: row, Number: i%SeatsPerRow + 1}
	}
	return c
}

// ID renders the concert identity, which also names its directory on disk.
func (c *Concert) ID() string {
	return c.Name + " " + c.Date
}

// Is reports whether the concert matches the given identity. Names are
// compared case-insensitively, dates exactly.
func (c *Concert) Is(name, date string) bool {
	return strings.EqualFold(c.Name, name) && c.Date == date
}

// GetSeat resolves a row letter and seat number to the grid seat.
func (c *Concert) GetSeat(row byte, number int) (*Seat, error) {
	i := RowIndex(row)
	if i < 0 || number < 1 || number > SeatsPerRow {
		return nil, fmt.Errorf("%w: %c%d", ErrSeatNotFound, row, number)
	}
	return c.seats[i*SeatsPerRow+number-1], nil
}

// Seats returns the grid in row-major order.
func (c *Concert) Seats() []*Seat {
	return c.seats[:]
}

// Customers returns the registry ordered by folded name.
func (c *Concert) Customers() []*Customer {
	return c.customers
}

func (c *Concert) BookedSeatCount() int {
	return c.bookedSeats
}

// BookSeat books the seat for the named customer, creating the customer on
// first booking, and applies the section's entitlement rule.
func (c *Concert) BookSeat(seat *Seat, customerName string) error {
	if seat.Booked() {
		return fmt.Errorf("%w: %s", ErrSeatAlreadyBooked, seat.ID())
	}
	customer := c.findCustomer(customerName)
	if customer == nil {
		customer = NewCustomer(customerName)
		c.insertCustomer(customer)
	}
	seat.book(customer.Name)
	customer.AddSeat(seat)
	customer.grantEntitlement(seat, c.rand)
	c.bookedSeats++
	c.dirty = true
	return nil
}

// UnbookSeat releases the seat and evicts its customer when that was the
// customer's last seat. Unbooking a free seat, or a seat whose bookee has
// no customer record, is a no-op. Bronze seats refuse with
// CannotUnbookError.
func (c *Concert) UnbookSeat(seat *Seat) error {
	customer := c.findCustomer(seat.Bookee())
	if customer == nil {
		return nil
	}
	if err := seat.unbook(); err != nil {
		return err
	}
	customer.RemoveSeat(seat)
	c.bookedSeats--
	if !customer.HasBookedSeat() {
		c.removeCustomer(customer)
	}
	c.dirty = true
	return nil
}

// SetSectionPrice stores the price (rounded to 2 decimal places) and
// reprices the 30 seats of that section.
func (c *Concert) SetSectionPrice(section Section, price float64) {
	rounded := round2(price)
	c.prices[section] = rounded
	start := int(section) * 30
	for _, seat := range c.seats[start : start+30] {
		seat.Price = rounded
	}
	c.dirty = true
}

func (c *Concert) SectionPrice(section Section) float64 {
	return c.prices[section]
}

// QueryBySeat describes the seat's booking state and, when booked, the
// bookee's entitlement.
func (c *Concert) QueryBySeat(seat *Seat) string {
	if !seat.Booked() {
		return fmt.Sprintf("Selected seat (%s) hasn't been booked", seat.ID())
	}
	customer := c.findCustomer(seat.Bookee())
	if customer == nil {
		return fmt.Sprintf("Could not find customer for (%s)", seat.ID())
	}
	query := fmt.Sprintf("Selected seat (%s) is booked by %s", seat.ID(), seat.Bookee())
	if entitlement := customer.Entitlement(); entitlement != "" {
		query += fmt.Sprintf("\n%s is entitled to %s", customer.Name, entitlement)
	}
	return query
}

// QueryByCustomer describes the customer's entitlement and booked seats,
// at most five seats per line.
func (c *Concert) QueryByCustomer(name string) string {
	customer := c.findCustomer(name)
	if customer == nil {
		return "Customer does not exist"
	}

	var b strings.Builder
	if entitlement := customer.Entitlement(); entitlement != "" {
		fmt.Fprintf(&b, "%s is entitled to %s\n", customer.Name, entitlement)
	}
	seats := customer.BookedSeats()
	noun := "seats"
	if len(seats) == 1 {
		noun = "seat"
	}
	fmt.Fprintf(&b, "%s has booked %d %s:\n", customer.Name, len(seats), noun)
	for i, seat := range seats {
		if (i+1)%5 == 0 {
			fmt.Fprintf(&b, "(%s)\n", seat.ID())
		} else {
			fmt.Fprintf(&b, "(%s) ", seat.ID())
		}
	}
	return strings.TrimRight(b.String(), " \n")
}

// Report is the summary exposed to the presentation layer. TotalSales is
// recomputed from the grid on every call, never cached.
type Report struct {
	AvailableSeats int
	BookedSeats    int
	Customers      int
	GoldPrice      float64
	SilverPrice    float64
	BronzePrice    float64
	TotalSales     float64
}

func (c *Concert) Report() Report {
	var sales float64
	for _, seat := range c.seats {
		if seat.Booked() {
			sales += seat.Price
		}
	}
	return Report{
		AvailableSeats: TotalSeats - c.bookedSeats,
		BookedSeats:    c.bookedSeats,
		Customers:      len(c.customers),
		GoldPrice:      c.prices[SectionGold],
		SilverPrice:    c.prices[SectionSilver],
		BronzePrice:    c.prices[SectionBronze],
		TotalSales:     sales,
	}
}

// Lines renders the report the way the booking console presents it.
func (r Report) Lines() []string {
	return []string{
		fmt.Sprintf("Available Seats: %d", r.AvailableSeats),
		fmt.Sprintf("Booked Seats: %d", r.BookedSeats),
		fmt.Sprintf("Customers: %d", r.Customers),
		fmt.Sprintf("GoldSeat Price: £%.2f", r.GoldPrice),
		fmt.Sprintf("SilverSeat Price: £%.2f", r.SilverPrice),
		fmt.Sprintf("BronzeSeat Price: £%.2f", r.BronzePrice),
		fmt.Sprintf("Total Sales: £%.2f", r.TotalSales),
	}
}

// Dirty reports whether the concert has unsaved changes.
func (c *Concert) Dirty() bool {
	return c.dirty
}

// MarkClean records that the concert matches its persisted state.
func (c *Concert) MarkClean() {
	c.dirty = false
}

// RestoreCustomer materializes a customer from a persisted record without
// touching the dirty flag's meaning (callers MarkClean once loading ends).
func (c *Concert) RestoreCustomer(name string, goldEntitled, silverEntitled bool) error {
	if c.findCustomer(name) != nil {
		return fmt.Errorf("%w: %s", ErrCustomerExists, name)
	}
	customer := NewCustomer(name)
	customer.GoldEntitled = goldEntitled
	customer.SilverEntitled = silverEntitled
	c.insertCustomer(customer)
	return nil
}

// RestoreBooking re-links a persisted booked-seat record to its customer.
// When no customer of that name was loaded one is synthesized with no
// entitlements; the returned flag reports that repair so loaders can
// surface it. No entitlement rule runs during restore.
func (c *Concert) RestoreBooking(seat *Seat, bookee string) (synthesized bool, err error) {
	if seat.Booked() {
		return false, fmt.Errorf("%w: %s", ErrSeatAlreadyBooked, seat.ID())
	}
	customer := c.findCustomer(bookee)
	if customer == nil {
		customer = NewCustomer(bookee)
		c.insertCustomer(customer)
		synthesized = true
	}
	seat.book(customer.Name)
	customer.AddSeat(seat)
	c.bookedSeats++
	return synthesized, nil
}

func (c *Concert) findCustomer(name string) *Customer {
	if name == "" {
		return nil
	}
	folded := strings.ToLower(name)
	i := sort.Search(len(c.customers), func(i int) bool {
		return strings.ToLower(c.customers[i].Name) >= folded
	})
	if i < len(c.customers) && strings.EqualFold(c.customers[i].Name, name) {
		return c.customers[i]
	}
	return nil
}

func (c *Concert) insertCustomer(customer *Customer) {
	folded := strings.ToLower(customer.Name)
	i := sort.Search(len(c.customers), func(i int) bool {
		return strings.ToLower(c.customers[i].Name) >= folded
	})
	c.customers = append(c.customers, nil)
	copy(c.customers[i+1:], c.customers[i:])
	c.customers[i] = customer
}

func (c *Concert) removeCustomer(customer *Customer) {
	for i, existing := range c.customers {
		if existing == customer {
			c.customers = append(c.customers[:i], c.customers[i+1:]...)
			return
		}
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
