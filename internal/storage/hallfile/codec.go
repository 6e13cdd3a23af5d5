package hallfile

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Danthewaann/ConcertHallSystem/internal/domain"
)

// File names within a concert-hall directory. The index file lives at the
// directory root; the other two live in one sub-directory per concert,
// named "<name> <date>".
const (
	IndexFile       = "Concert_list.txt"
	CustomersFile   = "Customers.txt"
	BookedSeatsFile = "Booked_seats.txt"
)

// DateRx matches a concert date token. Concert names may contain spaces,
// so the index parser consumes tokens into the name until it hits a token
// of this shape.
var DateRx = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type concertRecord struct {
	Name   string
	Date   string
	Prices [3]float64
}

// parseConcertLine decodes one index line: name tokens, a date token, then
// the gold, silver and bronze section prices.
func parseConcertLine(line string) (concertRecord, error) {
	fields := strings.Fields(line)

	dateAt := -1
	for i, field := range fields {
		if DateRx.MatchString(field) {
			dateAt = i
			break
		}
	}
	switch {
	case dateAt < 0:
		return concertRecord{}, fmt.Errorf("no date token")
	case dateAt == 0:
		return concertRecord{}, fmt.Errorf("concert name missing")
	case len(fields) != dateAt+4:
		return concertRecord{}, fmt.Errorf("expected 3 price tokens after date, got %d", len(fields)-dateAt-1)
	}

	rec := concertRecord{
		Name: strings.Join(fields[:dateAt], " "),
		Date: fields[dateAt],
	}
	for i, field := range fields[dateAt+1:] {
		price, err := strconv.ParseFloat(field, 64)
		if err != nil || price < 0 {
			return concertRecord{}, fmt.Errorf("bad price token %q", field)
		}
		rec.Prices[i] = price
	}
	return rec, nil
}

func encodeConcertLine(c *domain.Concert) string {
	return fmt.Sprintf("%s %s %.2f %.2f %.2f",
		c.Name, c.Date,
		c.SectionPrice(domain.SectionGold),
		c.SectionPrice(domain.SectionSilver),
		c.SectionPrice(domain.SectionBronze),
	)
}

type customerRecord struct {
	Name           string
	GoldEntitled   bool
	SilverEntitled bool
}

// parseCustomerLine decodes one customers-file line: name tokens until the
// first boolean literal, then the gold and silver entitlement flags. The
// first token always belongs to the name, so a customer called "True Lies"
// survives a reload.
func parseCustomerLine(line string) (customerRecord, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return customerRecord{}, fmt.Errorf("customer name missing")
	}

	boolAt := -1
	for i := 1; i < len(fields); i++ {
		if isBoolToken(fields[i]) {
			boolAt = i
			break
		}
	}
	switch {
	case boolAt < 0:
		return customerRecord{}, fmt.Errorf("no entitlement flags")
	case len(fields) != boolAt+2 || !isBoolToken(fields[boolAt+1]):
		return customerRecord{}, fmt.Errorf("expected 2 entitlement flags")
	}

	return customerRecord{
		Name:           strings.Join(fields[:boolAt], " "),
		GoldEntitled:   strings.EqualFold(fields[boolAt], "true"),
		SilverEntitled: strings.EqualFold(fields[boolAt+1], "true"),
	}, nil
}

func isBoolToken(s string) bool {
	return strings.EqualFold(s, "true") || strings.EqualFold(s, "false")
}

func encodeCustomerLine(c *domain.Customer) string {
	return fmt.Sprintf("%s %t %t", c.Name, c.GoldEntitled, c.SilverEntitled)
}

type seatRecord struct {
	Row    byte
	Number int
	Bookee string
}

// parseSeatLine decodes one booked-seats line: row letter, seat number,
// then the bookee name running to end of line.
func parseSeatLine(line string) (seatRecord, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return seatRecord{}, fmt.Errorf("expected row, number and bookee")
	}

	row := strings.ToUpper(fields[0])
	if len(row) != 1 || domain.RowIndex(row[0]) < 0 {
		return seatRecord{}, fmt.Errorf("bad row token %q", fields[0])
	}
	number, err := strconv.Atoi(fields[1])
	if err != nil || number < 1 || number > domain.SeatsPerRow {
		return seatRecord{}, fmt.Errorf("bad seat number token %q", fields[1])
	}

	return seatRecord{
		Row:    row[0],
		Number: number,
		Bookee: strings.Join(fields[2:], " "),
	}, nil
}

func encodeSeatLine(s *domain.Seat) string {
	return fmt.Sprintf("%c %d %s", s.Row, s.Number, s.Bookee())
}
