package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/Danthewaann/ConcertHallSystem/internal/app"
	"github.com/Danthewaann/ConcertHallSystem/internal/clock"
	"github.com/Danthewaann/ConcertHallSystem/internal/domain"
	"github.com/Danthewaann/ConcertHallSystem/internal/rng"
	"github.com/Danthewaann/ConcertHallSystem/internal/storage/hallfile"
	"github.com/joho/godotenv"
)

const defaultHallDir = "Concerts"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", "error", err)
	}

	hallDir := os.Getenv("HALL_DIR")
	if hallDir == "" {
		logger.Warn("HALL_DIR not set, using default", "dir", defaultHallDir)
		hallDir = defaultHallDir
	}

	store := hallfile.NewStore(hallDir, logger, rng.NewSystem())
	hall := app.NewHallService(store, clock.NewSystem(), rng.NewSystem(), logger)

	if err := hall.Load(); err != nil {
		// Partial loads keep whatever decoded cleanly; show the damage and
		// carry on.
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	fmt.Printf("Concert Hall Booking System — %d concert(s) loaded from %s\n", len(hall.Concerts()), hallDir)
	fmt.Println(`Type "help" for commands.`)

	repl(hall, os.Stdin)

	if hall.Dirty() {
		if err := hall.SaveAll(); err != nil {
			logger.Error("failed to save on exit", "error", err)
			os.Exit(1)
		}
	}
}

func repl(hall *app.HallService, in *os.File) {
	var current *domain.Concert
	scanner := bufio.NewScanner(in)

	for {
		if current != nil {
			fmt.Printf("[%s] > ", current.ID())
		} else {
			fmt.Print("> ")
		}
		if !scanner.Scan() {
			return
		}
		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}

		switch cmd := args[0]; cmd {
		case "quit", "exit":
			return
		case "help":
			printHelp()
		case "list":
			for i, c := range hall.Concerts() {
				marker := " "
				if c.Dirty() {
					marker = "*"
				}
				fmt.Printf("%d.%s %s\n", i+1, marker, c.ID())
			}
		case "new", "open":
			name, date, ok := splitNameDate(args[1:])
			if !ok {
				fmt.Printf("usage: %s <name> <YYYY-MM-DD>\n", cmd)
				continue
			}
			var c *domain.Concert
			var err error
			if cmd == "new" {
				c, err = hall.AddConcert(name, date)
			} else {
				c, err = hall.FindConcert(name, date)
			}
			if err != nil {
				fmt.Println(err)
				continue
			}
			current = c
		case "book":
			if current == nil || len(args) < 3 {
				fmt.Println("usage: book <seat> <customer name> (open a concert first)")
				continue
			}
			seat, err := findSeat(current, args[1])
			if err != nil {
				fmt.Println(err)
				continue
			}
			name, err := hall.BookSeat(current, seat, strings.Join(args[2:], " "))
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Printf("%s has booked seat (%s)\n", name, seat.ID())
			if entitlement := entitlementFor(current, seat); entitlement != "" {
				fmt.Println(entitlement)
			}
		case "unbook":
			if current == nil || len(args) != 2 {
				fmt.Println("usage: unbook <seat> (open a concert first)")
				continue
			}
			seat, err := findSeat(current, args[1])
			if err != nil {
				fmt.Println(err)
				continue
			}
			if err := hall.UnbookSeat(current, seat); err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Printf("Seat (%s) is now available\n", seat.ID())
		case "seat":
			if current == nil || len(args) != 2 {
				fmt.Println("usage: seat <seat> (open a concert first)")
				continue
			}
			seat, err := findSeat(current, args[1])
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Println(current.QueryBySeat(seat))
		case "customer":
			if current == nil || len(args) < 2 {
				fmt.Println("usage: customer <name> (open a concert first)")
				continue
			}
			fmt.Println(current.QueryByCustomer(strings.Join(args[1:], " ")))
		case "price":
			if current == nil || len(args) != 3 {
				fmt.Println("usage: price <Gold|Silver|Bronze> <value> (open a concert first)")
				continue
			}
			section, err := domain.ParseSection(args[1])
			if err != nil {
				fmt.Println(err)
				continue
			}
			value, err := strconv.ParseFloat(args[2], 64)
			if err != nil || value < 0 {
				fmt.Printf("bad price %q\n", args[2])
				continue
			}
			current.SetSectionPrice(section, value)
			fmt.Printf("Changed price of %s section to £%.2f\n", section, current.SectionPrice(section))
		case "report":
			if current == nil {
				fmt.Println("open a concert first")
				continue
			}
			for _, line := range current.Report().Lines() {
				fmt.Println(line)
			}
		case "save":
			if err := hall.SaveAll(); err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Println("All concerts saved")
		default:
			fmt.Printf("unknown command %q\n", cmd)
		}
	}
}

// splitNameDate takes "name tokens... date" and splits on the trailing
// date token.
func splitNameDate(args []string) (name, date string, ok bool) {
	if len(args) < 2 {
		return "", "", false
	}
	return strings.Join(args[:len(args)-1], " "), args[len(args)-1], true
}

// findSeat resolves a token like "A1" within the concert's grid.
func findSeat(c *domain.Concert, token string) (*domain.Seat, error) {
	token = strings.ToUpper(strings.TrimSpace(token))
	if len(token) < 2 {
		return nil, fmt.Errorf("%w: %q", domain.ErrSeatNotFound, token)
	}
	number, err := strconv.Atoi(token[1:])
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrSeatNotFound, token)
	}
	return c.GetSeat(token[0], number)
}

func entitlementFor(c *domain.Concert, seat *domain.Seat) string {
	query := c.QueryBySeat(seat)
	if _, entitlement, found := strings.Cut(query, "\n"); found {
		return entitlement
	}
	return ""
}

func printHelp() {
	fmt.Println(strings.TrimLeft(`
list                         list concerts (* marks unsaved changes)
new <name> <date>            create a concert (date YYYY-MM-DD)
open <name> <date>           switch to a concert
book <seat> <customer name>  book a seat, e.g. book A1 Daniel Black
unbook <seat>                release a seat (Bronze bookings are final)
seat <seat>                  booking details for one seat
customer <name>              booked seats and entitlement for a customer
price <section> <value>      set a section price
report                       concert summary
save                         write all changes to disk
quit                         save and exit
`, "\n"))
}
