package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSeatNotFound        = errors.New("seat not found")
	ErrSeatAlreadyBooked   = errors.New("seat already booked")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrCustomerExists      = errors.New("customer already exists")
	ErrConcertNotFound     = errors.New("concert not found")
	ErrConcertExists       = errors.New("concert already exists")
	ErrUnknownSection      = errors.New("unknown seat section")
	ErrNameRequired        = errors.New("customer name required")
	ErrNameTooLong         = errors.New("customer name too long")
	ErrNameNumeric         = errors.New("customer name cannot be a number")
	ErrConcertNameRequired = errors.New("concert name required")
	ErrInvalidConcertName  = errors.New("concert name cannot contain a date")
	ErrInvalidDate         = errors.New("concert date must be YYYY-MM-DD")
)

// CannotUnbookError reports a booking that cannot be undone (Bronze
// bookings are final).
type CannotUnbookError struct {
	SeatID string
	Reason string
}

func (e *CannotUnbookError) Error() string {
	return fmt.Sprintf("cannot unbook seat (%s): %s", e.SeatID, e.Reason)
}
