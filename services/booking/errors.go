package booking

import "fmt"

// DuplicateBookingError signals the member already holds a booking for the
// class. Detected by the pre-check before any insert occurs.
type DuplicateBookingError struct {
	ClassID string
}

func (e DuplicateBookingError) Error() string {
	return "you have already booked this session"
}

// ClassNotFoundError signals a reservation against an unknown class id.
type ClassNotFoundError struct {
	ClassID string
}

func (e ClassNotFoundError) Error() string {
	return fmt.Sprintf("class %s does not exist", e.ClassID)
}

// ClassFullError signals the class has no available slots left.
type ClassFullError struct {
	ClassID string
}

func (e ClassFullError) Error() string {
	return fmt.Sprintf("class %s is at full capacity", e.ClassID)
}
