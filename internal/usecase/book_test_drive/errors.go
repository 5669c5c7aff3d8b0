package book_test_drive

import "errors"

var (
	// ErrCarNotFound no car with the requested id
	ErrCarNotFound = errors.New("book_test_drive: car not found")

	// ErrCarNotAvailable car is sold or withdrawn from test drives
	ErrCarNotAvailable = errors.New("book_test_drive: car is not available for test drives")

	// ErrInvalidDate booking date is in the past
	ErrInvalidDate = errors.New("book_test_drive: invalid booking date")

	// ErrDealershipClosed the dealership is closed on the requested date
	ErrDealershipClosed = errors.New("book_test_drive: dealership is closed on this date")

	// ErrSlotNotAvailable requested interval is not one of the free slots of the day
	ErrSlotNotAvailable = errors.New("book_test_drive: slot is not available")

	// ErrInvalidTimeSlot interval is not exactly one hour
	ErrInvalidTimeSlot = errors.New("book_test_drive: invalid time slot")

	// ErrTooLateToBook the slot has already started
	ErrTooLateToBook = errors.New("book_test_drive: too late to book this slot")

	// ErrInvalidInput malformed request
	ErrInvalidInput = errors.New("book_test_drive: invalid input data")

	// ErrInternal storage failure or broken working hours
	ErrInternal = errors.New("book_test_drive: internal error")
)
