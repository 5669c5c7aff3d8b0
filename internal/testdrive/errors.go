package testdrive

import "errors"

var (
	// ErrNoDateSelected submit without a date
	ErrNoDateSelected = errors.New("testdrive: no date selected")

	// ErrNoSlotSelected submit without a time slot
	ErrNoSlotSelected = errors.New("testdrive: no slot selected")

	// ErrDateNotSelectable date is in the past or the dealership is closed that day
	ErrDateNotSelectable = errors.New("testdrive: date is not selectable")

	// ErrSelectionStale chosen slot is not in the slots last computed for the date
	ErrSelectionStale = errors.New("testdrive: selected slot is no longer available")

	// ErrBookingInProgress another submission of the same form has not resolved yet
	ErrBookingInProgress = errors.New("testdrive: booking in progress")

	// ErrSubmissionFailed the dispatcher rejected the booking
	ErrSubmissionFailed = errors.New("testdrive: submission failed")
)

// Messages shown to the user
const (
	MessageNoDate        = "Please select a date"
	MessageNoSlot        = "Please select a time slot"
	MessageSlotNotFound  = "Selected time slot is not available"
	MessageBookingFailed = "Failed to book test drive. Please try again."
)
