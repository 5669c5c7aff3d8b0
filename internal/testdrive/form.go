// Package testdrive holds the state of a test drive booking form: date
// selection, slot computation and a single in-flight booking submission.
package testdrive

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-TestDriveService/internal/domain"
	"github.com/m04kA/SMC-TestDriveService/internal/slotplanner"
)

// Form booking form of one car. Safe for concurrent use.
type Form struct {
	dispatcher   Dispatcher
	notifier     Notifier
	navigator    Navigator
	timeProvider TimeProvider
	logger       Logger

	mu           sync.Mutex
	info         domain.TestDriveInfo
	selectedDate *time.Time
	slots        []domain.Slot
	state        State
	confirmation *Confirmation
}

// NewForm creates a form for info.Car. ExistingBookings are copied.
func NewForm(
	info domain.TestDriveInfo,
	dispatcher Dispatcher,
	notifier Notifier,
	navigator Navigator,
	logger Logger,
) *Form {
	bookings := make([]domain.ExistingBooking, len(info.ExistingBookings))
	copy(bookings, info.ExistingBookings)
	info.ExistingBookings = bookings

	return &Form{
		dispatcher:   dispatcher,
		notifier:     notifier,
		navigator:    navigator,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		info:         info,
		state:        StateIdle,
	}
}

// IsDayDisabled reports whether day can't be picked in the date picker
func (f *Form) IsDayDisabled(day time.Time) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return slotplanner.IsDayDisabled(day, f.timeProvider.Now(), f.info.Dealership.WorkingHours)
}

// SelectDate makes date the selected date and recomputes its slots.
// A previous selection is dropped even when the new date is rejected.
func (f *Form) SelectDate(date time.Time) ([]domain.Slot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.selectedDate = nil
	f.slots = nil

	if slotplanner.IsDayDisabled(date, f.timeProvider.Now(), f.info.Dealership.WorkingHours) {
		f.logger.Warn("SelectDate: car=%d, date=%s is not selectable", f.info.Car.ID, date.Format(domain.DateFormat))
		return nil, ErrDateNotSelectable
	}

	slots, err := slotplanner.ComputeSlots(date, f.info.Dealership.WorkingHours, f.info.ExistingBookings)
	if err != nil {
		f.logger.Error("SelectDate: car=%d, date=%s: %v", f.info.Car.ID, date.Format(domain.DateFormat), err)
		return nil, err
	}

	f.selectedDate = &date
	f.slots = slots

	f.logger.Info("SelectDate: car=%d, date=%s, %d slots available",
		f.info.Car.ID, date.Format(domain.DateFormat), len(slots))

	return cloneSlots(slots), nil
}

// SelectedDate returns the selected date, if any
func (f *Form) SelectedDate() (time.Time, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.selectedDate == nil {
		return time.Time{}, false
	}
	return *f.selectedDate, true
}

// Slots returns the slots last computed for the selected date
func (f *Form) Slots() []domain.Slot {
	f.mu.Lock()
	defer f.mu.Unlock()

	return cloneSlots(f.slots)
}

// State returns the submission state
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state
}

// Confirmation returns the open confirmation, nil when there is none
func (f *Form) Confirmation() *Confirmation {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.confirmation == nil {
		return nil
	}
	c := *f.confirmation
	return &c
}

// Submit validates sel and dispatches exactly one booking request.
//
// Validation failures and dispatch failures are reported to the notifier and
// returned; the form stays usable either way. While a dispatch is pending
// further submits fail with ErrBookingInProgress.
func (f *Form) Submit(ctx context.Context, sel Selection) (*Confirmation, error) {
	req, err := f.begin(sel)
	if err != nil {
		return nil, err
	}

	f.logger.Info("Submit: car=%d, date=%s, slot=%s-%s",
		req.CarID, req.BookingDate, req.StartTime, req.EndTime)

	booked, dispatchErr := f.dispatcher.BookTestDrive(ctx, req)
	if dispatchErr == nil && booked == nil {
		dispatchErr = errors.New("empty booking response")
	}

	if dispatchErr != nil {
		message := submissionMessage(dispatchErr)

		f.mu.Lock()
		f.state = StateFailed
		f.mu.Unlock()

		f.logger.Warn("Submit: car=%d, booking failed: %v", req.CarID, dispatchErr)
		f.notifier.Error(message)
		return nil, fmt.Errorf("%w: %v", ErrSubmissionFailed, dispatchErr)
	}

	confirmation := newConfirmation(req, booked)

	f.mu.Lock()
	f.state = StateSucceeded
	f.confirmation = confirmation
	f.selectedDate = nil
	f.slots = nil
	f.info.ExistingBookings = append(f.info.ExistingBookings, domain.ExistingBooking{
		Date:      req.BookingDate,
		StartTime: req.StartTime.String(),
		EndTime:   req.EndTime.String(),
	})
	f.mu.Unlock()

	f.logger.Info("Submit: car=%d, booking id=%d created", req.CarID, booked.ID)

	c := *confirmation
	return &c, nil
}

// CloseConfirmation dismisses the confirmation and navigates to the car
func (f *Form) CloseConfirmation() {
	f.mu.Lock()
	if f.state != StateSucceeded {
		f.mu.Unlock()
		return
	}
	f.state = StateIdle
	f.confirmation = nil
	carID := f.info.Car.ID
	f.mu.Unlock()

	f.navigator.ToCar(carID)
}

// begin validates the selection and moves the form into StateInFlight
func (f *Form) begin(sel Selection) (domain.BookingRequest, error) {
	f.mu.Lock()

	if f.state == StateInFlight {
		f.mu.Unlock()
		return domain.BookingRequest{}, ErrBookingInProgress
	}

	carID := f.info.Car.ID

	slot, message, err := validateSelection(sel, f.selectedDate, f.slots)
	if err != nil {
		f.mu.Unlock()
		f.logger.Warn("Submit: car=%d, validation failed: %v", carID, err)
		f.notifier.Error(message)
		return domain.BookingRequest{}, err
	}

	notes := ""
	if sel.Notes != nil {
		notes = *sel.Notes
	}

	req := domain.BookingRequest{
		CarID:       carID,
		BookingDate: sel.Date.Format(domain.DateFormat),
		StartTime:   slot.StartTime,
		EndTime:     slot.EndTime,
		Notes:       notes,
	}

	f.state = StateInFlight
	f.mu.Unlock()

	return req, nil
}

// newConfirmation prefers the echoed booking data, falling back to the request
func newConfirmation(req domain.BookingRequest, booked *domain.BookedTestDrive) *Confirmation {
	bookingDate := req.BookingDate
	if booked.BookingDate != "" {
		bookingDate = booked.BookingDate
	}

	date := bookingDate
	if d, err := time.Parse(domain.DateFormat, bookingDate); err == nil {
		date = d.Format(domain.ConfirmationDateFormat)
	}

	start, end := req.StartTime, req.EndTime
	if !booked.StartTime.IsZero() && !booked.EndTime.IsZero() {
		start, end = booked.StartTime, booked.EndTime
	}

	notes := booked.Notes
	if notes == "" {
		notes = req.Notes
	}

	return &Confirmation{
		BookingID: booked.ID,
		Date:      date,
		TimeSlot:  formatTimeRange(start, end),
		Notes:     notes,
	}
}

// submissionMessage extracts the text shown to the user for a failed dispatch
func submissionMessage(err error) string {
	var um UserMessager
	if errors.As(err, &um) {
		if msg := um.UserMessage(); msg != "" {
			return msg
		}
		return MessageBookingFailed
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return MessageBookingFailed
}

func cloneSlots(slots []domain.Slot) []domain.Slot {
	if slots == nil {
		return nil
	}
	out := make([]domain.Slot, len(slots))
	copy(out, slots)
	return out
}
