// Command testdrive books a test drive from the terminal through the booking form.
//
//	testdrive -api http://localhost:8080 -user 42 -car 7 -date 2026-10-20
//	testdrive -api http://localhost:8080 -user 42 -car 7 -date 2026-10-20 -slot 10:00-11:00 -notes "bring the kids"
//
// Without -slot the free slots of the date are listed.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/m04kA/SMC-TestDriveService/internal/domain"
	"github.com/m04kA/SMC-TestDriveService/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-TestDriveService/internal/testdrive"
	"github.com/m04kA/SMC-TestDriveService/pkg/logger"
)

// consoleNotifier prints form errors the way a toast would show them
type consoleNotifier struct {
	out io.Writer
}

func (n consoleNotifier) Error(message string) {
	fmt.Fprintf(n.out, "error: %s\n", message)
}

// consoleNavigator prints the car page instead of opening it
type consoleNavigator struct {
	out     io.Writer
	baseURL string
}

func (n consoleNavigator) ToCar(carID int64) {
	fmt.Fprintf(n.out, "car details: %s/cars/%d\n", n.baseURL, carID)
}

func main() {
	var (
		apiURL   = flag.String("api", "http://localhost:8080", "test drive backend base URL")
		webURL   = flag.String("web", "http://localhost:3000", "web front-end base URL for the car page")
		userID   = flag.Int64("user", 0, "id of the signed-in user")
		carID    = flag.Int64("car", 0, "car id")
		date     = flag.String("date", "", "test drive date, YYYY-MM-DD")
		slotID   = flag.String("slot", "", "slot id, e.g. 10:00-11:00; lists the free slots when empty")
		notes    = flag.String("notes", "", "optional notes for the dealership")
		timeout  = flag.Duration("timeout", 10*time.Second, "request timeout")
		logLevel = flag.String("log-level", "warn", "log level")
	)
	flag.Parse()

	log, err := logger.NewWithWriter(os.Stderr, *logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(2)
	}

	if err := run(log, *apiURL, *webURL, *userID, *carID, *date, *slotID, *notes, *timeout); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(log *logger.Logger, apiURL, webURL string, userID, carID int64, date, slotID, notes string, timeout time.Duration) error {
	if userID <= 0 {
		return errors.New("-user is required")
	}
	if carID <= 0 {
		return errors.New("-car is required")
	}

	day, err := time.ParseInLocation(domain.DateFormat, date, time.Local)
	if err != nil {
		return fmt.Errorf("invalid -date %q, expected YYYY-MM-DD", date)
	}

	client := bookingapi.NewClient(strings.TrimRight(apiURL, "/"), userID, timeout, log)

	ctx := context.Background()
	info, err := client.GetTestDriveInfo(ctx, carID)
	if err != nil {
		return fmt.Errorf("failed to load test drive info: %w", err)
	}

	fmt.Printf("%s, %s\n", info.Car.Title(), info.Dealership.Name)

	form := testdrive.NewForm(
		*info,
		client,
		consoleNotifier{out: os.Stderr},
		consoleNavigator{out: os.Stdout, baseURL: strings.TrimRight(webURL, "/")},
		log,
	)

	if form.IsDayDisabled(day) {
		return fmt.Errorf("%s is not available for test drives", date)
	}

	slots, err := form.SelectDate(day)
	if err != nil {
		return err
	}

	if len(slots) == 0 {
		fmt.Println("No free slots on this date")
		return nil
	}

	if slotID == "" {
		fmt.Printf("Free slots on %s:\n", date)
		for _, s := range slots {
			fmt.Printf("  %s  (%s)\n", s.ID, s.Label)
		}
		return nil
	}

	sel := testdrive.Selection{Date: day, SlotID: slotID}
	if notes != "" {
		sel.Notes = &notes
	}

	confirmation, err := form.Submit(ctx, sel)
	if err != nil {
		// the notifier has already printed the message
		return errors.New("booking failed")
	}

	fmt.Println("Test drive booked!")
	fmt.Printf("  Date:  %s\n", confirmation.Date)
	fmt.Printf("  Time:  %s\n", confirmation.TimeSlot)
	if confirmation.Notes != "" {
		fmt.Printf("  Notes: %s\n", confirmation.Notes)
	}

	form.CloseConfirmation()
	return nil
}
