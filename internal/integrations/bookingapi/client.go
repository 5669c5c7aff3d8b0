// Package bookingapi is the HTTP client of the test drive backend used by the booking form.
package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-TestDriveService/internal/domain"
)

const userIDHeader = "X-User-ID"

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client booking backend client acting on behalf of one user
type Client struct {
	baseURL    string
	userID     int64
	httpClient *http.Client
	log        Logger
}

// NewClient creates a client. timeout bounds every request, including the booking dispatch.
func NewClient(baseURL string, userID int64, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		userID:  userID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetTestDriveInfo loads the car, the dealership schedule and the booked intervals
func (c *Client) GetTestDriveInfo(ctx context.Context, carID int64) (*domain.TestDriveInfo, error) {
	url := fmt.Sprintf("%s/api/v1/cars/%d/test-drive-info", c.baseURL, carID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Status codes
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrCarNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Parse the response
	var info testDriveInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return info.toDomain(), nil
}

// BookTestDrive sends one booking request. Every failure is an *Error.
func (c *Client) BookTestDrive(ctx context.Context, booking domain.BookingRequest) (*domain.BookedTestDrive, error) {
	payload, err := json.Marshal(bookRequest{
		CarID:       booking.CarID,
		BookingDate: booking.BookingDate,
		StartTime:   booking.StartTime,
		EndTime:     booking.EndTime,
		Notes:       booking.Notes,
	})
	if err != nil {
		return nil, &Error{err: fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/test-drives", bytes.NewReader(payload))
	if err != nil {
		return nil, &Error{err: fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(userIDHeader, strconv.FormatInt(c.userID, 10))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("BookingAPI: POST /test-drives failed: %v", err)
		return nil, &Error{err: fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)}
	}
	defer resp.Body.Close()

	// Rejections carry a {code, message} body meant for the user
	if resp.StatusCode != http.StatusCreated {
		var body errorResponse
		if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body); err != nil || body.Message == "" {
			return nil, &Error{StatusCode: resp.StatusCode, err: ErrInvalidResponse}
		}
		c.log.Warn("BookingAPI: booking rejected with %d: %s", resp.StatusCode, body.Message)
		return nil, &Error{StatusCode: resp.StatusCode, Message: body.Message, err: ErrRejected}
	}

	// Parse the response
	var body bookResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &Error{err: fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)}
	}
	if !body.Success {
		return nil, &Error{err: fmt.Errorf("%w: success flag not set", ErrInvalidResponse)}
	}

	return &domain.BookedTestDrive{
		ID:          body.Data.ID,
		CarID:       body.Data.CarID,
		BookingDate: body.Data.BookingDate,
		StartTime:   body.Data.StartTime,
		EndTime:     body.Data.EndTime,
		Status:      domain.BookingStatus(body.Data.Status),
		Notes:       body.Data.Notes,
	}, nil
}
