package api

import (
	"context"
	"fmt"
	"net/http"

	"careloop/models"
)

// BookingAPI covers the booking lifecycle from the user's side.
type BookingAPI interface {
	// CreateBooking submits a new booking with its computed fee breakdown.
	CreateBooking(ctx context.Context, req models.BookingCreate) (*models.Booking, error)
	// UserBookings retrieves the booking history for one user.
	UserBookings(ctx context.Context, userID int) ([]models.Booking, error)
	// ConfirmCompletion is the user-side confirmation moving a booking from
	// pending_completion to completed.
	ConfirmCompletion(ctx context.Context, bookingID int) error
	// SetStatus patches a booking's status directly. Used by the demo
	// fast-forward affordance only.
	SetStatus(ctx context.Context, bookingID int, status models.BookingStatus) error
}

func (c *Client) CreateBooking(ctx context.Context, req models.BookingCreate) (*models.Booking, error) {
	var payload bookingPayload
	if err := c.post(ctx, c.Endpoints.Bookings, req, &payload); err != nil {
		return nil, err
	}
	b := payload.toModel()
	return &b, nil
}

func (c *Client) UserBookings(ctx context.Context, userID int) ([]models.Booking, error) {
	var payloads []bookingPayload
	if err := c.get(ctx, fmt.Sprintf("%s/%d", c.Endpoints.UserBookings, userID), &payloads); err != nil {
		return nil, err
	}
	bookings := make([]models.Booking, 0, len(payloads))
	for _, p := range payloads {
		bookings = append(bookings, p.toModel())
	}
	return bookings, nil
}

func (c *Client) ConfirmCompletion(ctx context.Context, bookingID int) error {
	return c.post(ctx, fmt.Sprintf("%s/%d/confirm", c.Endpoints.Bookings, bookingID), nil, nil)
}

func (c *Client) SetStatus(ctx context.Context, bookingID int, status models.BookingStatus) error {
	body := map[string]string{"status": string(status)}
	return c.Call(ctx, http.MethodPatch, fmt.Sprintf("%s/%d/status", c.Endpoints.Bookings, bookingID), body, nil)
}
