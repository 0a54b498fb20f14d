package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"atlascars/pkg/model"
)

// BookingClient consumes the catalog service's booking endpoints.
type BookingClient struct {
	httpClient *HttpClient
}

func NewBookingClient(baseURL string) *BookingClient {
	return &BookingClient{
		httpClient: NewHttpClient(baseURL),
	}
}

func (c *BookingClient) Create(ctx context.Context, body any) (*Response, error) {
	return c.httpClient.POST(ctx, "/api/bookings", body)
}

func (c *BookingClient) GetAll(ctx context.Context) (*Response, error) {
	return c.httpClient.GET(ctx, "/api/bookings")
}

func (c *BookingClient) GetByID(ctx context.Context, id string) (*Response, error) {
	return c.httpClient.GET(ctx, "/api/bookings/"+url.PathEscape(id))
}

func (c *BookingClient) DecodeReceipt(resp *Response) (*model.BookingReceipt, error) {
	var receipt model.BookingReceipt
	if err := json.Unmarshal(resp.Body, &receipt); err != nil {
		return nil, fmt.Errorf("could not decode booking receipt: %w", err)
	}
	return &receipt, nil
}

func (c *BookingClient) DecodeBookings(resp *Response) ([]*model.Booking, error) {
	var bookings []*model.Booking
	if err := json.Unmarshal(resp.Body, &bookings); err != nil {
		return nil, fmt.Errorf("could not decode booking list: %w", err)
	}
	return bookings, nil
}
