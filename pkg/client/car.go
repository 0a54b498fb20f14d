package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"atlascars/pkg/model"
)

// CarClient consumes the catalog service's car endpoints.
type CarClient struct {
	httpClient *HttpClient
}

func NewCarClient(baseURL string) *CarClient {
	return &CarClient{
		httpClient: NewHttpClient(baseURL),
	}
}

func (c *CarClient) GetAll(ctx context.Context) (*Response, error) {
	return c.httpClient.GET(ctx, "/api/cars")
}

func (c *CarClient) GetByID(ctx context.Context, id string) (*Response, error) {
	return c.httpClient.GET(ctx, "/api/cars/"+url.PathEscape(id))
}

func (c *CarClient) DecodeCar(resp *Response) (*model.Car, error) {
	var car model.Car
	if err := json.Unmarshal(resp.Body, &car); err != nil {
		return nil, fmt.Errorf("could not decode car: %w", err)
	}
	return &car, nil
}

func (c *CarClient) DecodeCars(resp *Response) ([]model.Car, error) {
	var cars []model.Car
	if err := json.Unmarshal(resp.Body, &cars); err != nil {
		return nil, fmt.Errorf("could not decode car list: %w", err)
	}
	return cars, nil
}
