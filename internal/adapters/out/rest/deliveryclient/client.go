// Package deliveryclient provides the HTTP client for the delivery backend
// that matches drivers to orders and relays their positions.
package deliveryclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/tracking"
	"ordering/internal/pkg/errs"
)

const defaultTimeout = 10 * time.Second

// Client implements DeliveryServiceClient over the delivery backend's REST
// API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the delivery backend. The base URL includes the
// API prefix, for example "http://localhost:8081/api/v1".
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// FetchTracking retrieves the delivery record for one order. A not-found
// answer maps to TrackingUnavailableError; the backend answers it both
// before a driver is matched and on transient faults.
func (c *Client) FetchTracking(ctx context.Context, orderID int64) (tracking.Delivery, error) {
	var dto DeliveryDTO
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/delivery/%d", orderID), nil, &dto)
	if err != nil {
		if isNotFound(err) {
			return tracking.Delivery{}, errs.NewTrackingUnavailableError(orderID, err)
		}
		return tracking.Delivery{}, err
	}

	return toDomain(dto)
}

// FetchByDriver retrieves the active deliveries assigned to a driver.
func (c *Client) FetchByDriver(ctx context.Context, driverID string) ([]tracking.Delivery, error) {
	var dtos []DeliveryDTO
	err := c.do(ctx, http.MethodGet, "/delivery/by-driver/"+driverID, nil, &dtos)
	if err != nil {
		return nil, err
	}

	deliveries := make([]tracking.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		delivery, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, delivery)
	}

	return deliveries, nil
}

// PushLocation reports the driver's current position.
func (c *Client) PushLocation(ctx context.Context, driverID string, location kernel.GeoPoint) error {
	return c.do(ctx, http.MethodPost, "/delivery/update-location", UpdateLocationRequestDTO{
		DriverID:  driverID,
		Latitude:  location.Latitude(),
		Longitude: location.Longitude(),
	}, nil)
}

// MarkDelivered completes the driver's current delivery.
func (c *Client) MarkDelivered(ctx context.Context, driverID string) error {
	return c.do(ctx, http.MethodPost, "/delivery/mark-delivered/"+driverID, nil, nil)
}

type statusError struct {
	StatusCode int
	Body       string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("delivery backend returned %d: %s", e.StatusCode, e.Body)
}

func isNotFound(err error) bool {
	se, ok := err.(*statusError)
	return ok && se.StatusCode == http.StatusNotFound
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &statusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out == nil {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
