package orderclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

const defaultTimeout = 10 * time.Second

// Client implements OrderServiceClient over the order backend's REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the order backend. The base URL includes the API
// prefix, for example "http://localhost:8080/api/v1".
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// CreateOrder submits one priced draft for creation.
func (c *Client) CreateOrder(ctx context.Context, req ports.CreateOrderRequest) (*order.Order, error) {
	var dto OrderDTO
	err := c.do(ctx, http.MethodPost, "/orders", fromRequest(req), &dto)
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// GetOrder retrieves one order by its identity.
func (c *Client) GetOrder(ctx context.Context, orderID int64) (*order.Order, error) {
	var dto OrderDTO
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", orderID), nil, &dto)
	if err != nil {
		if isNotFound(err) {
			return nil, errs.NewObjectNotFoundErrorWithCause("orderID", orderID, err)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOrdersByUser retrieves all orders the user has placed.
func (c *Client) GetOrdersByUser(ctx context.Context, userID string) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := c.do(ctx, http.MethodGet, "/orders/user/"+userID, nil, &dtos)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// UpdateOrderStatus requests a status transition. The backend re-validates
// the transition and answers with the updated order or a rejection.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int64, next order.Status) (*order.Order, error) {
	var dto OrderDTO
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/orders/%d/status", orderID),
		UpdateStatusRequestDTO{Status: next.String()}, &dto)
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// TrackOrder retrieves the order's tracking view.
func (c *Client) TrackOrder(ctx context.Context, orderID int64) (ports.OrderTrack, error) {
	var dto TrackOrderDTO
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d/track", orderID), nil, &dto)
	if err != nil {
		return ports.OrderTrack{}, err
	}

	return toTrack(dto)
}

// statusError carries a non-2xx backend answer.
type statusError struct {
	StatusCode int
	Body       string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("order backend returned %d: %s", e.StatusCode, e.Body)
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
		// Cap the echoed body so a broken backend cannot flood the logs.
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &statusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out == nil {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
