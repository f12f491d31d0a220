package order

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"storefront/internal/logger"

	"go.uber.org/zap"
)

// Client consumes the upstream commerce backend's order endpoints. The
// backend paginates the list via skip/limit query parameters and keys the
// detail endpoint by order id.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates an order client for the given backend base URL. The
// token, when set, is forwarded as a bearer credential on every call.
func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		logger.L().Warn("commerce backend base URL is empty")
	}

	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ListOrders fetches one page of the user's orders.
func (c *Client) ListOrders(ctx context.Context, userID uint, skip, limit int) ([]Record, error) {
	q := url.Values{}
	q.Set("user_id", strconv.FormatUint(uint64(userID), 10))
	q.Set("skip", strconv.Itoa(skip))
	q.Set("limit", strconv.Itoa(limit))

	endpoint := fmt.Sprintf("%s/api/orders?%s", c.baseURL, q.Encode())

	var payload struct {
		Orders []Record `json:"orders"`
	}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	return payload.Orders, nil
}

// GetOrder fetches a single order by id.
func (c *Client) GetOrder(ctx context.Context, id string) (*Record, error) {
	endpoint := fmt.Sprintf("%s/api/orders/%s", c.baseURL, url.PathEscape(id))

	var record Record
	if err := c.getJSON(ctx, endpoint, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	log := logger.FromCtx(ctx).With(zap.String("endpoint", endpoint))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("commerce backend request failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrOrderNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		log.Warn("commerce backend returned non-2xx",
			zap.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("%w: status %d", ErrBadResponse, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return nil
}
