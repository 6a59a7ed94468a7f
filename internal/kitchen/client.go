package kitchen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"digital-menu/internal/domain"
)

// Client submits finalized orders to the kitchen intake API. One call, one
// binary outcome; retrying is the caller's decision.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *log.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// The intake API speaks decimal currency units, not cents.
type orderPayload struct {
	TableNumber  string        `json:"tableNumber"`
	CustomerName string        `json:"customerName"`
	Items        []itemPayload `json:"items"`
	Total        float64       `json:"total"`
	Notes        string        `json:"notes"`
	Status       string        `json:"status"`
}

type itemPayload struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// CreateOrder posts the order snapshot to the kitchen. Any non-2xx response
// or transport error collapses into a single opaque failure.
func (c *Client) CreateOrder(ctx context.Context, order domain.OrderSnapshot) error {
	payload := orderPayload{
		TableNumber:  order.TableNumber,
		CustomerName: order.CustomerName,
		Items:        make([]itemPayload, 0, len(order.Items)),
		Total:        centsToUnits(order.TotalCents),
		Notes:        order.Notes,
		Status:       order.Status,
	}
	for _, item := range order.Items {
		payload.Items = append(payload.Items, itemPayload{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     centsToUnits(item.PriceCents),
			Quantity:  item.Quantity,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/orders", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("post order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Printf("kitchen client: order rejected request_id=%s status=%d body=%q", requestID, resp.StatusCode, snippet)
		return fmt.Errorf("kitchen responded %d", resp.StatusCode)
	}

	c.logger.Printf("kitchen client: order accepted request_id=%s table=%s status=%d", requestID, order.TableNumber, resp.StatusCode)
	return nil
}

func centsToUnits(cents int64) float64 {
	return float64(cents) / 100
}
