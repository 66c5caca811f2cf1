package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/akimovv/SessionBooker/internal/domain"
)

const defaultCRMTimeout = 10 * time.Second

// CRMClient posts booking notifications to the external CRM receiver.
type CRMClient struct {
	baseURL   string
	authToken string
	client    *http.Client
}

func NewCRMClient(baseURL, authToken string, timeout time.Duration) *CRMClient {
	if timeout <= 0 {
		timeout = defaultCRMTimeout
	}

	return &CRMClient{
		baseURL:   baseURL,
		authToken: authToken,
		client:    &http.Client{Timeout: timeout},
	}
}

func (c *CRMClient) Name() string { return "crm" }

type crmUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type crmEvent struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	StartDate string `json:"start_date"`
}

type crmPayload struct {
	BookingID     int64    `json:"booking_id"`
	User          crmUser  `json:"user"`
	Event         crmEvent `json:"event"`
	FacilitatorID int64    `json:"facilitator_id"`
	Action        string   `json:"action"`
}

// Deliver sends one notification. A non-2xx response is an error so the
// dispatcher can count the failure; it is never retried here.
func (c *CRMClient) Deliver(ctx context.Context, n *domain.BookingNotification) error {
	payload := crmPayload{
		BookingID: n.BookingID,
		User: crmUser{
			ID:    n.User.ID,
			Name:  n.User.Name,
			Email: n.User.Email,
		},
		Event: crmEvent{
			ID:        n.Event.ID,
			Title:     n.Event.Title,
			StartDate: n.Event.StartDate.UTC().Format(time.RFC3339),
		},
		FacilitatorID: n.FacilitatorID,
		Action:        string(n.Action),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/notify", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.authToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("post notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("crm responded %d: %s", resp.StatusCode, msg)
	}

	return nil
}

// Health checks the CRM /health endpoint.
func (c *CRMClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("crm health: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("crm health responded %d", resp.StatusCode)
	}

	return nil
}
