package pakasir

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ManzzyGacor/manzzy-id-backend/internal/store/domain"
)

const (
	defaultBaseUrl = "https://app.pakasir.com"
	defaultTimeout = 10 * time.Second
)

type Settings struct {
	// BaseUrl overrides the gateway host, used by tests.
	BaseUrl string
	Slug    string
	ApiKey  string
}

// Client builds redirect URLs and re-verifies transactions against the
// gateway's transaction detail endpoint. A callback payload by itself is
// never proof of payment.
type Client struct {
	baseUrl    string
	slug       string
	apiKey     string
	httpClient *http.Client
}

func NewClient(settings Settings) *Client {
	baseUrl := settings.BaseUrl
	if baseUrl == "" {
		baseUrl = defaultBaseUrl
	}

	return &Client{
		baseUrl: strings.TrimSuffix(baseUrl, "/"),
		slug:    settings.Slug,
		apiKey:  settings.ApiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

func (c *Client) PaymentURL(amount int64, orderId string) string {
	return fmt.Sprintf("%s/pay/%s/%d?order_id=%s&qris_only=1",
		c.baseUrl, c.slug, amount, url.QueryEscape(orderId))
}

type transactionDetailResponse struct {
	Transaction struct {
		OrderId string `json:"order_id"`
		Amount  int64  `json:"amount"`
		Status  string `json:"status"`
	} `json:"transaction"`
}

// VerifyTransaction queries the gateway for the authoritative state of an
// order. Only a matching paid transaction counts; anything else, including
// an unknown order, verifies as unpaid.
func (c *Client) VerifyTransaction(ctx context.Context, orderId string, amount int64) (bool, error) {
	query := url.Values{}
	query.Set("project", c.slug)
	query.Set("amount", strconv.FormatInt(amount, 10))
	query.Set("order_id", orderId)
	query.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseUrl+"/api/transactiondetail?"+query.Encode(), nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, &domain.ExternalServiceError{Msg: fmt.Sprintf("payment gateway request failed: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode >= 400 {
		return false, &domain.ExternalServiceError{Msg: fmt.Sprintf("payment gateway returned status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, &domain.ExternalServiceError{Msg: fmt.Sprintf("failed to read payment gateway response: %v", err)}
	}

	var detail transactionDetailResponse
	if err := json.Unmarshal(body, &detail); err != nil {
		return false, &domain.ExternalServiceError{Msg: fmt.Sprintf("failed to decode payment gateway response: %v", err)}
	}

	if detail.Transaction.OrderId != orderId || detail.Transaction.Amount != amount {
		return false, nil
	}

	return isPaidStatus(detail.Transaction.Status), nil
}

func isPaidStatus(status string) bool {
	switch strings.ToLower(status) {
	case "completed", "paid", "success":
		return true
	default:
		return false
	}
}
