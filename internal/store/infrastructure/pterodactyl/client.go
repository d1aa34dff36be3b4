package pterodactyl

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/ManzzyGacor/manzzy-id-backend/internal/pkg/logging"
	"github.com/ManzzyGacor/manzzy-id-backend/internal/store/domain"
)

const (
	defaultTimeout = 15 * time.Second
	passwordLength = 12

	SignalStart   = "start"
	SignalStop    = "stop"
	SignalRestart = "restart"
	SignalKill    = "kill"
)

var (
	emailSanitizer    = regexp.MustCompile(`[^a-zA-Z0-9]`)
	usernameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9_]`)
)

func IsValidSignal(signal string) bool {
	switch signal {
	case SignalStart, SignalStop, SignalRestart, SignalKill:
		return true
	default:
		return false
	}
}

type Settings struct {
	// ApiUrl is the panel root, without the /api/application suffix.
	ApiUrl      string
	AppKey      string
	EmailDomain string
}

// Client talks to the panel's application API. All calls carry the bounded
// default timeout through the embedded http client; none of them may run
// inside a store transaction.
type Client struct {
	baseUrl     string
	appKey      string
	emailDomain string
	httpClient  *http.Client
	logger      logging.Logger
}

func NewClient(settings Settings, logger logging.Logger) *Client {
	return &Client{
		baseUrl:     strings.TrimSuffix(settings.ApiUrl, "/") + "/api/application",
		appKey:      settings.AppKey,
		emailDomain: settings.EmailDomain,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

type userAttributes struct {
	Id       json.Number `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
}

type userListResponse struct {
	Data []struct {
		Attributes userAttributes `json:"attributes"`
	} `json:"data"`
}

type userCreateResponse struct {
	Attributes userAttributes `json:"attributes"`
}

type serverCreateResponse struct {
	Attributes struct {
		Id json.Number `json:"id"`
	} `json:"attributes"`
}

type apiErrorResponse struct {
	Errors []struct {
		Detail string `json:"detail"`
	} `json:"errors"`
}

// GetOrCreateUser maps a local username onto a panel user deterministically
// by derived email, looking up before creating so repeated calls converge
// on the same vendor account. Freshly created users get a random password
// that is never derived from anything public.
func (c *Client) GetOrCreateUser(ctx context.Context, username string) (domain.VendorUser, error) {
	email := strings.ToLower(emailSanitizer.ReplaceAllString(username, "")) + "@" + c.emailDomain
	vendorUsername := usernameSanitizer.ReplaceAllString(username, "")
	if len(vendorUsername) > 15 {
		vendorUsername = vendorUsername[:15]
	}

	user, found, err := c.findUser(ctx, "filter[email]="+url.QueryEscape(email))
	if err != nil {
		return domain.VendorUser{}, err
	}
	if found {
		return user, nil
	}

	user, found, err = c.findUser(ctx, "filter[username]="+url.QueryEscape(vendorUsername))
	if err != nil {
		return domain.VendorUser{}, err
	}
	if found {
		return user, nil
	}

	password, err := randomPassword(passwordLength)
	if err != nil {
		return domain.VendorUser{}, fmt.Errorf("failed to generate vendor password: %w", err)
	}

	createBody := map[string]any{
		"email":      email,
		"username":   vendorUsername,
		"first_name": username,
		"last_name":  "User",
		"password":   password,
	}

	var created userCreateResponse
	err = c.do(ctx, http.MethodPost, "/users", createBody, &created)
	if err != nil {
		return domain.VendorUser{}, err
	}

	c.logger.Info("created panel user", "vendorUserId", created.Attributes.Id.String(), "username", vendorUsername)

	return domain.VendorUser{
		Id:       created.Attributes.Id.String(),
		Username: created.Attributes.Username,
		Email:    created.Attributes.Email,
	}, nil
}

// CreateServer provisions a panel server from a package definition. The
// deployment location must be configured explicitly; the panel picks the
// port allocation itself.
func (c *Client) CreateServer(ctx context.Context, vendorUserId string, serverName string, pkg domain.ServerPackage) (string, error) {
	if pkg.LocationId == 0 {
		return "", &domain.ExternalServiceError{Msg: fmt.Sprintf("package %s has no deployment location configured", pkg.Id)}
	}

	environment := pkg.Environment
	if environment == nil {
		environment = map[string]string{}
	}

	serverBody := map[string]any{
		"name":         serverName,
		"user":         vendorUserId,
		"egg":          pkg.EggId,
		"nest":         pkg.NestId,
		"docker_image": pkg.DockerImage,
		"startup":      pkg.StartupCommand,
		"environment":  environment,
		"limits": map[string]int{
			"memory": pkg.Limits.Memory,
			"disk":   pkg.Limits.Disk,
			"cpu":    pkg.Limits.CPU,
			"swap":   pkg.Limits.Swap,
			"io":     pkg.Limits.IO,
		},
		"feature_limits": map[string]int{
			"databases":   pkg.FeatureLimits.Databases,
			"backups":     pkg.FeatureLimits.Backups,
			"allocations": pkg.FeatureLimits.Allocations,
		},
		"deploy": map[string]any{
			"locations":    []int{pkg.LocationId},
			"dedicated_ip": false,
			"port_range":   []string{},
		},
		"start_on_completion": true,
	}

	var created serverCreateResponse
	err := c.do(ctx, http.MethodPost, "/servers", serverBody, &created)
	if err != nil {
		return "", err
	}

	return created.Attributes.Id.String(), nil
}

// SendPowerSignal is fire-and-forget: the panel acks the signal without
// reporting completion.
func (c *Client) SendPowerSignal(ctx context.Context, vendorServerId string, signal string) error {
	if !IsValidSignal(signal) {
		return &domain.InvalidArgumentsError{Msg: fmt.Sprintf("unknown power signal %q", signal)}
	}

	return c.do(ctx, http.MethodPost, "/servers/"+vendorServerId+"/power", map[string]string{"signal": signal}, nil)
}

func (c *Client) findUser(ctx context.Context, filter string) (domain.VendorUser, bool, error) {
	var list userListResponse
	err := c.do(ctx, http.MethodGet, "/users?"+filter, nil, &list)
	if err != nil {
		return domain.VendorUser{}, false, err
	}

	if len(list.Data) == 0 {
		return domain.VendorUser{}, false, nil
	}

	attrs := list.Data[0].Attributes
	return domain.VendorUser{
		Id:       attrs.Id.String(),
		Username: attrs.Username,
		Email:    attrs.Email,
	}, true, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseUrl+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.appKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.ExternalServiceError{Msg: fmt.Sprintf("panel request failed: %v", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.ExternalServiceError{Msg: fmt.Sprintf("failed to read panel response: %v", err)}
	}

	if resp.StatusCode >= 400 {
		return &domain.ExternalServiceError{Msg: vendorErrorDetail(respBody, resp.StatusCode)}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &domain.ExternalServiceError{Msg: fmt.Sprintf("failed to decode panel response: %v", err)}
		}
	}

	return nil
}

// vendorErrorDetail surfaces the panel's own validation messages instead
// of a generic failure, so misconfigured packages fail loudly.
func vendorErrorDetail(body []byte, statusCode int) string {
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && len(apiErr.Errors) > 0 {
		details := make([]string, 0, len(apiErr.Errors))
		for _, e := range apiErr.Errors {
			if e.Detail != "" {
				details = append(details, e.Detail)
			}
		}
		if len(details) > 0 {
			return strings.Join(details, " ")
		}
	}

	return fmt.Sprintf("panel returned status %d", statusCode)
}

const passwordCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomPassword(length int) (string, error) {
	var sb strings.Builder
	for i := 0; i < length; i++ {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(passwordCharset))))
		if err != nil {
			return "", err
		}
		sb.WriteByte(passwordCharset[idx.Int64()])
	}

	return sb.String(), nil
}
