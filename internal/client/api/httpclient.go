package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/avelev/schoolguard/internal/client/models"
	"github.com/avelev/schoolguard/internal/logging"
)

// LocalBaseURL is the backend address used when the console targets a
// loopback host (a developer running the backend next to the client).
const LocalBaseURL = "http://localhost:3001/api"

// ResolveBaseURL selects the backend base URL once, at construction time.
// Loopback hostnames route to the local backend; anything else routes to
// the deployed origin. The selection is never reconsidered per call.
func ResolveBaseURL(hostname, remoteOrigin string) string {
	h := strings.Trim(strings.TrimSpace(hostname), "[]")
	if h == "localhost" {
		return LocalBaseURL
	}
	if ip := net.ParseIP(h); ip != nil && ip.IsLoopback() {
		return LocalBaseURL
	}
	return strings.TrimRight(remoteOrigin, "/") + "/api"
}

// HTTPClient implements Client over the backend's REST/JSON surface.
//
// Failed calls are never retried and no per-request timeout is imposed
// here; cancellation and deadlines come from the caller's context.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client
	logger  logging.Logger

	mu    sync.RWMutex
	token string
}

func NewHTTPClient(baseURL string, logger logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
		logger:  logger.With("component", "api"),
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *HTTPClient) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// errorBody is the error envelope non-2xx responses are expected to
// carry. An unparseable body degrades to a generic status-code message.
type errorBody struct {
	Message string `json:"message"`
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.bearer(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return newTransportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return newTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(data, &eb)
		c.logger.Warn(ctx, "request rejected", "method", method, "path", path, "status", resp.StatusCode)
		return newStatusError(resp.StatusCode, eb.Message)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, creds Credentials) (*AuthResult, error) {
	var res AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", creds, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// AdminLogin exchanges credentials on the same endpoint as Login; the
// backend decides admin capability from the account's role. The separate
// operation is kept so call-sites stay explicit about intent.
func (c *HTTPClient) AdminLogin(ctx context.Context, creds Credentials) (*AuthResult, error) {
	var res AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", creds, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Signup(ctx context.Context, req SignupRequest) (*AuthResult, error) {
	var res AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/signup", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) GetVolunteers(ctx context.Context) ([]models.Volunteer, error) {
	var res struct {
		Data []models.Volunteer `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/volunteers", nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

func (c *HTTPClient) CreateVolunteer(ctx context.Context, req CreateVolunteerRequest) (*models.Volunteer, error) {
	var res struct {
		Volunteer models.Volunteer `json:"volunteer"`
	}
	if err := c.do(ctx, http.MethodPost, "/volunteers", req, &res); err != nil {
		return nil, err
	}
	return &res.Volunteer, nil
}

func (c *HTTPClient) CheckInVolunteer(ctx context.Context, id int64, assignment string) (*models.Volunteer, error) {
	body := struct {
		Assignment string `json:"assignment"`
	}{Assignment: assignment}

	var res struct {
		Volunteer models.Volunteer `json:"volunteer"`
	}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/volunteers/%d/checkin", id), body, &res); err != nil {
		return nil, err
	}
	return &res.Volunteer, nil
}

func (c *HTTPClient) CheckOutVolunteer(ctx context.Context, id int64) (*models.Volunteer, error) {
	var res struct {
		Volunteer models.Volunteer `json:"volunteer"`
	}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/volunteers/%d/checkout", id), nil, &res); err != nil {
		return nil, err
	}
	return &res.Volunteer, nil
}

func (c *HTTPClient) ApproveVolunteer(ctx context.Context, id int64, approved bool) error {
	body := struct {
		Approved bool `json:"approved"`
	}{Approved: approved}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/volunteers/%d/approve", id), body, nil)
}

func (c *HTTPClient) GetIncidents(ctx context.Context) ([]models.Incident, error) {
	var res struct {
		Data []models.Incident `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/incidents", nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

func (c *HTTPClient) GetIncidentCountsByLocation(ctx context.Context) ([]models.LocationCount, error) {
	var res []models.LocationCount
	if err := c.do(ctx, http.MethodGet, "/incidents/locations", nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *HTTPClient) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var res struct {
		Data models.DashboardStats `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/dashboard/stats", nil, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func (c *HTTPClient) GetNotifications(ctx context.Context) ([]models.Notification, error) {
	var res []models.Notification
	if err := c.do(ctx, http.MethodGet, "/notifications", nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *HTTPClient) MarkNotificationAsRead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/notifications/"+id+"/read", nil, nil)
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *HTTPClient) Close() error {
	c.httpc.CloseIdleConnections()
	return nil
}
