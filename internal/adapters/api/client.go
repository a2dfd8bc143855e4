// Package api is the HTTP client for a running focusboss server.
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"focusboss/internal/domain"
	"focusboss/internal/ports"
)

// Client implements ports.FocusAPI over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ ports.FocusAPI = (*Client)(nil)

// NewClient creates a new Client. baseURL may omit the scheme ("127.0.0.1:5000").
func NewClient(baseURL string, timeout time.Duration) *Client {
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "http://" + baseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// APIError is a non-2xx response from the server
type APIError struct {
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps server responses back onto domain errors so callers can use errors.Is
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusForbidden:
		return domain.ErrConsentRequired
	case e.StatusCode == http.StatusNotFound:
		return domain.ErrNoActiveSession
	case e.Message == "No active session":
		return domain.ErrNoActiveSession
	case e.Message == "Day already started":
		return domain.ErrSessionAlreadyActive
	case e.Message == "Invalid persona":
		return domain.ErrUnknownPersona
	default:
		return nil
	}
}

type totalsBody struct {
	DistractionTime int `json:"distraction_time"`
	IdleTime        int `json:"idle_time"`
	WorkTime        int `json:"work_time"`
}

func (b totalsBody) toDomain() domain.Totals {
	return domain.Totals{
		Distraction: time.Duration(b.DistractionTime) * time.Second,
		Idle:        time.Duration(b.IdleTime) * time.Second,
		Work:        time.Duration(b.WorkTime) * time.Second,
	}
}

// StartDay implements FocusAPI.StartDay
func (c *Client) StartDay(ctx context.Context, personaID, goals string) error {
	body := map[string]string{"persona": personaID, "goals": goals}
	return c.do(ctx, http.MethodPost, "/api/start_day", body, nil)
}

// Status implements FocusAPI.Status
func (c *Client) Status(ctx context.Context) (*ports.DayStatus, error) {
	var resp struct {
		totalsBody
		Message string           `json:"message"`
		Nudge   domain.NudgeKind `json:"nudge"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/status", nil, &resp); err != nil {
		return nil, err
	}
	return &ports.DayStatus{
		Message:   resp.Message,
		NudgeKind: resp.Nudge,
		Totals:    resp.toDomain(),
	}, nil
}

// EndDay implements FocusAPI.EndDay
func (c *Client) EndDay(ctx context.Context) (*ports.DayEnd, error) {
	var resp struct {
		totalsBody
		PersonaReport string `json:"persona_report"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/end_day", nil, &resp); err != nil {
		return nil, err
	}
	return &ports.DayEnd{
		Report: resp.PersonaReport,
		Totals: resp.toDomain(),
	}, nil
}

// CurrentDay implements FocusAPI.CurrentDay
func (c *Client) CurrentDay(ctx context.Context) (*ports.DayInfo, error) {
	var resp struct {
		totalsBody
		Goals       string    `json:"goals"`
		PersonaID   string    `json:"persona_id"`
		PersonaName string    `json:"persona_name"`
		StartedAt   time.Time `json:"started_at"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/day", nil, &resp); err != nil {
		return nil, err
	}
	return &ports.DayInfo{
		Goals:       resp.Goals,
		PersonaID:   resp.PersonaID,
		PersonaName: resp.PersonaName,
		StartedAt:   resp.StartedAt,
		Totals:      resp.toDomain(),
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach focusboss server at %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &e) != nil || e.Error == "" {
			e.Error = strings.TrimSpace(string(raw))
		}
		return &APIError{Message: e.Error, StatusCode: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
