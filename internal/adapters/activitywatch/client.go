// Package activitywatch queries a local ActivityWatch server for window focus events.
package activitywatch

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
	"focusboss/internal/logging"
	"focusboss/internal/ports"
)

// DefaultBaseURL is where aw-server listens out of the box
const DefaultBaseURL = "http://localhost:5600"

// windowQuery keeps only window events that overlap non-AFK time, merged per app and title
var windowQuery = []string{
	"afk_events = query_bucket(find_bucket('aw-watcher-afk_'));",
	"window_events = query_bucket(find_bucket('aw-watcher-window_'));",
	"window_events = filter_period_intersect(window_events, filter_keyvals(afk_events, 'status', ['not-afk']));",
	"RETURN = merge_events_by_keys(window_events, ['app', 'title']);",
}

// Client implements ports.ActivitySource against the ActivityWatch query API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ ports.ActivitySource = (*Client)(nil)

// NewClient creates a new ActivityWatch client.
// baseURL should be like "http://localhost:5600"; empty uses DefaultBaseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type queryRequest struct {
	Query       []string `json:"query"`
	TimePeriods []string `json:"timeperiods"`
}

// rawEvent accepts both the flat and the aw-client shaped event
type rawEvent struct {
	App      *string      `json:"app"`
	Data     eventData    `json:"data"`
	Duration flexDuration `json:"duration"`
	Title    *string      `json:"title"`
}

type eventData struct {
	App   string `json:"app"`
	Title string `json:"title"`
}

// flexDuration is seconds given either as a number or as {"seconds": n}
type flexDuration float64

func (d *flexDuration) UnmarshalJSON(b []byte) error {
	var secs float64
	if err := json.Unmarshal(b, &secs); err == nil {
		*d = flexDuration(secs)
		return nil
	}

	var obj struct {
		Seconds float64 `json:"seconds"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		// Unparseable durations count as zero and are skipped by accounting
		*d = 0
		return nil
	}
	*d = flexDuration(obj.Seconds)
	return nil
}

// Query implements ActivitySource.Query for the half-open window [start, end)
func (c *Client) Query(ctx context.Context, start, end time.Time) ([]domain.ActivityEvent, error) {
	body, err := json.Marshal(queryRequest{
		Query:       windowQuery,
		TimePeriods: []string{start.UTC().Format(time.RFC3339Nano) + "/" + end.UTC().Format(time.RFC3339Nano)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/0/query/", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("activitywatch query failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("activitywatch query failed: %s: %s", resp.Status, strings.TrimSpace(string(msg)))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read activitywatch response: %w", err)
	}

	events, err := decodeEvents(raw)
	if err != nil {
		return nil, err
	}

	logging.Logger.Debug("ActivityWatch query", "start", start, "end", end, "events", len(events))
	return events, nil
}

// decodeEvents reads the per-period result list; only the first period is used.
// A flat list of events is accepted too.
func decodeEvents(raw []byte) ([]domain.ActivityEvent, error) {
	var periods []json.RawMessage
	if err := json.Unmarshal(raw, &periods); err != nil {
		return nil, fmt.Errorf("failed to decode activitywatch response: %w", err)
	}
	if len(periods) == 0 {
		return nil, nil
	}

	var rawEvents []rawEvent
	if err := json.Unmarshal(periods[0], &rawEvents); err != nil {
		if err := json.Unmarshal(raw, &rawEvents); err != nil {
			return nil, fmt.Errorf("failed to decode activitywatch events: %w", err)
		}
	}

	events := make([]domain.ActivityEvent, 0, len(rawEvents))
	for _, ev := range rawEvents {
		events = append(events, ev.toDomain())
	}
	return events, nil
}

func (e rawEvent) toDomain() domain.ActivityEvent {
	app, title := e.Data.App, e.Data.Title
	if e.App != nil {
		app = *e.App
		title = ""
		if e.Title != nil {
			title = *e.Title
		}
	}
	return domain.ActivityEvent{
		AppName:  app,
		Duration: time.Duration(float64(e.Duration) * float64(time.Second)),
		Title:    title,
	}
}
